package output

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MoveLogText numbers the moves in pairs: "1. e2e4 e7e5  2. g1f3".
func MoveLogText(moves []chess.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.Notation())
	}
	return sb.String()
}

// OutcomeText describes a finished game. toMove is the side that has no
// legal move. It returns "" while the game is in progress.
func OutcomeText(outcome engine.Outcome, toMove chess.Colour) string {
	switch outcome {
	case engine.Checkmate:
		return fmt.Sprintf("%v wins by checkmate", toMove.Opposite())
	case engine.Stalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// MovesText lists move notations in sorted order, separated by spaces.
func MovesText(moves []chess.Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.Notation()
	}
	slices.Sort(names)
	return strings.Join(names, " ")
}

// DivideText prints one "move: nodes" line per root move, sorted by
// notation, then the total.
func DivideText(entries []engine.DivideEntry) string {
	counts := make(map[string]uint64, len(entries))
	for _, e := range entries {
		counts[e.Move.Notation()] = e.Nodes
	}
	keys := maps.Keys(counts)
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %d\n", k, counts[k])
	}
	fmt.Fprintf(&sb, "\nNodes searched: %d\n", engine.Total(entries))
	return sb.String()
}
