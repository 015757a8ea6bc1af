package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// Hand-built positions shared by several tests.
const (
	kiwipeteDiagram = `
		r...k..r
		p.ppqpb.
		bn..pnp.
		...PN...
		.p..P...
		..N..Q.p
		PPPBBPPP
		R...K..R`

	endgameDiagram = `
		........
		..p.....
		...p....
		KP.....r
		.R...p.k
		........
		....P.P.
		........`

	castlingDiagram = `
		r...k..r
		pppppppp
		........
		........
		........
		........
		PPPPPPPP
		R...K..R`
)

// mustBuild builds a position from a diagram, failing the test on error.
func mustBuild(t testing.TB, diagram string, toMove chess.Colour, rights chess.CastlingRights) *Position {
	t.Helper()
	p, err := NewBuilder().
		FromBoard(testutil.MustDiagram(t, diagram)).
		ToMove(toMove).
		Castling(rights).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return p
}

// play applies a sequence of coordinate moves, failing on the first one
// that is not legal.
func play(t testing.TB, p *Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := p.Play(text); err != nil {
			t.Fatalf("Play(%q) error: %v", text, err)
		}
	}
}

// notations returns the coordinate notation of each move.
func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// containsMove reports whether moves holds a move with this notation.
func containsMove(moves []chess.Move, notation string) bool {
	for _, m := range moves {
		if m.Notation() == notation {
			return true
		}
	}
	return false
}

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}
