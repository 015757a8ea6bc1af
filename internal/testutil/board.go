package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// pieceLetters maps diagram letters to pieces: uppercase white, lowercase black.
var pieceLetters = map[byte]chess.Piece{
	'P': chess.W(chess.Pawn), 'N': chess.W(chess.Knight), 'B': chess.W(chess.Bishop),
	'R': chess.W(chess.Rook), 'Q': chess.W(chess.Queen), 'K': chess.W(chess.King),
	'p': chess.B(chess.Pawn), 'n': chess.B(chess.Knight), 'b': chess.B(chess.Bishop),
	'r': chess.B(chess.Rook), 'q': chess.B(chess.Queen), 'k': chess.B(chess.King),
}

// MustDiagram builds a board from eight rows of eight characters, rank 8
// first, using '.' for empty cells. Whitespace around rows is ignored.
// It calls t.Fatal on a malformed diagram.
func MustDiagram(t testing.TB, diagram string) chess.Board {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	var b chess.Board
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d has %d cells; want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			if line[col] == '.' {
				continue
			}
			piece, ok := pieceLetters[line[col]]
			if !ok {
				t.Fatalf("diagram row %d: unknown piece %q", row, line[col])
			}
			b[row][col] = piece
		}
	}
	return b
}
