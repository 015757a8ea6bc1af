package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// bruteForceAttacked scans every opposing pseudo-legal move for one that
// ends on target.
func bruteForceAttacked(p *Position, target chess.Square) bool {
	for _, m := range p.PseudoLegalMovesFor(p.ToMove().Opposite()) {
		if m.End() == target {
			return true
		}
	}
	return false
}

func TestSquareUnderAttack_MatchesBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		toMove  chess.Colour
		rights  chess.CastlingRights
	}{
		{"kiwipete white", kiwipeteDiagram, chess.White, chess.AllCastlingRights},
		{"kiwipete black", kiwipeteDiagram, chess.Black, chess.AllCastlingRights},
		{"endgame", endgameDiagram, chess.White, chess.CastlingRights{}},
		{"open middlegame", `
			r..q.rk.
			pp..bppp
			..n.pn..
			...p....
			..PP....
			..N.PN..
			PP...PPP
			R..QKB.R`, chess.Black, chess.CastlingRights{WhiteKingside: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, tt.diagram, tt.toMove, tt.rights)
			attacked := p.AttackedSquares(tt.toMove.Opposite())
			for row := 0; row < chess.BoardSize; row++ {
				for col := 0; col < chess.BoardSize; col++ {
					s := chess.Sq(row, col)
					want := bruteForceAttacked(p, s)
					if got := p.SquareUnderAttack(s); got != want {
						t.Errorf("SquareUnderAttack(%v) = %v; want %v", s, got, want)
					}
					if attacked[row][col] != want {
						t.Errorf("AttackedSquares[%v] = %v; want %v", s, attacked[row][col], want)
					}
				}
			}
		})
	}
}

func TestSquareUnderAttack_Pieces(t *testing.T) {
	// Black to move, so white's moves are the attackers.
	p := mustBuild(t, `
		k.......
		........
		........
		...N....
		........
		.....B..
		........
		R...K...`, chess.Black, chess.CastlingRights{})

	tests := []struct {
		square string
		want   bool
	}{
		{"c7", true},  // knight
		{"f6", true},  // knight
		{"e3", true},  // knight
		{"d6", false}, // not a knight jump
		{"h5", true},  // bishop
		{"h1", true},  // bishop
		{"a8", true},  // rook captures the king
		{"a7", true},  // rook
		{"g1", false}, // rook stops at its own king
		{"d1", true},  // rook, bishop and king
		{"e2", true},  // king
		{"c4", false},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := p.SquareUnderAttack(sq(tt.square)); got != tt.want {
				t.Errorf("SquareUnderAttack(%s) = %v; want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
		toMove  chess.Colour
		want    bool
	}{
		{"rook on open file", `
			....k...
			........
			........
			........
			........
			........
			........
			....R..K`, chess.Black, true},
		{"rook blocked", `
			....k...
			....p...
			........
			........
			........
			........
			........
			....R..K`, chess.Black, false},
		{"knight", `
			....k...
			........
			...N....
			........
			........
			........
			........
			.......K`, chess.Black, true},
		{"pawn diagonal", `
			....k...
			...P....
			........
			........
			........
			........
			........
			.......K`, chess.Black, true},
		{"pawn straight ahead does not check", `
			........
			........
			........
			........
			........
			....k...
			....P...
			.......K`, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, tt.diagram, tt.toMove, chess.CastlingRights{})
			if got := p.InCheck(); got != tt.want {
				t.Errorf("InCheck() = %v; want %v", got, tt.want)
			}
		})
	}
}
