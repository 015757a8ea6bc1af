package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

const stalemateDiagram = `
	k.......
	..Q.....
	.K......
	........
	........
	........
	........
	........`

func TestCheckmate_FoolsMate(t *testing.T) {
	p := NewPosition()
	play(t, p, "f2f3", "e7e5", "g2g4", "d8h4")

	// Flags only move when legal moves are generated.
	if p.Checkmate() {
		t.Error("Checkmate() set before LegalMoves was called")
	}

	if moves := p.LegalMoves(); len(moves) != 0 {
		t.Fatalf("LegalMoves() = %v; want none", notations(moves))
	}
	if !p.Checkmate() || p.Stalemate() {
		t.Errorf("Checkmate() = %v, Stalemate() = %v; want true, false", p.Checkmate(), p.Stalemate())
	}
	if p.Outcome() != Checkmate {
		t.Errorf("Outcome() = %v; want checkmate", p.Outcome())
	}

	p.Revert()
	p.LegalMoves()
	if p.Checkmate() || p.Stalemate() {
		t.Error("flags not cleared after reverting the mating move")
	}
	if p.Outcome() != InProgress {
		t.Errorf("Outcome() = %v; want in progress", p.Outcome())
	}
}

func TestCheckmate_ScholarsMate(t *testing.T) {
	p := NewPosition()
	play(t, p, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	if !p.IsCheckmate() {
		t.Fatal("IsCheckmate() = false")
	}
	if p.Checkmate() {
		t.Error("IsCheckmate() set the checkmate flag")
	}
	if len(p.LegalMoves()) != 0 || !p.Checkmate() {
		t.Error("black should have no legal moves")
	}
	if p.ToMove() != chess.Black {
		t.Errorf("ToMove() = %v; want Black", p.ToMove())
	}
}

func TestStalemate(t *testing.T) {
	p := mustBuild(t, stalemateDiagram, chess.Black, chess.CastlingRights{})

	if p.InCheck() {
		t.Fatal("black king should not be in check")
	}
	if !p.IsStalemate() {
		t.Error("IsStalemate() = false")
	}
	if moves := p.LegalMoves(); len(moves) != 0 {
		t.Fatalf("LegalMoves() = %v; want none", notations(moves))
	}
	if p.Checkmate() || !p.Stalemate() {
		t.Errorf("Checkmate() = %v, Stalemate() = %v; want false, true", p.Checkmate(), p.Stalemate())
	}
	if p.Outcome() != Stalemate {
		t.Errorf("Outcome() = %v; want stalemate", p.Outcome())
	}
}

// A lone king always has a square to go to, so two bare kings are never
// stalemate.
func TestBareKingsAreNotStalemate(t *testing.T) {
	for _, diagram := range []string{
		`k.......
		 ........
		 .K......
		 ........
		 ........
		 ........
		 ........
		 ........`,
		`........
		 ........
		 ........
		 ...k....
		 ........
		 ...K....
		 ........
		 ........`,
	} {
		p := mustBuild(t, diagram, chess.Black, chess.CastlingRights{})
		if len(p.LegalMoves()) == 0 {
			t.Errorf("no legal moves for a bare king:\n%s", diagram)
		}
		if p.Stalemate() || p.Checkmate() {
			t.Error("outcome flag set for bare kings")
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{InProgress, "in progress"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}
