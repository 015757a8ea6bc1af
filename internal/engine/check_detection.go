package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// InCheck returns true if the king of the side to move is attacked.
func (p *Position) InCheck() bool {
	return p.SquareUnderAttack(p.kings[p.toMove])
}

// SquareUnderAttack reports whether any pseudo-legal move of the opponent
// of the side to move ends on sq. This needs a full generation per call
// and dominates the cost of legal move generation.
func (p *Position) SquareUnderAttack(sq chess.Square) bool {
	for _, m := range p.PseudoLegalMovesFor(p.toMove.Opposite()) {
		if m.End() == sq {
			return true
		}
	}
	return false
}

// AttackedSquares returns every square some pseudo-legal move of colour
// ends on, indexed [row][col].
func (p *Position) AttackedSquares(colour chess.Colour) [chess.BoardSize][chess.BoardSize]bool {
	var out [chess.BoardSize][chess.BoardSize]bool
	for _, m := range p.PseudoLegalMovesFor(colour) {
		out[m.End().Row][m.End().Col] = true
	}
	return out
}
