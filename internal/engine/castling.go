package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castleRookSquares returns the rook's origin and destination for a castle
// move, derived from the king's two-square step.
func castleRookSquares(move chess.Move) (from, to chess.Square) {
	row := move.End().Row
	endCol := move.End().Col
	if endCol > move.Start().Col {
		// Kingside
		return chess.Sq(row, endCol+1), chess.Sq(row, endCol-1)
	}
	return chess.Sq(row, endCol-2), chess.Sq(row, endCol+1)
}

// updateCastlingRights removes rights after a king or rook move, or after
// a capture on a rook's original square.
func (p *Position) updateCastlingRights(move chess.Move) {
	piece := move.Moved()
	switch piece.Kind() {
	case chess.King:
		p.rights.Revoke(piece.Colour())
	case chess.Rook:
		if move.Start().Row == chess.HomeRow(piece.Colour()) {
			p.rights.RevokeRookSquare(move.Start())
		}
	}

	// A rook captured at home takes its right with it, whoever captured it.
	captured := move.Captured()
	if captured.Kind() == chess.Rook && move.End().Row == chess.HomeRow(captured.Colour()) {
		p.rights.RevokeRookSquare(move.End())
	}
}

// castleMoves appends the castle moves available to the side to move.
// These are legal as generated: the king must not be in check and every
// square it crosses, including its destination, must be unattacked.
func (p *Position) castleMoves(moves []chess.Move) []chess.Move {
	if p.InCheck() {
		return moves
	}
	king := p.kings[p.toMove]
	if p.rights.Kingside(p.toMove) {
		moves = p.kingsideCastle(king, moves)
	}
	if p.rights.Queenside(p.toMove) {
		moves = p.queensideCastle(king, moves)
	}
	return moves
}

func (p *Position) kingsideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	f, g := king.Offset(0, 1), king.Offset(0, 2)
	if p.board.Get(f) != chess.Empty || p.board.Get(g) != chess.Empty {
		return moves
	}
	if p.SquareUnderAttack(f) || p.SquareUnderAttack(g) {
		return moves
	}
	return append(moves, chess.MoveOnBoard(&p.board, king, g, chess.FlagCastle))
}

func (p *Position) queensideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	d, c, b := king.Offset(0, -1), king.Offset(0, -2), king.Offset(0, -3)
	if p.board.Get(d) != chess.Empty || p.board.Get(c) != chess.Empty || p.board.Get(b) != chess.Empty {
		return moves
	}
	// The b-file square only has to be empty; the king never crosses it.
	if p.SquareUnderAttack(d) || p.SquareUnderAttack(c) {
		return moves
	}
	return append(moves, chess.MoveOnBoard(&p.board, king, c, chess.FlagCastle))
}
