package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnMoves generates pushes, the double push from the starting row, and
// diagonal captures onto enemy pieces or the en-passant target.
func pawnMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(colour)
	ahead := sq.Offset(dir, 0)
	if !ahead.Valid() {
		return moves
	}

	if p.board.Get(ahead) == chess.Empty {
		moves = append(moves, chess.MoveOnBoard(&p.board, sq, ahead, 0))
		if sq.Row == chess.PawnStartRow(colour) {
			twoAhead := sq.Offset(2*dir, 0)
			if p.board.Get(twoAhead) == chess.Empty {
				moves = append(moves, chess.MoveOnBoard(&p.board, sq, twoAhead, 0))
			}
		}
	}

	// Captures, left then right
	for _, dc := range [2]int{-1, 1} {
		target := sq.Offset(dir, dc)
		if !target.Valid() {
			continue
		}
		if p.board.Get(target).Is(colour.Opposite()) {
			moves = append(moves, chess.MoveOnBoard(&p.board, sq, target, 0))
		} else if p.hasEnPassant && target == p.enPassant {
			moves = append(moves, chess.MoveOnBoard(&p.board, sq, target, chess.FlagEnPassant))
		}
	}
	return moves
}
