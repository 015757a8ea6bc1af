package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// generatorFunc appends the pseudo-legal moves of the piece of the given
// colour standing on sq.
type generatorFunc func(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move

// generators maps each piece kind to its generation routine.
var generators = [chess.NumKinds]generatorFunc{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// PseudoLegalMoves returns the moves of the side to move that obey the
// piece movement rules but may leave its own king attacked. Castling is
// not included.
func (p *Position) PseudoLegalMoves() []chess.Move {
	return p.PseudoLegalMovesFor(p.toMove)
}

// PseudoLegalMovesFor returns the pseudo-legal moves of colour. Pieces are
// scanned in row-major order and each generator walks its directions in a
// fixed order, so the result is deterministic.
func (p *Position) PseudoLegalMovesFor(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := p.board[row][col]
			if !piece.Is(colour) {
				continue
			}
			moves = generators[piece.Kind()](p, chess.Sq(row, col), colour, moves)
		}
	}
	return moves
}
