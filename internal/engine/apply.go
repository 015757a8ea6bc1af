package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Apply plays a move on the position. The move must be one returned by
// LegalMoves for the current state (or equal to one); other moves leave
// the board in an undefined state.
func (p *Position) Apply(move chess.Move) {
	start, end := move.Start(), move.End()
	piece := move.Moved()
	colour := piece.Colour()

	// Move the piece
	p.board.Set(start, chess.Empty)
	p.board.Set(end, piece)

	if piece.Kind() == chess.King {
		p.kings[colour] = end
	}

	// Promotion always produces a queen.
	if move.IsPromotion() {
		p.board.Set(end, chess.MakePiece(colour, chess.Queen))
	}

	// Set en passant square if double pawn push
	if move.IsDoublePawnPush() {
		p.enPassant = chess.Sq((start.Row+end.Row)/2, start.Col)
		p.hasEnPassant = true
	} else {
		p.enPassant = chess.Square{}
		p.hasEnPassant = false
	}

	// The captured pawn stands beside the start square, behind the
	// destination.
	if move.IsEnPassant() {
		p.board.Set(chess.Sq(start.Row, end.Col), chess.Empty)
	}

	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move)
		p.board.Set(rookTo, p.board.Get(rookFrom))
		p.board.Set(rookFrom, chess.Empty)
	}

	p.updateCastlingRights(move)
	p.history = append(p.history, p.currentEntry())
	p.log = append(p.log, move)
	p.toMove = p.toMove.Opposite()
}

// Revert takes back the most recent move. It is a no-op when no move has
// been applied.
func (p *Position) Revert() {
	n := len(p.log)
	if n == 0 {
		return
	}
	move := p.log[n-1]
	p.log = p.log[:n-1]

	start, end := move.Start(), move.End()
	piece := move.Moved()

	p.board.Set(start, piece)
	p.board.Set(end, move.Captured())

	if piece.Kind() == chess.King {
		p.kings[piece.Colour()] = start
	}

	if move.IsEnPassant() {
		p.board.Set(end, chess.Empty)
		p.board.Set(chess.Sq(start.Row, end.Col), move.Captured())
	}

	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move)
		p.board.Set(rookFrom, p.board.Get(rookTo))
		p.board.Set(rookTo, chess.Empty)
	}

	// Pop this move's entry, then restore from the one beneath it.
	p.history = p.history[:len(p.history)-1]
	prev := p.history[len(p.history)-1]
	p.rights = prev.rights
	p.enPassant = prev.enPassant
	p.hasEnPassant = prev.hasEnPassant

	p.toMove = p.toMove.Opposite()
}
