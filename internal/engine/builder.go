package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Builder provides a fluent API for hand-built positions.
type Builder struct {
	board        chess.Board
	toMove       chess.Colour
	rights       chess.CastlingRights
	enPassant    chess.Square
	hasEnPassant bool
}

// NewBuilder creates a Builder with an empty board, White to move and no
// castling rights.
func NewBuilder() *Builder {
	return &Builder{toMove: chess.White}
}

// FromBoard replaces the whole board.
func (b *Builder) FromBoard(board chess.Board) *Builder {
	b.board = board
	return b
}

// Place puts a piece on a square.
func (b *Builder) Place(sq chess.Square, piece chess.Piece) *Builder {
	b.board.Set(sq, piece)
	return b
}

// ToMove sets the side to move.
func (b *Builder) ToMove(colour chess.Colour) *Builder {
	b.toMove = colour
	return b
}

// Castling sets the castling rights.
func (b *Builder) Castling(rights chess.CastlingRights) *Builder {
	b.rights = rights
	return b
}

// EnPassant sets the en-passant target square.
func (b *Builder) EnPassant(sq chess.Square) *Builder {
	b.enPassant = sq
	b.hasEnPassant = true
	return b
}

// Build validates the setup and returns the position. Each colour needs
// exactly one king, and every castling right needs its king and rook on
// their original squares.
func (b *Builder) Build() (*Position, error) {
	p := &Position{
		board:        b.board,
		toMove:       b.toMove,
		rights:       b.rights,
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakePiece(colour, chess.King)
		if n := p.board.Count(king); n != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "%v has %d kings", colour, n)
		}
		p.kings[colour], _ = p.board.Find(king)
	}

	if err := b.checkCastling(p); err != nil {
		return nil, err
	}
	if err := b.checkEnPassant(p); err != nil {
		return nil, err
	}

	p.history = []historyEntry{p.currentEntry()}
	return p, nil
}

func (b *Builder) checkCastling(p *Position) error {
	type claim struct {
		held   bool
		colour chess.Colour
		rook   chess.Square
	}
	claims := []claim{
		{b.rights.WhiteKingside, chess.White, chess.Sq(7, 7)},
		{b.rights.WhiteQueenside, chess.White, chess.Sq(7, 0)},
		{b.rights.BlackKingside, chess.Black, chess.Sq(0, 7)},
		{b.rights.BlackQueenside, chess.Black, chess.Sq(0, 0)},
	}
	for _, c := range claims {
		if !c.held {
			continue
		}
		home := chess.Sq(chess.HomeRow(c.colour), 4)
		if p.kings[c.colour] != home {
			return errors.Wrapf(errors.ErrInvalidPosition, "%v castling right without king on %v", c.colour, home)
		}
		if p.board.Get(c.rook) != chess.MakePiece(c.colour, chess.Rook) {
			return errors.Wrapf(errors.ErrInvalidPosition, "%v castling right without rook on %v", c.colour, c.rook)
		}
	}
	return nil
}

func (b *Builder) checkEnPassant(p *Position) error {
	if !b.hasEnPassant {
		return nil
	}
	// The target sits behind a pawn of the side that just moved.
	mover := b.toMove.Opposite()
	pawnSq := b.enPassant.Offset(chess.PawnDirection(mover), 0)
	if !b.enPassant.Valid() || !pawnSq.Valid() ||
		b.enPassant.Row != chess.PawnStartRow(mover)+chess.PawnDirection(mover) ||
		p.board.Get(b.enPassant) != chess.Empty ||
		p.board.Get(pawnSq) != chess.MakePiece(mover, chess.Pawn) {
		return errors.Wrapf(errors.ErrInvalidPosition, "bad en-passant target %v", b.enPassant)
	}
	return nil
}
