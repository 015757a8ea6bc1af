package chess

// MoveFlags marks the special kinds of move a generator can produce.
type MoveFlags uint8

const (
	FlagEnPassant MoveFlags = 1 << iota
	FlagCastle
)

// Move is an immutable record of one ply. Construct it with NewMove or
// MoveOnBoard; the zero value is not a meaningful move.
type Move struct {
	start    Square
	end      Square
	moved    Piece
	captured Piece

	promotion bool
	enPassant bool
	castle    bool
}

// NewMove builds a move from the two cell values read at its start and
// end squares. The promotion flag is derived from the moved piece and the
// destination row. For an en-passant move the captured piece is the
// opposing pawn, not the (empty) content of the end square.
func NewMove(start, end Square, moved, captured Piece, flags MoveFlags) Move {
	m := Move{
		start:     start,
		end:       end,
		moved:     moved,
		captured:  captured,
		enPassant: flags&FlagEnPassant != 0,
		castle:    flags&FlagCastle != 0,
	}
	if moved.Kind() == Pawn && end.Row == PromotionRow(moved.Colour()) {
		m.promotion = true
	}
	if m.enPassant {
		m.captured = MakePiece(moved.Colour().Opposite(), Pawn)
	}
	return m
}

// MoveOnBoard builds a move by reading the start and end cells of b.
// The move keeps no reference to b.
func MoveOnBoard(b *Board, start, end Square, flags MoveFlags) Move {
	return NewMove(start, end, b.Get(start), b.Get(end), flags)
}

// Start returns the origin square.
func (m Move) Start() Square { return m.start }

// End returns the destination square.
func (m Move) End() Square { return m.end }

// Moved returns the piece that moves.
func (m Move) Moved() Piece { return m.moved }

// Captured returns the captured piece, or Empty.
func (m Move) Captured() Piece { return m.captured }

// IsPromotion reports whether a pawn reaches its last rank.
func (m Move) IsPromotion() bool { return m.promotion }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.enPassant }

// IsCastle reports whether the move is a castle (the king's part of it).
func (m Move) IsCastle() bool { return m.castle }

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.captured != Empty
}

// IsDoublePawnPush reports whether a pawn advanced two rows.
func (m Move) IsDoublePawnPush() bool {
	d := m.end.Row - m.start.Row
	return m.moved.Kind() == Pawn && (d == 2 || d == -2)
}

// ID encodes the four coordinates as a decimal integer. Two moves with
// the same squares share an ID whatever their promotion outcome.
func (m Move) ID() int {
	return m.start.Row*1000 + m.start.Col*100 + m.end.Row*10 + m.end.Col
}

// Equal compares moves by ID.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// Notation returns pure coordinate notation such as "e2e4".
func (m Move) Notation() string {
	return m.start.String() + m.end.String()
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Notation()
}
