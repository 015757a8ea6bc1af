// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece token. The zero value is an empty cell.
type Piece uint8

// Empty is the content of an unoccupied cell.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(int(kind)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Letter returns the FEN-style letter: uppercase for white, lowercase for
// black, '.' for an empty cell.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	l := p.Kind().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a two character token such as "wK" or "--" for empty.
func (p Piece) String() string {
	if p == Empty {
		return "--"
	}
	c := byte('w')
	if p.Colour() == Black {
		c = 'b'
	}
	return string([]byte{c, p.Kind().Letter()})
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	FileBase  = 'a'
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
)

// Square addresses a board cell. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq builds a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	file, rank := name[0], name[1]
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return Square{Row: int(LastRank - rank), Col: int(file - FileBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on error.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// HomeRow returns the back-rank row for a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnDirection returns the row delta of a pawn advance: -1 for White,
// +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row pawns of the colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the farthest row for a pawn of the colour.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the rights set of the starting position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside returns the kingside right of the colour.
func (r CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside returns the queenside right of the colour.
func (r CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// Revoke clears both rights of the colour.
func (r *CastlingRights) Revoke(colour Colour) {
	if colour == White {
		r.WhiteKingside, r.WhiteQueenside = false, false
	} else {
		r.BlackKingside, r.BlackQueenside = false, false
	}
}

// RevokeRookSquare clears the single right tied to a rook home square, if
// sq is one.
func (r *CastlingRights) RevokeRookSquare(sq Square) {
	switch sq {
	case Square{7, 7}:
		r.WhiteKingside = false
	case Square{7, 0}:
		r.WhiteQueenside = false
	case Square{0, 7}:
		r.BlackKingside = false
	case Square{0, 0}:
		r.BlackQueenside = false
	}
}

// String returns the rights in FEN style, "-" if none remain.
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
