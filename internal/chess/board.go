package chess

import "fmt"

// Board is the 8x8 grid of cells, indexed [row][col]. Row 0 is black's
// back rank. Cells hold pieces by value so copying a Board copies the game.
type Board [BoardSize][BoardSize]Piece

// backRank lists the starting kinds of both back ranks from file a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b[0][col] = B(backRank[col])
		b[1][col] = B(Pawn)
		b[6][col] = W(Pawn)
		b[7][col] = W(backRank[col])
	}
	return b
}

// Get returns the piece at sq. It panics if sq is off the board: every
// generator bounds its walk, so an escape is a logic defect.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: board read outside grid at %v", sq))
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece at sq, panicking if sq is off the board.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: board write outside grid at %v", sq))
	}
	b[sq.Row][sq.Col] = piece
}

// Find returns the first square holding piece in row-major order.
func (b *Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				return Square{row, col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many cells hold piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := range b {
		for _, p := range b[row] {
			if p == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of piece letters, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			buf = append(buf, b[row][col].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
