// Package engine implements the chess rules: position state, pseudo-legal
// and legal move generation, move application and reversal, and the
// check, checkmate and stalemate tests.
//
// A Position is mutated in place and is not safe for concurrent use. Run
// concurrent queries on independent copies made with Clone.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// historyEntry is the part of the state that Apply cannot reconstruct from
// the move itself. One entry is pushed per applied move.
type historyEntry struct {
	rights       chess.CastlingRights
	enPassant    chess.Square
	hasEnPassant bool
}

// Position holds the full state of one game.
type Position struct {
	board  chess.Board
	toMove chess.Colour

	// Keep track of where the two kings are for check detection.
	kings [2]chess.Square

	rights chess.CastlingRights

	// Is an en-passant capture possible? If so enPassant is the square
	// the capturing pawn lands on.
	enPassant    chess.Square
	hasEnPassant bool

	// history[0] describes the state before the first logged move; the top
	// entry always matches the current rights and en-passant target.
	history []historyEntry
	log     []chess.Move

	checkmate bool
	stalemate bool
}

// NewPosition creates a position in the standard starting configuration.
func NewPosition() *Position {
	p := &Position{
		board:  chess.InitialBoard(),
		toMove: chess.White,
		rights: chess.AllCastlingRights,
	}
	p.kings[chess.White] = chess.MustParseSquare("e1")
	p.kings[chess.Black] = chess.MustParseSquare("e8")
	p.history = []historyEntry{p.currentEntry()}
	return p
}

func (p *Position) currentEntry() historyEntry {
	return historyEntry{
		rights:       p.rights,
		enPassant:    p.enPassant,
		hasEnPassant: p.hasEnPassant,
	}
}

// Board returns a copy of the board.
func (p *Position) Board() chess.Board {
	return p.board
}

// PieceAt returns the content of a single cell.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// ToMove returns the side to move.
func (p *Position) ToMove() chess.Colour {
	return p.toMove
}

// KingSquare returns the cached location of the colour's king.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	return p.kings[colour]
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.rights
}

// EnPassantTarget returns the square a pawn may capture onto en passant,
// valid only for the ply right after a two-square pawn advance.
func (p *Position) EnPassantTarget() (chess.Square, bool) {
	return p.enPassant, p.hasEnPassant
}

// MoveLog returns the applied moves, oldest first.
func (p *Position) MoveLog() []chess.Move {
	out := make([]chess.Move, len(p.log))
	copy(out, p.log)
	return out
}

// LastMove returns the most recently applied move.
func (p *Position) LastMove() (chess.Move, bool) {
	if len(p.log) == 0 {
		return chess.Move{}, false
	}
	return p.log[len(p.log)-1], true
}

// Ply returns the number of applied moves.
func (p *Position) Ply() int {
	return len(p.log)
}

// Checkmate reports the flag set by the last LegalMoves call.
func (p *Position) Checkmate() bool {
	return p.checkmate
}

// Stalemate reports the flag set by the last LegalMoves call.
func (p *Position) Stalemate() bool {
	return p.stalemate
}

// Clone returns an independent deep copy.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]historyEntry(nil), p.history...)
	c.log = append([]chess.Move(nil), p.log...)
	return &c
}

// Hash returns the Zobrist key of the current position. The move log and
// outcome flags do not contribute.
func (p *Position) Hash() uint64 {
	return hashing.Key(&p.board, p.toMove, p.rights, p.enPassant, p.hasEnPassant)
}

// State is a comparable snapshot of everything Apply and Revert touch.
type State struct {
	Board        chess.Board
	ToMove       chess.Colour
	WhiteKing    chess.Square
	BlackKing    chess.Square
	Rights       chess.CastlingRights
	EnPassant    chess.Square
	HasEnPassant bool
	LogLength    int
	HistoryDepth int
}

// State captures the current state. Outcome flags are excluded: they are
// outputs of LegalMoves, not inputs to it.
func (p *Position) State() State {
	return State{
		Board:        p.board,
		ToMove:       p.toMove,
		WhiteKing:    p.kings[chess.White],
		BlackKing:    p.kings[chess.Black],
		Rights:       p.rights,
		EnPassant:    p.enPassant,
		HasEnPassant: p.hasEnPassant,
		LogLength:    len(p.log),
		HistoryDepth: len(p.history),
	}
}
