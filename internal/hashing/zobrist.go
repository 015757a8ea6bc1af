// Package hashing provides Zobrist position keys and a concurrent cache of
// perft node counts keyed by them.
package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Zobrist keys, generated from a fixed seed so keys are stable across runs.
var (
	zobristPiece      [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // One per file
	zobristCastling   [4]uint64               // One per right
	zobristSideToMove uint64                  // XOR when black to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := chess.White; c <= chess.Black; c++ {
		for k := chess.Pawn; k < chess.NumKinds; k++ {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// Key computes the Zobrist key of a position from its parts.
func Key(board *chess.Board, toMove chess.Colour, rights chess.CastlingRights, ep chess.Square, hasEP bool) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board[row][col]
			if piece == chess.Empty {
				continue
			}
			h ^= zobristPiece[piece.Colour()][piece.Kind()][row*chess.BoardSize+col]
		}
	}

	if hasEP {
		h ^= zobristEnPassant[ep.Col]
	}
	for i, held := range [4]bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if held {
			h ^= zobristCastling[i]
		}
	}
	if toMove == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}
