package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	straightDirs = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-1, -2}, {-2, 1}, {-1, 2}, {1, -2}, {2, -1}, {1, 2}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

func rookMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slidingMoves(p, sq, colour, straightDirs, moves)
}

func bishopMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slidingMoves(p, sq, colour, diagonalDirs, moves)
}

func queenMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	moves = slidingMoves(p, sq, colour, straightDirs, moves)
	return slidingMoves(p, sq, colour, diagonalDirs, moves)
}

func knightMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return steppingMoves(p, sq, colour, knightJumps, moves)
}

func kingMoves(p *Position, sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return steppingMoves(p, sq, colour, kingSteps, moves)
}

// slidingMoves walks each ray until the board edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slidingMoves(p *Position, sq chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		target := sq.Offset(dir[0], dir[1])
		for target.Valid() {
			occupant := p.board.Get(target)
			if occupant != chess.Empty {
				if !occupant.Is(colour) {
					moves = append(moves, chess.MoveOnBoard(&p.board, sq, target, 0))
				}
				break // Blocked
			}
			moves = append(moves, chess.MoveOnBoard(&p.board, sq, target, 0))
			target = target.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// steppingMoves tries each fixed offset once, skipping friendly pieces.
func steppingMoves(p *Position, sq chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		target := sq.Offset(off[0], off[1])
		if !target.Valid() || p.board.Get(target).Is(colour) {
			continue
		}
		moves = append(moves, chess.MoveOnBoard(&p.board, sq, target, 0))
	}
	return moves
}
