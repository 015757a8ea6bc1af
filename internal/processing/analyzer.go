// Package processing replays and analyses sequences of moves.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// fiftyMovePlies is the number of plies without a pawn move or capture
// after which the fifty-move rule could be claimed.
const fiftyMovePlies = 100

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Checks     int
	Castles    int
	Promotions int
	EnPassants int

	HasFiftyMoveRule   bool
	HasRepetition      bool
	Has5FoldRepetition bool
	Positions          []uint64 // Zobrist hashes for repetition detection

	Outcome engine.Outcome
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// FiftyMoveTriggered returns true if a hundred plies passed without a
// pawn move or capture.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// String summarises the analysis on one line.
func (ga *GameAnalysis) String() string {
	s := fmt.Sprintf("plies %d, captures %d, checks %d, castles %d, promotions %d, en passant %d",
		ga.Plies, ga.Captures, ga.Checks, ga.Castles, ga.Promotions, ga.EnPassants)
	if ga.HasRepetition {
		s += ", threefold repetition"
	}
	if ga.Has5FoldRepetition {
		s += ", fivefold repetition"
	}
	if ga.HasFiftyMoveRule {
		s += ", fifty-move rule"
	}
	if ga.Outcome != engine.InProgress {
		s += ", " + ga.Outcome.String()
	}
	return s
}

// ValidationResult holds the result of move-list validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// SplitMoveText splits free text into move tokens, dropping move numbers
// such as "1." or "12...".
func SplitMoveText(text string) []string {
	var moves []string
	for _, field := range strings.Fields(text) {
		if i := strings.LastIndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		if field != "" {
			moves = append(moves, field)
		}
	}
	return moves
}

// ReplayMoves plays moves from the initial position. On the first move
// that is not legal it returns the position reached so far together with
// a *errors.MoveError.
func ReplayMoves(moves []string) (*engine.Position, error) {
	p := engine.NewPosition()
	for _, text := range moves {
		if err := p.Play(text); err != nil {
			return p, err
		}
	}
	return p, nil
}

// AnalyzeMoves replays moves and gathers statistics along the way.
func AnalyzeMoves(moves []string) (*engine.Position, *GameAnalysis, error) {
	p := engine.NewPosition()
	analysis := &GameAnalysis{}

	posHash := p.Hash()
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}
	quietPlies := 0

	for _, text := range moves {
		if err := p.Play(text); err != nil {
			return p, analysis, err
		}
		m, _ := p.LastMove()
		analysis.Plies++
		countMove(analysis, m)
		if p.InCheck() {
			analysis.Checks++
		}

		if m.IsCapture() || m.Moved().Kind() == chess.Pawn {
			quietPlies = 0
		} else {
			quietPlies++
		}
		if quietPlies >= fiftyMovePlies {
			analysis.HasFiftyMoveRule = true
		}

		posHash = p.Hash()
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++

		// 3-fold repetition
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition
		if positionCount[posHash] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	p.LegalMoves()
	analysis.Outcome = p.Outcome()
	return p, analysis, nil
}

func countMove(analysis *GameAnalysis, m chess.Move) {
	if m.IsCapture() {
		analysis.Captures++
	}
	if m.IsCastle() {
		analysis.Castles++
	}
	if m.IsPromotion() {
		analysis.Promotions++
	}
	if m.IsEnPassant() {
		analysis.EnPassants++
	}
}

// ValidateMoves checks that every move is legal in turn.
func ValidateMoves(moves []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	_, err := ReplayMoves(moves)
	if err == nil {
		return result
	}

	result.Valid = false
	result.ErrorMsg = err.Error()
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		result.ErrorPly = moveErr.Ply
	}
	return result
}
