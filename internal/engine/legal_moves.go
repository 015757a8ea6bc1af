package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// LegalMoves returns the legal moves of the side to move and updates the
// checkmate and stalemate flags. Each pseudo-legal candidate is applied,
// the mover's king is tested for attack, and the move is reverted; the
// position is left exactly as it was found.
func (p *Position) LegalMoves() []chess.Move {
	candidates := p.PseudoLegalMoves()
	moves := candidates[:0]
	for _, m := range candidates {
		if !p.leavesKingAttacked(m) {
			moves = append(moves, m)
		}
	}

	// Castle moves are legal as generated.
	moves = p.castleMoves(moves)

	if len(moves) == 0 {
		inCheck := p.InCheck()
		p.checkmate = inCheck
		p.stalemate = !inCheck
	} else {
		p.checkmate = false
		p.stalemate = false
	}
	return moves
}

// leavesKingAttacked plays m, hands the turn back to the mover to test its
// king, and takes the move back.
func (p *Position) leavesKingAttacked(m chess.Move) bool {
	p.Apply(m)
	p.toMove = p.toMove.Opposite()
	attacked := p.InCheck()
	p.toMove = p.toMove.Opposite()
	p.Revert()
	return attacked
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. Unlike LegalMoves it leaves the outcome flags alone.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		if !p.leavesKingAttacked(m) {
			return true
		}
	}
	return len(p.castleMoves(nil)) > 0
}

// LegalMovesFrom returns the legal moves whose start square is sq.
func (p *Position) LegalMovesFrom(sq chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range p.LegalMoves() {
		if m.Start() == sq {
			out = append(out, m)
		}
	}
	return out
}

// FindMove resolves coordinate notation such as "e2e4" against the legal
// moves, matching by move identity. A trailing promotion letter is
// accepted and ignored since promotion always produces a queen.
func (p *Position) FindMove(notation string) (chess.Move, error) {
	text := strings.ToLower(strings.TrimSpace(notation))
	if len(text) == 5 && strings.IndexByte("qrbn", text[4]) >= 0 {
		text = text[:4]
	}
	if len(text) != 4 {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidNotation, "%q", notation)
	}
	start, err := chess.ParseSquare(text[:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidNotation, "%q", notation)
	}
	end, err := chess.ParseSquare(text[2:])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidNotation, "%q", notation)
	}

	want := chess.NewMove(start, end, chess.Empty, chess.Empty, 0)
	for _, m := range p.LegalMoves() {
		if m.Equal(want) {
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		Ply:      len(p.log) + 1,
		MoveText: notation,
	}
}

// Play resolves notation with FindMove and applies the move.
func (p *Position) Play(notation string) error {
	m, err := p.FindMove(notation)
	if err != nil {
		return err
	}
	p.Apply(m)
	return nil
}
