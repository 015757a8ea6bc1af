package engine

// Outcome summarises the game state for the side to move.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Outcome reads the flags set by the last LegalMoves call.
func (p *Position) Outcome() Outcome {
	switch {
	case p.checkmate:
		return Checkmate
	case p.stalemate:
		return Stalemate
	default:
		return InProgress
	}
}

// IsCheckmate returns true if the position is checkmate for the side to
// move. It computes the answer without touching the outcome flags.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate for the side to
// move. It computes the answer without touching the outcome flags.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
