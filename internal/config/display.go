package config

// DisplayConfig holds settings for how the board is printed.
type DisplayConfig struct {
	// Colour draws squares and pieces with terminal colours
	Colour bool

	// Flip draws the board from Black's side
	Flip bool

	// ShowMoves prints the legal moves after every board
	ShowMoves bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      true,
		Coordinates: true,
	}
}
