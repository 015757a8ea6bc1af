package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithColour enables or disables terminal colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(flip bool) *ConfigBuilder {
	b.cfg.Display.Flip = flip
	return b
}

// WithShowMoves prints the legal moves after every board.
func (b *ConfigBuilder) WithShowMoves(show bool) *ConfigBuilder {
	b.cfg.Display.ShowMoves = show
	return b
}

// WithCoordinates controls the file and rank labels.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = show
	return b
}

// WithWorkers sets the number of divide workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftCache enables the perft cache with the given capacity.
func (b *ConfigBuilder) WithPerftCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Perft.UseCache = enabled
	b.cfg.Perft.CacheCapacity = capacity
	return b
}

// WithMaxPerftDepth sets the deepest perft the tool accepts.
func (b *ConfigBuilder) WithMaxPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}
