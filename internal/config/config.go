// Package config provides configuration for the chess command-line tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Verbosity levels for the log writer.
const (
	Silent     = 0 // Nothing is logged
	GameEvents = 1 // New games, undo and game endings
	EveryMove  = 2 // Every applied move as well
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	Display *DisplayConfig
	Perft   *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  GameEvents,
		Display:    NewDisplayConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > EveryMove {
		return fmt.Errorf("verbosity %d outside %d..%d: %w",
			c.Verbosity, Silent, EveryMove, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("no log writer: %w", errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// Logf writes to the log file when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}
