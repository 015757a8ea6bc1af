package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PerftConfig holds settings for the perft and divide commands.
type PerftConfig struct {
	// Workers is the number of goroutines divide spreads root moves over
	Workers int

	// UseCache memoises subtree counts by position hash
	UseCache bool

	// CacheCapacity bounds the cache entries; 0 means unlimited
	CacheCapacity int

	// MaxDepth rejects deeper requests, since counts grow exponentially
	MaxDepth int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:       runtime.NumCPU(),
		UseCache:      true,
		CacheCapacity: 1 << 20,
		MaxDepth:      6,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be at least 1: %w",
			p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheCapacity < 0 {
		return fmt.Errorf("perft cache capacity (%d) is negative: %w",
			p.CacheCapacity, errors.ErrInvalidConfig)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("perft max depth (%d) must be at least 1: %w",
			p.MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// CheckDepth returns an error if depth is outside 1..MaxDepth.
func (p *PerftConfig) CheckDepth(depth int) error {
	if depth < 1 || depth > p.MaxDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w",
			depth, p.MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}
