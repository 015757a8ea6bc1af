package engine

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The position, including its outcome flags, is restored before it returns.
func Perft(p *Position, depth int) uint64 {
	defer p.keepOutcome()()
	return perft(p, depth)
}

// keepOutcome saves the checkmate and stalemate flags and returns a
// function that puts them back. LegalMoves on every child overwrites them.
func (p *Position) keepOutcome() func() {
	checkmate, stalemate := p.checkmate, p.stalemate
	return func() {
		p.checkmate, p.stalemate = checkmate, stalemate
	}
}

func perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.Apply(m)
		nodes += perft(p, depth-1)
		p.Revert()
	}
	return nodes
}

// CachedPerft is Perft with subtree counts memoised in cache.
func CachedPerft(p *Position, depth int, cache *hashing.PerftCache) uint64 {
	defer p.keepOutcome()()
	return cachedPerft(p, depth, cache)
}

func cachedPerft(p *Position, depth int, cache *hashing.PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	key := p.Hash()
	if n, ok := cache.Get(key, depth); ok {
		return n
	}

	moves := p.LegalMoves()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			p.Apply(m)
			nodes += cachedPerft(p, depth-1, cache)
			p.Revert()
		}
	}
	cache.Put(key, depth, nodes)
	return nodes
}

// DivideEntry is the subtree count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// DivideOptions configures Divide.
type DivideOptions struct {
	Workers int
	Cache   *hashing.PerftCache // Optional, shared by all workers
}

// Divide counts the subtree below each legal root move, in the order
// LegalMoves returns them. Root moves are spread over a worker pool; each
// worker counts on its own clone of p, so p itself is never touched by
// more than one goroutine.
func Divide(ctx context.Context, p *Position, depth int, opts DivideOptions) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	roots := p.LegalMoves()

	process := func(item worker.WorkItem) worker.ProcessResult {
		clone := p.Clone()
		clone.Apply(item.Move)
		var nodes uint64
		if opts.Cache != nil {
			nodes = CachedPerft(clone, item.Depth, opts.Cache)
		} else {
			nodes = Perft(clone, item.Depth)
		}
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}

	items := make([]worker.WorkItem, len(roots))
	for i, m := range roots {
		items[i] = worker.WorkItem{Move: m, Depth: depth - 1, Index: i}
	}

	pool := worker.NewPool(process, worker.WithWorkers(opts.Workers), worker.WithBufferSize(len(items)))
	results, err := pool.Run(ctx, items)

	entries := make([]DivideEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, DivideEntry{Move: r.Move, Nodes: r.Nodes})
	}
	return entries, err
}

// Total sums the node counts of a divide.
func Total(entries []DivideEntry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
