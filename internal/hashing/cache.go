package hashing

import "sync"

type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache stores node counts by (position key, depth). It is safe for
// concurrent use.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity;
// once full, new entries are dropped.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached count for a key and depth.
func (c *PerftCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[cacheKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return n, ok
}

// Put records a count unless the cache is full.
func (c *PerftCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *PerftCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
