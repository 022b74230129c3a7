// Package cache provides a size-bounded LRU cache for encoded images.
//
// Entries are keyed by a 64-bit content hash and weighed by their byte
// length, so the bound is on memory rather than entry count.
//
// Thread safety: All methods are safe for concurrent use.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultMaxBytes is used when New is given a non-positive budget.
const DefaultMaxBytes = 64 << 20

// Cache is a thread-safe LRU cache of byte slices with a total size budget.
type Cache struct {
	mu       sync.Mutex
	entries  map[uint64]*node
	lru      list
	size     int
	maxBytes int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Bytes     int
	MaxBytes  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a cache holding at most maxBytes of values.
func New(maxBytes int) *Cache {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Cache{
		entries:  make(map[uint64]*node),
		maxBytes: maxBytes,
	}
}

// Get returns the value stored under key and marks it most recently used.
// The returned slice is shared; callers must not modify it.
func (c *Cache) Get(key uint64) ([]byte, bool) {
	c.mu.Lock()
	var value []byte
	n, ok := c.entries[key]
	if ok {
		c.lru.moveToFront(n)
		value = n.value
	}
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return value, true
}

// Set stores value under key, evicting least recently used entries until
// the budget holds. A value larger than the whole budget is not stored.
func (c *Cache) Set(key uint64, value []byte) {
	if len(value) > c.maxBytes {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.size += len(value) - len(n.value)
		n.value = value
		c.lru.moveToFront(n)
	} else {
		n := &node{key: key, value: value}
		c.entries[key] = n
		c.lru.pushFront(n)
		c.size += len(value)
	}

	for c.size > c.maxBytes {
		oldest := c.lru.back()
		if oldest == nil {
			break
		}
		c.lru.remove(oldest)
		delete(c.entries, oldest.key)
		c.size -= len(oldest.value)
		c.evictions.Add(1)
	}
}

// Clear removes all entries. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*node)
	c.lru = list{}
	c.size = 0
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	n, size := len(c.entries), c.size
	c.mu.Unlock()
	return Stats{
		Len:       n,
		Bytes:     size,
		MaxBytes:  c.maxBytes,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
