// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package cache provides byte-oriented caches with TTL support.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Cache provides thread-safe caching with expiration support.
// Implementations never fail loudly: a backend error reads as a miss.
type Cache interface {
	// Get retrieves a value. The second result is false if not found or expired.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores a value with the specified TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Delete removes a value.
	Delete(ctx context.Context, key string)
	// Stats returns cache statistics.
	Stats() Stats
	// Close releases background resources.
	Close() error
}

// Stats holds cache performance counters.
type Stats struct {
	Hits        int64 // successful Get operations
	Misses      int64 // failed Get operations (not found, expired or backend error)
	Sets        int64 // Set operations
	Evictions   int64 // expired entries cleaned up
	CurrentSize int   // current number of cached entries
}

type counters struct {
	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64
}

type entry struct {
	value      []byte
	expiration time.Time
}

func (e *entry) isExpired(now time.Time) bool {
	return now.After(e.expiration)
}

// memoryCache is an in-memory implementation of Cache.
type memoryCache struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	stats    counters
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates a new in-memory cache.
// A positive cleanupInterval starts a janitor goroutine that drops expired entries; Close stops it.
func NewMemoryCache(cleanupInterval time.Duration) Cache {
	c := &memoryCache{
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.janitor(cleanupInterval)
	}
	return c
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()

	if !found || e.isExpired(time.Now()) {
		c.stats.misses.Add(1)
		return nil, false
	}
	c.stats.hits.Add(1)
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = &entry{value: stored, expiration: time.Now().Add(ttl)}
	c.mu.Unlock()
	c.stats.sets.Add(1)
}

func (c *memoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *memoryCache) Stats() Stats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()
	return Stats{
		Hits:        c.stats.hits.Load(),
		Misses:      c.stats.misses.Load(),
		Sets:        c.stats.sets.Load(),
		Evictions:   c.stats.evictions.Load(),
		CurrentSize: size,
	}
}

func (c *memoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

// deleteExpired removes all expired entries and returns how many were dropped.
func (c *memoryCache) deleteExpired() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if e.isExpired(now) {
			delete(c.entries, key)
			count++
		}
	}
	c.stats.evictions.Add(int64(count))
	return count
}

func (c *memoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-c.stop:
			return
		}
	}
}
