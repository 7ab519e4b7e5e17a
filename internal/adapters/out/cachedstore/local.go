package cachedstore

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"orderdesk/internal/core/ports"
)

// LocalCache keeps the snapshot in process memory. It serves a single
// instance; use RedisCache when several instances share one store.
type LocalCache struct {
	mu         sync.RWMutex
	clock      clockwork.Clock
	table      ports.Table
	expiresAt  time.Time
	filled     bool
	generation uint64
}

// NewLocalCache creates an empty cache that expires entries on clock.
func NewLocalCache(clock clockwork.Clock) *LocalCache {
	return &LocalCache{clock: clock}
}

// Get returns the table while it has not expired.
func (c *LocalCache) Get(_ context.Context) (ports.Table, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled || !c.clock.Now().Before(c.expiresAt) {
		return ports.Table{}, false, nil
	}
	return c.table, true, nil
}

// Generation returns how many times the cache was invalidated.
func (c *LocalCache) Generation(_ context.Context) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation, nil
}

// Put stores table for ttl unless an invalidation happened after generation
// was read.
func (c *LocalCache) Put(_ context.Context, table ports.Table, ttl time.Duration, generation uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation {
		return false, nil
	}
	c.table = table
	c.expiresAt = c.clock.Now().Add(ttl)
	c.filled = true
	return true, nil
}

// Invalidate drops the table and advances the generation.
func (c *LocalCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = ports.Table{}
	c.filled = false
	c.generation++
	return nil
}
