package panchanga

import (
	"sync"
	"time"
)

// CacheConfig holds configuration for the snapshot cache.
type CacheConfig struct {
	// MaxEntries bounds the cache size. When full, the oldest-inserted
	// entry is evicted first.
	MaxEntries int
	// TTL is the age past which an entry is treated as a miss and
	// recomputed. Ephemeris output is deterministic, so the TTL exists
	// only to bound memory in long-running processes, not for
	// correctness.
	TTL time.Duration
}

// DefaultCacheConfig fits one year of daily snapshots at one location.
var DefaultCacheConfig = CacheConfig{
	MaxEntries: 365,
	TTL:        24 * time.Hour,
}

// CacheStats describes the cache's current occupancy and limits.
type CacheStats struct {
	Size    int
	MaxSize int
	TTL     time.Duration
}

type cacheEntry struct {
	snapshot  *Snapshot
	createdAt time.Time
}

// snapshotCache is a bounded, time-expiring map from (date, rounded
// location) keys to snapshots. Entries are never mutated in place; they
// are created on miss and destroyed on eviction or expiry.
type snapshotCache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	order      []string // insertion order, oldest first
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

func newSnapshotCache(cfg CacheConfig) *snapshotCache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultCacheConfig.MaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheConfig.TTL
	}
	return &snapshotCache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: cfg.MaxEntries,
		ttl:        cfg.TTL,
		now:        time.Now,
	}
}

// getOrCompute returns the cached snapshot for key or runs compute and
// stores its result. The check, the computation and the insertion share
// one lock, so concurrent lookups of the same key never duplicate engine
// work or race the capacity accounting. Failed computations are not
// stored.
func (c *snapshotCache) getOrCompute(key string, compute func() (*Snapshot, error)) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		if c.now().Sub(entry.createdAt) < c.ttl {
			return entry.snapshot, nil
		}
		// Expired entries are never served stale.
		c.remove(key)
	}

	snapshot, err := compute()
	if err != nil {
		return nil, err
	}

	if len(c.entries) >= c.maxEntries {
		c.remove(c.order[0])
	}
	c.entries[key] = &cacheEntry{snapshot: snapshot, createdAt: c.now()}
	c.order = append(c.order, key)
	return snapshot, nil
}

// remove must be called with the lock held.
func (c *snapshotCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *snapshotCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
}

func (c *snapshotCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:    len(c.entries),
		MaxSize: c.maxEntries,
		TTL:     c.ttl,
	}
}
