package panchanga

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeCounter(calls *int) func() (*Snapshot, error) {
	return func() (*Snapshot, error) {
		*calls++
		return &Snapshot{Date: "2025-01-01"}, nil
	}
}

func TestCacheHitSkipsCompute(t *testing.T) {
	cache := newSnapshotCache(DefaultCacheConfig)
	calls := 0

	first, err := cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)
	second, err := cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
}

func TestCacheEvictsOldestInsertedFirst(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{MaxEntries: 3, TTL: time.Hour})
	calls := 0

	for _, key := range []string{"a", "b", "c"} {
		_, err := cache.getOrCompute(key, computeCounter(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, cache.stats().Size)

	// Inserting a fourth key evicts "a", the oldest insertion.
	_, err := cache.getOrCompute("d", computeCounter(&calls))
	require.NoError(t, err)
	assert.Equal(t, 3, cache.stats().Size)

	calls = 0
	_, err = cache.getOrCompute("b", computeCounter(&calls))
	require.NoError(t, err)
	assert.Equal(t, 0, calls, "b should still be cached")

	_, err = cache.getOrCompute("a", computeCounter(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "a should have been evicted")
}

func TestCacheSizeNeverExceedsCapacity(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{MaxEntries: 5, TTL: time.Hour})
	calls := 0

	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		_, err := cache.getOrCompute(key, computeCounter(&calls))
		require.NoError(t, err)
		assert.LessOrEqual(t, cache.stats().Size, 5)
	}
}

func TestCacheTTLExpiryRecomputes(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{MaxEntries: 10, TTL: time.Hour})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	calls := 0
	_, err := cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "fresh entry must be served from cache")

	now = now.Add(time.Hour)
	_, err = cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entry must be recomputed, never served stale")
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	cache := newSnapshotCache(DefaultCacheConfig)

	boom := errors.New("boom")
	_, err := cache.getOrCompute("k", func() (*Snapshot, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.stats().Size)
}

func TestCacheClearAndStats(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{MaxEntries: 42, TTL: 2 * time.Hour})
	calls := 0
	_, err := cache.getOrCompute("k", computeCounter(&calls))
	require.NoError(t, err)

	stats := cache.stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 42, stats.MaxSize)
	assert.Equal(t, 2*time.Hour, stats.TTL)

	cache.clear()
	assert.Equal(t, 0, cache.stats().Size)
}
