// Package cache stores serialized projection results keyed by their inputs.
package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a string key/value store with per-entry expiry. A zero ttl means
// the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// DefaultMaxEntries bounds a MemoryCache created without an explicit size.
const DefaultMaxEntries = 10000

// sweepInterval is the minimum clock time between expiry sweeps.
const sweepInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is an in-process Cache bounded to a fixed number of entries.
// The least recently used entry is evicted when full, and expired entries
// are swept on Set.
type MemoryCache struct {
	mu        sync.Mutex
	entries   *lru.Cache[string, memoryEntry]
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryCache creates an empty in-memory cache holding DefaultMaxEntries.
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithSize(DefaultMaxEntries)
}

// NewMemoryCacheWithSize creates an empty in-memory cache holding at most
// maxEntries. A non-positive size uses DefaultMaxEntries.
func NewMemoryCacheWithSize(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	m := &MemoryCache{entries: entries, now: time.Now}
	m.lastSweep = m.now()
	return m
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries.Get(key)
	if !ok {
		return "", false, nil
	}
	if entry.expired(m.now()) {
		m.entries.Remove(key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweep(now)
	}
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	m.entries.Add(key, entry)
	return nil
}

// sweep drops every expired entry. Callers hold m.mu.
func (m *MemoryCache) sweep(now time.Time) {
	for _, key := range m.entries.Keys() {
		if entry, ok := m.entries.Peek(key); ok && entry.expired(now) {
			m.entries.Remove(key)
		}
	}
	m.lastSweep = now
}

// Len returns the number of stored entries. Entries that expired since the
// last sweep are counted until they are read or swept.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries.Len()
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (NopCache) Set(context.Context, string, string, time.Duration) error { return nil }
