package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_SetReleasesExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }
	c.lastSweep = now

	for i := 0; i < 10000; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("key-%d", i), "v", time.Minute))
	}
	require.NoError(t, c.Set(ctx, "forever", "v", 0))
	assert.Equal(t, 10000, c.Len(), "oldest entry evicted at capacity")

	now = now.Add(time.Hour)
	require.NoError(t, c.Set(ctx, "fresh", "v", time.Minute))
	assert.Equal(t, 2, c.Len())

	_, ok, _ := c.Get(ctx, "forever")
	assert.True(t, ok)
	_, ok, _ = c.Get(ctx, "key-9999")
	assert.False(t, ok)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCacheWithSize(2)

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))
	_, _, _ = c.Get(ctx, "a")
	require.NoError(t, c.Set(ctx, "c", "3", 0))

	assert.Equal(t, 2, c.Len())
	_, ok, _ := c.Get(ctx, "b")
	assert.False(t, ok, "b was least recently used")
	val, ok, _ := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "1", val)
}

func TestNewMemoryCacheWithSize_NonPositive(t *testing.T) {
	c := NewMemoryCacheWithSize(0)
	require.NoError(t, c.Set(context.Background(), "k", "v", 0))
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			_ = c.Set(ctx, key, "v", time.Hour)
			_, _, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 26, c.Len())
}

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	var c Cache = NopCache{}
	require.NoError(t, c.Set(ctx, "k", "v", 0))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	// nothing listens on port 1; errors are returned, never panics
	c := NewRedisCache("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", "v", time.Minute))
}
