package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ideabloom/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testConfig = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

func TestMemoryStore_ConsumeTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new bucket starts full", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
		defer store.Close()

		remaining, _, err := store.ConsumeTokens(ctx, "k", 1, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})

	t.Run("denied request does not drain the bucket", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0), ratelimiter.WithClock(clock.Now))
		defer store.Close()

		remaining, _, err := store.ConsumeTokens(ctx, "k", 3, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		for range 5 {
			remaining, _, err = store.ConsumeTokens(ctx, "k", 1, testConfig)
			require.NoError(t, err)
			assert.Equal(t, -1, remaining)
		}

		clock.Advance(time.Second)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 1, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0), ratelimiter.WithClock(clock.Now))
		defer store.Close()

		_, _, err := store.ConsumeTokens(ctx, "k", 3, testConfig)
		require.NoError(t, err)

		clock.Advance(time.Hour)
		remaining, _, err := store.ConsumeTokens(ctx, "k", 0, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("partial interval keeps refill anchor", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		start := clock.Now()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0), ratelimiter.WithClock(clock.Now))
		defer store.Close()

		_, _, err := store.ConsumeTokens(ctx, "k", 3, testConfig)
		require.NoError(t, err)

		clock.Advance(1500 * time.Millisecond)
		remaining, resetAt, err := store.ConsumeTokens(ctx, "k", 0, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
		assert.Equal(t, start.Add(2*time.Second), resetAt)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
		defer store.Close()

		_, _, err := store.ConsumeTokens(ctx, "a", 3, testConfig)
		require.NoError(t, err)
		remaining, _, err := store.ConsumeTokens(ctx, "b", 1, testConfig)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
		assert.Equal(t, 2, store.Len())
	})
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithSweepInterval(10*time.Millisecond),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()

	_, _, err := store.ConsumeTokens(ctx, "k", 1, testConfig)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
	defer store.Close()

	cfg := ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remaining, _, err := store.ConsumeTokens(ctx, "k", 1, cfg)
			if err == nil && remaining >= 0 {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}
