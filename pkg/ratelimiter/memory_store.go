package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type memoryBucket struct {
	tokens     int
	lastRefill time.Time
	expiresAt  time.Time
}

// MemoryStore keeps buckets in a map. Buckets idle long enough to be full
// again are dropped by a background sweep.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
	now     func() time.Time

	sweepInterval time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often expired buckets are removed. Zero disables
// the sweep.
func WithSweepInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.sweepInterval = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore returns a store; call Close to stop the sweeper.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:       make(map[string]*memoryBucket),
		now:           time.Now,
		sweepInterval: time.Minute,
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sweepInterval > 0 {
		go s.sweep()
	}
	return s
}

// ConsumeTokens implements Store.
func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok || now.After(b.expiresAt) {
		b = &memoryBucket{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	if intervals := int(now.Sub(b.lastRefill) / cfg.RefillInterval); intervals > 0 {
		b.tokens = min(cfg.Capacity, b.tokens+intervals*cfg.RefillRate)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
	}

	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}
	b.expiresAt = now.Add(cfg.ttl())

	return remaining, b.lastRefill.Add(cfg.RefillInterval), nil
}

// Len returns the number of tracked buckets.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// Close stops the background sweep. It is safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	t := time.NewTicker(s.sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.removeExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, b := range s.buckets {
		if now.After(b.expiresAt) {
			delete(s.buckets, key)
		}
	}
}
