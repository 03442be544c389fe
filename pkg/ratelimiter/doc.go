// Package ratelimiter implements a token bucket limiter with pluggable
// storage.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each allowed request consumes tokens; a request that would
// overdraw the bucket is denied without consuming anything.
//
// MemoryStore keeps buckets in process memory. RedisStore keeps them in Redis
// behind an atomic Lua script, so several ideabloom instances share one limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     1,
//		RefillInterval: 3 * time.Second,
//	})
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP)).Get("/api/names", h)
package ratelimiter
