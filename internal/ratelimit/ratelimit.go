// Package ratelimit enforces the free tier's daily request quota using a
// fixed 24 hour window counted in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "splitdecision:ratelimit"
	window    = 24 * time.Hour
)

// Result reports whether a request is allowed and how many requests remain
// in the current window.
type Result struct {
	OK        bool
	Remaining int
}

// Limiter counts requests per client in fixed windows. A Redis failure
// rejects the request rather than letting the quota leak.
type Limiter struct {
	rdb   *redis.Client
	limit int
	now   func() time.Time
}

// New creates a Limiter allowing limit requests per client per day.
func New(rdb *redis.Client, limit int) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, now: time.Now}
}

// key buckets a client into the current fixed window.
func (l *Limiter) key(clientID string) string {
	bucket := l.now().UnixMilli() / window.Milliseconds()
	return fmt.Sprintf("%s:%s:%d", keyPrefix, clientID, bucket)
}

// Check consumes one request from the client's quota. The first request in a
// window sets the key's expiry so stale buckets clean themselves up.
func (l *Limiter) Check(ctx context.Context, clientID string) (Result, error) {
	key := l.key(clientID)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit check failed: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expiry failed: %w", err)
		}
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{OK: int(count) <= l.limit, Remaining: remaining}, nil
}
