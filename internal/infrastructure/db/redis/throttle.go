package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per username in Redis.
// Key format: login_fail:<username>, expiring after the window so a burst of
// failures locks the name out only temporarily.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxFailures: int64(maxFailures), window: window}
}

// Exceeded reports whether username has reached its failure budget.
func (t *LoginThrottle) Exceeded(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure counts one failed attempt and refreshes the window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_fail:" + username
}
