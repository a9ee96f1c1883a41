// Package ratelimit provides a Redis backed fixed-window rate limiter for
// form submissions.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/festy23/innov8x/internal/config"
)

// KeyPrefix namespaces limiter counters in Redis.
const KeyPrefix = "ratelimit"

// Result describes the outcome of a single Allow call.
type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// RedisLimiter counts requests per key in fixed windows stored in Redis.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit requests per key per window.
func New(client redis.Cmdable, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// NewClient creates a Redis client from configuration and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("redis address is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// Allow increments the counter for key and reports whether it is within the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	redisKey := fmt.Sprintf("%s:%s", KeyPrefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// First hit opens the window.
	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	result := Result{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: l.limit - count,
	}
	if result.Remaining < 0 {
		result.Remaining = 0
	}

	if !result.Allowed {
		ttl, err := l.client.PTTL(ctx, redisKey).Result()
		if err != nil {
			return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
		}
		// A counter without expiry would block forever; restart its window.
		if ttl < 0 {
			if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
				return Result{}, fmt.Errorf("failed to set rate limit window: %w", err)
			}
			ttl = l.window
		}
		result.RetryAfter = ttl
	}

	return result, nil
}
