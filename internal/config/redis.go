package config

import (
	"fmt"
	"time"
)

// RedisConfig holds Redis connection and rate limit configuration.
type RedisConfig struct {
	// Addr is the Redis address. Empty disables rate limiting.
	Addr     string
	Password string
	DB       int
	// RateLimitRequests is the number of submissions allowed per client per window.
	RateLimitRequests int64
	// RateLimitWindow is the length of a rate limit window.
	RateLimitWindow time.Duration
	// RateLimitFailOpen lets submissions through while Redis is unreachable.
	RateLimitFailOpen bool
}

// LoadRedisConfigFromEnv loads Redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:              GetEnv("REDIS_ADDR", ""),
		Password:          GetEnv("REDIS_PASSWORD", ""),
		DB:                GetEnvInt("REDIS_DB", 0),
		RateLimitRequests: GetEnvInt64("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:   GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitFailOpen: GetEnvBool("RATE_LIMIT_FAIL_OPEN", true),
	}
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Validate validates Redis configuration.
func (c RedisConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.DB < 0 {
		return fmt.Errorf("REDIS_DB must be non-negative")
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be greater than 0")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be greater than 0")
	}
	return nil
}
