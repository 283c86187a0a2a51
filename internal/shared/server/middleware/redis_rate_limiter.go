package middleware

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"portfolio-backend/internal/shared/telemetry"
)

// RedisLimiter shares rate-limit state between instances using a fixed
// window counter per key. The window is the time a rule needs to refill a
// full burst. Redis errors fail open.
type RedisLimiter struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisLimiter parses a redis:// URL and verifies the server responds.
func NewRedisLimiter(ctx context.Context, url string) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisLimiter{
		client:  client,
		prefix:  "portfolio:ratelimit:",
		timeout: 250 * time.Millisecond,
	}, nil
}

func (l *RedisLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}
	window := time.Duration(float64(rule.Burst) / rule.Rate * float64(time.Second))
	if window < time.Second {
		window = time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	redisKey := l.prefix + key
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logError("incr", err)
		return true, 0
	}

	// Any key found without an expiry gets one, including keys whose first
	// PEXPIRE failed.
	ttl := pttl.Val()
	if ttl <= 0 {
		if err := l.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			l.logError("expire", err)
		}
		ttl = window
	}
	if incr.Val() <= int64(rule.Burst) {
		return true, 0
	}
	return false, ttl
}

// Ping reports whether the Redis server responds.
func (l *RedisLimiter) Ping(ctx context.Context) error {
	if l == nil || l.client == nil {
		return fmt.Errorf("redis limiter not configured")
	}
	return l.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (l *RedisLimiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

func (l *RedisLimiter) logError(op string, err error) {
	telemetry.Warn("ratelimit.redis_error", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
}
