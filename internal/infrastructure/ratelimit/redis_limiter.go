// File: internal/infrastructure/ratelimit/redis_limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

// RedisLimiter is a fixed-window counter keyed per action. Fail-open on
// Redis errors: auth availability is preferred over strict limiting, the
// error is returned so callers can log it.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, fmt.Errorf("rate limiter incr failed: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return true, fmt.Errorf("rate limiter expire failed: %w", err)
		}
	}
	return count <= int64(limit), nil
}

var _ interfaces.RateLimiter = (*RedisLimiter)(nil)
