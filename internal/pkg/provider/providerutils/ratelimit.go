package providerutils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis_rate/v10"
)

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// CheckRateLimit applies a distributed per-provider limit of rps calls per
// second. A nil limiter or a non-positive rps disables limiting.
func CheckRateLimit(ctx context.Context, limiter RateLimiter, name string, rps int) error {
	if limiter == nil || rps <= 0 {
		return nil
	}

	res, err := limiter.Allow(ctx, fmt.Sprintf("limit:%s", name), redis_rate.PerSecond(rps))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}
