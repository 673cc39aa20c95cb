package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// OfferCache stores raw provider offers so a cached search normalizes
// exactly like a live one.
type OfferCache struct {
	redis RedisClient
}

func NewOfferCache(redis RedisClient) *OfferCache {
	return &OfferCache{
		redis: redis,
	}
}

func (c *OfferCache) GetLockKey(req dto.FlightSearchRequest) string {
	return "offers:lock:" + searchKey(req)
}

func (c *OfferCache) GetCacheKey(req dto.FlightSearchRequest) string {
	return "offers:cache:" + searchKey(req)
}

// searchKey covers every field that changes what the provider returns.
// Sorting happens after the cache and is left out.
func searchKey(req dto.FlightSearchRequest) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:%t",
		strings.ToUpper(req.Origin), strings.ToUpper(req.Destination),
		req.OutboundDate, req.ReturnDate, strings.ToUpper(req.Currency),
		req.IncludeOtherFlights)
}

func (c *OfferCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *OfferCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *OfferCache) SetOffers(ctx context.Context,
	key string,
	offers []offer.RawOffer,
	expiration time.Duration,
) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set offers: %w", err)
	}

	return nil
}

func (c *OfferCache) GetOffers(ctx context.Context, key string) ([]offer.RawOffer, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var offers []offer.RawOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}
