package planner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisCache shares plans between processes through Redis. Leg geometry is
// not stored.
type RedisCache struct {
	cache  *cache.Cache[string]
	logger zerolog.Logger
}

// NewRedisCache creates a Redis-backed plan cache whose entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))
	return &RedisCache{
		cache:  cache.New[string](redisStore),
		logger: logger,
	}
}

// Get implements Cache. Misses and decode failures both report false.
func (c *RedisCache) Get(ctx context.Context, key string) ([]Itinerary, bool) {
	raw, err := c.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return nil, false
	}

	var its []Itinerary
	if err := json.Unmarshal([]byte(raw), &its); err != nil {
		c.logger.Warn().Err(err).Str("cache_key", key).Msg("discarding undecodable cached plan")
		return nil, false
	}
	return its, true
}

// Set implements Cache. Write failures are logged and otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, key string, its []Itinerary) {
	raw, err := json.Marshal(its)
	if err != nil {
		c.logger.Warn().Err(err).Str("cache_key", key).Msg("encoding plan for cache")
		return
	}
	if err := c.cache.Set(ctx, key, string(raw)); err != nil {
		c.logger.Warn().Err(err).Str("cache_key", key).Msg("writing plan to cache")
	}
}
