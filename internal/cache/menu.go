package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
)

// ErrMiss is returned when the key is absent or the cache is disabled.
var ErrMiss = errors.New("cache miss")

// MenuCache is a cache-aside layer for the rendered menu. A nil client
// disables caching and every read misses.
type MenuCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMenuCache(cfg *config.Config) *MenuCache {
	if cfg.RedisAddr == "" {
		return &MenuCache{}
	}

	return &MenuCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
		ttl: 5 * time.Minute,
	}
}

func (c *MenuCache) Get(ctx context.Context, key string, dest any) error {
	if c.rdb == nil {
		return ErrMiss
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}

	return json.Unmarshal([]byte(raw), dest)
}

func (c *MenuCache) Set(ctx context.Context, key string, value any) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
