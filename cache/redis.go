package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"naya-blog/config"
	"naya-blog/metrics"
)

// Open connects to Redis and pings it. The caller owns the client.
func Open(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	config.Logger.Infof("Redis connected (addr=%s)", cfg.Addr)
	return client, nil
}

// JSONCache stores JSON values under a single key.
type JSONCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewJSONCache(client *redis.Client, key string, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, key: key, ttl: ttl}
}

// Get unmarshals the cached value into dest.
// Returns (true, nil) if found, (false, nil) if not found.
func (c *JSONCache) Get(ctx context.Context, dest any) (bool, error) {
	s, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set marshals v and stores it with the cache TTL.
func (c *JSONCache) Set(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}

func (c *JSONCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

// Store is what CacheAside needs from a cache.
type Store interface {
	Get(ctx context.Context, dest any) (bool, error)
	Set(ctx context.Context, v any) error
}

// CacheAside tries the cache first, on miss it calls fetch (which must populate dest),
// then stores dest. A failing cache read or write falls through to fetch.
func CacheAside(ctx context.Context, store Store, dest any, fetch func() error) error {
	if store != nil {
		found, err := store.Get(ctx, dest)
		switch {
		case err != nil:
			metrics.RecordCacheLookup(metrics.ResultError)
			config.Logger.Warnf("cache read failed, falling back to source: %v", err)
		case found:
			metrics.RecordCacheLookup(metrics.ResultHit)
			return nil
		default:
			metrics.RecordCacheLookup(metrics.ResultMiss)
		}
	}

	if err := fetch(); err != nil {
		return err
	}

	if store != nil {
		if err := store.Set(ctx, dest); err != nil {
			config.Logger.Warnf("cache write failed: %v", err)
		}
	}
	return nil
}
