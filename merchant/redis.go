package merchant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/celopay/celopay-go/types"
)

// RedisCache implements ProfileCache on Redis, for deployments where several
// SDK processes should share one merchant directory cache.
type RedisCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed profile cache. ttl <= 0 stores
// entries without expiry.
func NewRedisCache(client *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: "merchant:profile:",
		ttl:    ttl,
	}
}

// Get retrieves a cached profile. Returns nil, nil when the key does not
// exist.
func (c *RedisCache) Get(ctx context.Context, address string) (*types.MerchantProfile, error) {
	val, err := c.client.Get(ctx, c.prefix+address).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis profile get: %w", err)
	}

	var profile types.MerchantProfile
	if err := json.Unmarshal(val, &profile); err != nil {
		return nil, fmt.Errorf("redis profile decode: %w", err)
	}
	return &profile, nil
}

// Set stores a profile as JSON with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, address string, profile *types.MerchantProfile) error {
	if profile == nil {
		return nil
	}
	val, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("redis profile encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+address, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis profile set: %w", err)
	}
	return nil
}

// Clear removes every cached profile under the cache's key prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis profile clear: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis profile scan: %w", err)
	}
	return nil
}
