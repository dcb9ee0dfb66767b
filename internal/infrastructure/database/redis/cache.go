package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// Cache stores JSON-encoded values under a common key prefix with a default
// TTL.  A miss is not an error.
type Cache struct {
	client *Client
	prefix string
	ttl    time.Duration
}

// NewCache builds a cache on top of an established client.
func NewCache(client *Client, prefix string, defaultTTL time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: defaultTTL}
}

func (c *Cache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// Get unmarshals the cached value into dest.  The boolean reports a hit.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.rdb.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache read failed")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss so callers reload from source.
		c.client.log.Warn("dropping undecodable cache entry",
			logging.String("key", key), logging.Err(err))
		_ = c.client.rdb.Del(ctx, c.key(key)).Err()
		return false, nil
	}
	return true, nil
}

// Set stores value under key with the given TTL; ttl<=0 uses the default.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "cannot encode cache value")
	}
	if ttl <= 0 {
		ttl = c.ttl
	}
	if err := c.client.rdb.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache write failed")
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.rdb.Del(ctx, c.key(key)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache delete failed")
	}
	return nil
}
