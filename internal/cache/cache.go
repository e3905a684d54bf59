package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a best-effort JSON read cache over redis. With no configured
// address every operation is a no-op, so handlers never need to care whether
// redis is present.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Cache) Enabled() bool {
	return c.rdb != nil
}

// GetJSON loads key into dest. Returns false on miss, disabled cache, or any
// redis error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores value under key with a TTL, best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, ttl)
}

// Invalidate removes keys, best-effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
