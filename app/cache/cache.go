package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const eventListKey = "eventos:all"

// EventCache is a read-through cache for the evento listing. A nil
// *EventCache is a no-op, so callers never branch on whether redis is
// configured.
type EventCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewEventCache(rdb *redis.Client, ttl time.Duration) *EventCache {
	if rdb == nil {
		return nil
	}
	return &EventCache{rdb: rdb, ttl: ttl}
}

func (c *EventCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, eventListKey).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *EventCache) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, eventListKey, payload, c.ttl).Err()
}

func (c *EventCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, eventListKey).Err()
}
