package redis

import (
	"context"
	"encoding/json"
	"time"

	lookupdomain "vims-go/internal/domain/lookup"
	"github.com/go-redis/redis/v8"
)

const lookupKeyPrefix = "lookup:"

// LookupCache keeps lookup tables in Redis so several instances share one
// cache. Values are JSON-encoded entry lists; failures degrade to a cache
// miss rather than an error.
type LookupCache struct {
	client *redis.Client
}

func NewLookupCache(client *redis.Client) *LookupCache {
	return &LookupCache{client: client}
}

func (c *LookupCache) Get(table string) ([]lookupdomain.Entry, bool) {
	payload, err := c.client.Get(context.Background(), lookupKeyPrefix+table).Result()
	if err != nil {
		return nil, false
	}

	var entries []lookupdomain.Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LookupCache) Set(table string, entries []lookupdomain.Entry, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(table)
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	c.client.Set(context.Background(), lookupKeyPrefix+table, payload, ttl)
}

func (c *LookupCache) Delete(table string) {
	c.client.Del(context.Background(), lookupKeyPrefix+table)
}

func (c *LookupCache) Clear() {
	ctx := context.Background()
	keys, err := c.client.Keys(ctx, lookupKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
