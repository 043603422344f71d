package service

import (
	"context"
	"encoding/json"
	"time"

	"duka/internal/dto"

	"github.com/redis/go-redis/v9"
)

const (
	itemListCacheKey = "items:all"
	itemListCacheTTL = 30 * time.Second
)

// ItemCache is a best-effort Redis cache for the enriched item list — the
// dashboard polls it constantly while the underlying rows change rarely.
// Every write path (item create/update, recorded sale) invalidates it; a
// nil client disables caching entirely (unit test mode).
type ItemCache struct {
	rdb *redis.Client
}

func NewItemCache(rdb *redis.Client) *ItemCache { return &ItemCache{rdb: rdb} }

func (c *ItemCache) GetList(ctx context.Context) ([]dto.ItemResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, itemListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []dto.ItemResponse
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *ItemCache) SetList(ctx context.Context, items []dto.ItemResponse) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, itemListCacheKey, b, itemListCacheTTL).Err()
}

func (c *ItemCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, itemListCacheKey).Err()
}
