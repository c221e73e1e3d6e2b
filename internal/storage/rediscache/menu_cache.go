package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// MenuCache is a read-through Redis cache for per-restaurant menu listings.
// Misses are collapsed with singleflight so a cold key triggers one database
// load no matter how many requests arrive at once. Cache failures fall back
// to the loader; the cache is an optimization, not a source of truth.
type MenuCache struct {
	rdb    redis.UniversalClient
	group  singleflight.Group
	ttl    time.Duration
	logger *log.Logger
}

const defaultMenuTTL = 30 * time.Second

func NewMenuCache(rdb redis.UniversalClient, logger *log.Logger, opts ...Option) *MenuCache {
	if logger == nil {
		logger = log.Default()
	}
	c := &MenuCache{
		rdb:    rdb,
		ttl:    defaultMenuTTL,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*MenuCache)

// WithTTL overrides how long a cached menu listing stays fresh.
func WithTTL(d time.Duration) Option {
	return func(c *MenuCache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

func menuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

func (c *MenuCache) GetMenu(ctx context.Context, restaurantID string, load func(context.Context) ([]domain.MenuItem, error)) ([]domain.MenuItem, error) {
	key := menuKey(restaurantID)

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []domain.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		// Unreadable entry; treat as a miss and overwrite below.
	} else if err != redis.Nil {
		c.logger.Printf("WARN: menu cache read %s: %v", key, err)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(items); err == nil {
			if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.Printf("WARN: menu cache write %s: %v", key, err)
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load menu %s: %w", restaurantID, err)
	}
	return v.([]domain.MenuItem), nil
}

// Invalidate drops the cached listing after any menu write.
func (c *MenuCache) Invalidate(ctx context.Context, restaurantID string) {
	key := menuKey(restaurantID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Printf("WARN: menu cache invalidate %s: %v", key, err)
	}
}
