// File: services/availability/cache.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vendora/models"

	"github.com/go-redis/redis/v8"
)

// MonthCache caches computed month views, keyed per vendor and month.
type MonthCache interface {
	Get(ctx context.Context, vendorID, monthKey string) (*models.MonthView, error)
	Set(ctx context.Context, view models.MonthView) error
	InvalidateVendor(ctx context.Context, vendorID string) error
}

// RedisMonthCache stores month views as JSON blobs with a TTL.
type RedisMonthCache struct {
	client *redis.Client
	ttl    time.Duration
}

const monthCacheKeyPrefix = "avail:month:"

// NewRedisMonthCache constructs a Redis-backed month view cache.
func NewRedisMonthCache(client *redis.Client, ttl time.Duration) *RedisMonthCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisMonthCache{client: client, ttl: ttl}
}

func monthKeyOf(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func monthCacheKey(vendorID, monthKey string) string {
	return fmt.Sprintf("%s%s:%s", monthCacheKeyPrefix, vendorID, monthKey)
}

func (c *RedisMonthCache) Get(ctx context.Context, vendorID, monthKey string) (*models.MonthView, error) {
	val, err := c.client.Get(ctx, monthCacheKey(vendorID, monthKey)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view models.MonthView
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *RedisMonthCache) Set(ctx context.Context, view models.MonthView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	key := monthCacheKey(view.VendorID, monthKeyOf(view.Year, time.Month(view.Month)))
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateVendor drops every cached month for the vendor. Called after
// hours, exception, or booking writes.
func (c *RedisMonthCache) InvalidateVendor(ctx context.Context, vendorID string) error {
	keys, err := c.client.Keys(ctx, monthCacheKeyPrefix+vendorID+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
