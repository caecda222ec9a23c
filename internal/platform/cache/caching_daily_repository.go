// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"orats_data/internal/feature/dailies/domain/entity"
	"orats_data/internal/feature/dailies/usecase"
)

// CachingDailyBarRepository decorates a DailyBarRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingDailyBarRepository struct {
	inner     usecase.DailyBarRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingDailyBarRepository decorates a DailyBarRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "dailies".
func NewCachingDailyBarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DailyBarRepository, namespace string) *CachingDailyBarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "dailies"
	}
	return &CachingDailyBarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch inserts or updates bars and invalidates related cache entries.
func (c *CachingDailyBarRepository) UpsertBatch(ctx context.Context, bars []entity.DailyBar) error {
	// First upsert to the underlying repository (database)
	if err := c.inner.UpsertBatch(ctx, bars); err != nil {
		return err
	}
	// Exit early if Redis is not configured or there are no bars
	if c.rdb == nil || len(bars) == 0 {
		return nil
	}

	// Invalidate affected cache entries (keys per ticker)
	seen := map[string]struct{}{}
	for _, b := range bars {
		prefix := c.cacheKeyPrefix(b.Ticker)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		_ = c.deleteByPattern(ctx, prefix+"*") // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Find retrieves bars, checking cache first then falling back to the database.
func (c *CachingDailyBarRepository) Find(ctx context.Context, ticker string, outputsize int) ([]entity.DailyBar, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, ticker, outputsize)
	}

	key := c.cacheKey(ticker, outputsize)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.DailyBar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Find(ctx, ticker, outputsize)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingDailyBarRepository) cacheKey(ticker string, outputsize int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(ticker), outputsize)
}

// cacheKeyPrefix generates a prefix for invalidating related cache entries.
func (c *CachingDailyBarRepository) cacheKeyPrefix(ticker string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(ticker))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDailyBarRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
