// Package cache is a Redis read-through for booked slot id lists. The grid
// endpoint is the hottest read in the system; reservations invalidate by
// bumping a per-property version so stale range keys die without a scan.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type SlotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New returns nil when rdb is nil; all methods degrade to the loader.
func New(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *SlotCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SlotCache{rdb: rdb, ttl: ttl, logger: logger}
}

type Loader func(ctx context.Context) ([]int, error)

// BookedSlotIDs serves the cached id list or falls through to the loader.
// Cache failures are logged and treated as misses.
func (c *SlotCache) BookedSlotIDs(ctx context.Context, propertyID string, from, to time.Time, load Loader) ([]int, error) {
	if c == nil {
		return load(ctx)
	}

	key, err := c.rangeKey(ctx, propertyID, from, to)
	if err == nil {
		raw, getErr := c.rdb.Get(ctx, key).Bytes()
		if getErr == nil {
			var ids []int
			if json.Unmarshal(raw, &ids) == nil {
				return ids, nil
			}
		} else if getErr != redis.Nil {
			c.logger.Warn("slot cache read failed", "err", getErr)
		}
	} else {
		c.logger.Warn("slot cache version read failed", "err", err)
		return load(ctx)
	}

	ids, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ids); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("slot cache write failed", "err", err)
		}
	}
	return ids, nil
}

// Invalidate bumps the property's version, orphaning every cached range.
func (c *SlotCache) Invalidate(ctx context.Context, propertyID string) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, versionKey(propertyID)).Err(); err != nil {
		c.logger.Warn("slot cache invalidate failed", "property_id", propertyID, "err", err)
	}
}

func (c *SlotCache) rangeKey(ctx context.Context, propertyID string, from, to time.Time) (string, error) {
	ver, err := c.rdb.Get(ctx, versionKey(propertyID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("booked:%s:%d:%s:%s",
		propertyID, ver, from.Format("2006-01-02"), to.Format("2006-01-02")), nil
}

func versionKey(propertyID string) string {
	return "booked_ver:" + propertyID
}
