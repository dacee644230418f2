package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// RateCacheRepository stores the whole exchange rate table in Redis under a
// logical tag. A write replaces the table atomically; there is no TTL because
// the rate service owns the refresh cadence.
type RateCacheRepository struct {
	client *redis.Client
}

// NewRateCacheRepository creates a new repository instance
func NewRateCacheRepository(client *redis.Client) *RateCacheRepository {
	return &RateCacheRepository{client: client}
}

func rateTagKey(tag string) string {
	return fmt.Sprintf("rate_table:%s", tag)
}

// Get fetches the cached rate table for a tag. A missing tag returns
// (nil, nil) so callers can distinguish "not populated yet" from a failure.
func (r *RateCacheRepository) Get(ctx context.Context, tag string) (models.RateTable, error) {
	key := rateTagKey(tag)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", nil,
		)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read rate table from cache", "key", key, "error", err)
		return nil, err
	}

	var table models.RateTable
	if err := json.Unmarshal([]byte(val), &table); err != nil {
		logger.Log.Errorw("malformed rate table in cache", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(table),
		"error", nil,
	)

	return table, nil
}

// Set replaces the cached rate table for a tag.
func (r *RateCacheRepository) Set(ctx context.Context, tag string, table models.RateTable) error {
	key := rateTagKey(tag)

	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, 0).Err()

	logger.Log.Infow(
		"key", key,
		"countries", len(table),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cache tag entirely.
func (r *RateCacheRepository) Invalidate(ctx context.Context, tag string) error {
	key := rateTagKey(tag)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "invalidated",
		"error", err,
	)

	return err
}
