package data

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tripboard/tripboard/src/common/types"
)

const carrierCacheTTL = 24 * time.Hour

func carrierCacheKey(code string) string {
	return "carrier:" + code
}

// GetCachedCarrier returns the cached details for a carrier code, or
// (nil, nil) on a cache miss.
func (dc *DataClient) GetCachedCarrier(ctx context.Context, code string) (*types.CarrierDetails, error) {
	raw, err := dc.rdb.Get(ctx, carrierCacheKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var details types.CarrierDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		// stale or corrupt entry, treat as a miss
		dc.rdb.Del(ctx, carrierCacheKey(code))
		return nil, nil
	}

	return &details, nil
}

// StoreCarrier caches carrier details. Cache failures are logged, not
// surfaced: the caller already has the data.
func (dc *DataClient) StoreCarrier(ctx context.Context, code string, details *types.CarrierDetails) {
	raw, err := json.Marshal(details)
	if err != nil {
		return
	}

	if err := dc.rdb.Set(ctx, carrierCacheKey(code), raw, carrierCacheTTL).Err(); err != nil && dc.logger != nil {
		dc.logger.Warnw("failed to cache carrier details", "code", code, "error", err)
	}
}
