package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scanchain/scanchain/internal/core/domain"
)

const (
	recordKeyPrefix = "record:"
	claimKeyPrefix  = "claim:"

	recordTTL = 5 * time.Minute
	claimTTL  = 10 * time.Second
)

// Delete the claim only if the caller still holds it.
var releaseClaimScript = redis.NewScript(`
local held = redis.call('GET', KEYS[1])
if held == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisAdapter serves stale-tolerant record reads and the short-lived
// per-product write claims that serialize concurrent first writes.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

type cachedRecord struct {
	ContentHash  string `json:"contentHash"`
	Owner        string `json:"owner"`
	RegisteredAt int64  `json:"registeredAt"`
}

func (r *RedisAdapter) GetRecord(ctx context.Context, productID string) (domain.ProductRecord, bool, error) {
	raw, err := r.client.Get(ctx, recordKeyPrefix+productID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ProductRecord{}, false, nil
	}
	if err != nil {
		return domain.ProductRecord{}, false, infraErr("cache get", err)
	}

	var c cachedRecord
	if err := json.Unmarshal(raw, &c); err != nil {
		// Unreadable entry, treat as a miss.
		return domain.ProductRecord{}, false, nil
	}
	return domain.ProductRecord{
		ProductID:    productID,
		ContentHash:  c.ContentHash,
		Owner:        domain.Owner(c.Owner),
		RegisteredAt: time.Unix(c.RegisteredAt, 0),
	}, true, nil
}

func (r *RedisAdapter) PutRecord(ctx context.Context, rec domain.ProductRecord) error {
	raw, err := json.Marshal(cachedRecord{
		ContentHash:  rec.ContentHash,
		Owner:        string(rec.Owner),
		RegisteredAt: rec.RegisteredAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := r.client.Set(ctx, recordKeyPrefix+rec.ProductID, raw, recordTTL).Err(); err != nil {
		return infraErr("cache set", err)
	}
	return nil
}

func (r *RedisAdapter) Invalidate(ctx context.Context, productID string) error {
	if err := r.client.Del(ctx, recordKeyPrefix+productID).Err(); err != nil {
		return infraErr("cache del", err)
	}
	return nil
}

func (r *RedisAdapter) AcquireClaim(ctx context.Context, productID, token string) (bool, error) {
	ok, err := r.client.SetNX(ctx, claimKeyPrefix+productID, token, claimTTL).Result()
	if err != nil {
		return false, infraErr("claim setnx", err)
	}
	return ok, nil
}

func (r *RedisAdapter) ReleaseClaim(ctx context.Context, productID, token string) error {
	if err := releaseClaimScript.Run(ctx, r.client, []string{claimKeyPrefix + productID}, token).Err(); err != nil {
		return infraErr("claim release", err)
	}
	return nil
}
