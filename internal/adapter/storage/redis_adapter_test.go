package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/scanchain/scanchain/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRecordCache_PutGetInvalidate(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	productID := "test-cache-" + uuid.NewString()
	defer client.Del(ctx, recordKeyPrefix+productID)

	// Miss before put
	_, ok, err := adapter.GetRecord(ctx, productID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a cache miss")
	}

	rec := domain.ProductRecord{
		ProductID:    productID,
		ContentHash:  "hash-1",
		Owner:        "0xA",
		RegisteredAt: time.Unix(1721390400, 0),
	}
	if err := adapter.PutRecord(ctx, rec); err != nil {
		t.Fatalf("PutRecord failed: %v", err)
	}

	got, ok, err := adapter.GetRecord(ctx, productID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.ContentHash != rec.ContentHash || got.Owner != rec.Owner || !got.RegisteredAt.Equal(rec.RegisteredAt) {
		t.Errorf("cached record mismatch: got %+v, want %+v", got, rec)
	}

	if err := adapter.Invalidate(ctx, productID); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	if _, ok, _ := adapter.GetRecord(ctx, productID); ok {
		t.Error("expected a miss after invalidation")
	}
}

func TestClaim_ExclusiveUntilReleased(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	productID := "test-claim-" + uuid.NewString()
	defer client.Del(ctx, claimKeyPrefix+productID)

	ok, err := adapter.AcquireClaim(ctx, productID, "token-1")
	if err != nil {
		t.Fatalf("AcquireClaim failed: %v", err)
	}
	if !ok {
		t.Fatal("expected to acquire a free claim")
	}

	ok, err = adapter.AcquireClaim(ctx, productID, "token-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("second caller acquired a held claim")
	}

	if err := adapter.ReleaseClaim(ctx, productID, "token-1"); err != nil {
		t.Fatalf("ReleaseClaim failed: %v", err)
	}

	ok, err = adapter.AcquireClaim(ctx, productID, "token-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("claim not acquirable after release")
	}
	adapter.ReleaseClaim(ctx, productID, "token-3")
}

func TestClaim_ReleaseRequiresToken(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	productID := "test-claim-token-" + uuid.NewString()
	defer client.Del(ctx, claimKeyPrefix+productID)

	if ok, _ := adapter.AcquireClaim(ctx, productID, "holder"); !ok {
		t.Fatal("setup: claim not acquired")
	}

	// A stale caller releasing with the wrong token must not free it.
	if err := adapter.ReleaseClaim(ctx, productID, "intruder"); err != nil {
		t.Fatalf("ReleaseClaim failed: %v", err)
	}
	if ok, _ := adapter.AcquireClaim(ctx, productID, "third"); ok {
		t.Error("claim was freed by a non-holder")
	}
}
