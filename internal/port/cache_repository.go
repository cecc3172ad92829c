package port

import (
	"context"

	"github.com/scanchain/scanchain/internal/core/domain"
)

type CacheRepository interface {
	// GetRecord returns a cached record snapshot. The snapshot may be
	// stale relative to a concurrent write; callers treat it as a
	// point-in-time read.
	GetRecord(ctx context.Context, productID string) (domain.ProductRecord, bool, error)

	// PutRecord caches a record snapshot with a bounded lifetime.
	PutRecord(ctx context.Context, rec domain.ProductRecord) error

	// Invalidate drops the cached record after a committed write.
	Invalidate(ctx context.Context, productID string) error

	// AcquireClaim takes a short-lived write claim on productID,
	// returns false if another caller currently holds it.
	AcquireClaim(ctx context.Context, productID, token string) (bool, error)

	// ReleaseClaim releases the claim if token still holds it.
	ReleaseClaim(ctx context.Context, productID, token string) error
}
