package port

import (
	"context"

	"github.com/scanchain/scanchain/internal/core/domain"
)

// LedgerRepository is the contract of the registry's ledger backend.
// Implementations may sit on a blockchain, a relational database or an
// in-memory map; the core depends only on this contract.
type LedgerRepository interface {
	// Store writes contentHash for productID as an atomic
	// read-modify-write. The first successful write claims ownership
	// for caller; later writes from anyone else fail with
	// domain.ErrNotAuthorized. Returns true when a prior record
	// existed (the write was an update). A losing concurrent
	// first-writer gets domain.ErrConflict.
	Store(ctx context.Context, productID, contentHash string, caller domain.Owner) (bool, error)

	// GetHash returns the stored content hash, "" when absent.
	// Absence is not an error.
	GetHash(ctx context.Context, productID string) (string, error)

	// GetInfo returns the full record, or a zero record when absent.
	GetInfo(ctx context.Context, productID string) (domain.ProductRecord, error)

	// Exists reports whether a record with a non-empty hash is present.
	Exists(ctx context.Context, productID string) (bool, error)
}
