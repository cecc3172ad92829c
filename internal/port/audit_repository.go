package port

import (
	"context"

	"github.com/scanchain/scanchain/internal/core/domain"
)

// AuditRepository persists the registry's observable side effects:
// write events and consumer scans.
type AuditRepository interface {
	// RecordEvent persists a registry write event.
	RecordEvent(ctx context.Context, ev domain.Event) error

	// RecordScan persists one scan of a registered product.
	RecordScan(ctx context.Context, scan domain.Scan) error

	// ListScans returns scans for productID, newest first, capped at limit.
	ListScans(ctx context.Context, productID string, limit int) ([]domain.Scan, error)
}
