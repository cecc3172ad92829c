package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scanchain/scanchain/internal/core/domain"
)

// MemoryAdapter is an embedded backend: a mutex-guarded map with the
// same ownership contract as the MySQL adapter, plus the audit trail.
// Used in tests and for single-process deployments.
type MemoryAdapter struct {
	mu      sync.Mutex
	records map[string]domain.ProductRecord
	events  []domain.Event
	scans   []domain.Scan
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{records: make(map[string]domain.ProductRecord)}
}

func (m *MemoryAdapter) Store(ctx context.Context, productID, contentHash string, caller domain.Owner) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	if contentHash == "" {
		return false, fmt.Errorf("%w: contentHash is required", domain.ErrInvalidArgument)
	}
	if caller == "" {
		return false, fmt.Errorf("%w: caller identity is required", domain.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, existed := m.records[productID]
	if existed && prev.Owner != caller {
		return false, fmt.Errorf("%w: product %q is owned by %q", domain.ErrNotAuthorized, productID, prev.Owner)
	}

	m.records[productID] = domain.ProductRecord{
		ProductID:    productID,
		ContentHash:  contentHash,
		Owner:        caller,
		RegisteredAt: time.Now(),
	}
	return existed, nil
}

func (m *MemoryAdapter) GetHash(ctx context.Context, productID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[productID].ContentHash, nil
}

func (m *MemoryAdapter) GetInfo(ctx context.Context, productID string) (domain.ProductRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[productID]
	if !ok {
		return domain.ProductRecord{}, nil
	}
	return rec, nil
}

func (m *MemoryAdapter) Exists(ctx context.Context, productID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[productID].ContentHash != "", nil
}

func (m *MemoryAdapter) RecordEvent(ctx context.Context, ev domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *MemoryAdapter) RecordScan(ctx context.Context, scan domain.Scan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, scan)
	return nil
}

func (m *MemoryAdapter) ListScans(ctx context.Context, productID string, limit int) ([]domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Scan
	for i := len(m.scans) - 1; i >= 0 && len(out) < limit; i-- {
		if m.scans[i].ProductID == productID {
			out = append(out, m.scans[i])
		}
	}
	return out, nil
}

// Events returns a copy of the recorded write events, oldest first.
func (m *MemoryAdapter) Events() []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Event, len(m.events))
	copy(out, m.events)
	return out
}
