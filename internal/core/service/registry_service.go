package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/scanchain/scanchain/internal/core/domain"
	"github.com/scanchain/scanchain/internal/core/hash"
	"github.com/scanchain/scanchain/internal/core/payload"
	"github.com/scanchain/scanchain/internal/port"
)

// RegisterInput carries one registration request.
type RegisterInput struct {
	ProductID   string
	Caller      domain.Owner
	FileName    string
	ContentType string
	Data        []byte
	// Metadata is embedded opaquely into the verification payload.
	Metadata map[string]string
}

// RegisterReceipt is returned to the manufacturer after a committed write.
type RegisterReceipt struct {
	ProductID   string
	ContentHash string
	WasUpdate   bool
	BlobLocator string
	// PayloadText is the encoded verification payload, ready to be
	// rendered as a scannable code by the caller.
	PayloadText string
}

// ScanReceipt describes one recorded scan and the record it hit.
type ScanReceipt struct {
	Scan   domain.Scan
	Record domain.ProductRecord
}

// RegistryService orchestrates hashing, blob storage, the ledger and
// audit trail. It owns the event queue; cmd wiring drains it.
type RegistryService struct {
	ledger port.LedgerRepository
	blobs  port.BlobStore
	audit  port.AuditRepository
	cache  port.CacheRepository // optional, may be nil

	registryLocator string
	events          chan domain.Event
	logger          *slog.Logger
}

func NewRegistryService(ledger port.LedgerRepository, blobs port.BlobStore, audit port.AuditRepository, cache port.CacheRepository, registryLocator string, queueSize int) *RegistryService {
	return &RegistryService{
		ledger:          ledger,
		blobs:           blobs,
		audit:           audit,
		cache:           cache,
		registryLocator: registryLocator,
		events:          make(chan domain.Event, queueSize),
		logger:          slog.Default(),
	}
}

// Register hashes the document, stores the bytes in the blob store,
// commits the hash to the ledger and emits a Stored/Updated event.
// Writing the same hash twice re-timestamps the record and is still
// reported as an update.
func (s *RegistryService) Register(ctx context.Context, in RegisterInput) (RegisterReceipt, error) {
	if in.ProductID == "" {
		return RegisterReceipt{}, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	if in.Caller == "" {
		return RegisterReceipt{}, fmt.Errorf("%w: caller identity is required", domain.ErrInvalidArgument)
	}
	if len(in.Data) == 0 {
		return RegisterReceipt{}, fmt.Errorf("%w: file is empty", domain.ErrInvalidArgument)
	}

	contentHash := hash.Digest(in.Data)

	// Encode the payload up front so an oversized metadata map fails
	// before any side effect happens.
	payloadText, err := payload.Encode(payload.Payload{
		ProductID:       in.ProductID,
		RegistryLocator: s.registryLocator,
		Metadata:        in.Metadata,
	})
	if err != nil {
		return RegisterReceipt{}, err
	}

	objectName := fmt.Sprintf("%s-%s%s", in.ProductID, uuid.NewString(), path.Ext(in.FileName))
	locator, err := s.blobs.Put(ctx, objectName, in.ContentType, in.Data)
	if err != nil {
		return RegisterReceipt{}, fmt.Errorf("store document: %w", err)
	}

	release, err := s.acquireClaim(ctx, in.ProductID)
	if err != nil {
		return RegisterReceipt{}, err
	}
	defer release()

	wasUpdate, err := s.ledger.Store(ctx, in.ProductID, contentHash, in.Caller)
	if err != nil {
		return RegisterReceipt{}, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, in.ProductID); err != nil {
			s.logger.Warn("cache invalidate failed", "productId", in.ProductID, "error", err)
		}
	}

	evType := domain.EventStored
	if wasUpdate {
		evType = domain.EventUpdated
	}
	s.events <- domain.Event{
		Type:        evType,
		ProductID:   in.ProductID,
		ContentHash: contentHash,
		Owner:       in.Caller,
		At:          time.Now(),
	}

	return RegisterReceipt{
		ProductID:   in.ProductID,
		ContentHash: contentHash,
		WasUpdate:   wasUpdate,
		BlobLocator: locator,
		PayloadText: payloadText,
	}, nil
}

// Verify re-hashes the presented document and compares it against the
// registry. An unknown product id is a verdict (ReasonNotFound), not
// an error; infrastructure failures are errors and never a verdict.
func (s *RegistryService) Verify(ctx context.Context, productID string, presented []byte) (domain.VerificationResult, error) {
	if productID == "" {
		return domain.VerificationResult{}, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}

	rec, err := s.lookup(ctx, productID)
	if err != nil {
		return domain.VerificationResult{}, err
	}
	if !rec.Exists() {
		return domain.VerificationResult{
			ProductID: productID,
			Verified:  false,
			Reason:    domain.ReasonNotFound,
		}, nil
	}

	currentHash := hash.Digest(presented)
	res := domain.VerificationResult{
		ProductID:    productID,
		Verified:     currentHash == rec.ContentHash,
		StoredHash:   rec.ContentHash,
		CurrentHash:  currentHash,
		Owner:        rec.Owner,
		RegisteredAt: rec.RegisteredAt,
	}
	if !res.Verified {
		res.Reason = domain.ReasonHashMismatch
	}
	return res, nil
}

// VerifyLocator fetches the document bytes from the blob store first,
// then verifies them. Used when the consumer presents a locator
// instead of the raw file.
func (s *RegistryService) VerifyLocator(ctx context.Context, productID, locator string) (domain.VerificationResult, error) {
	if locator == "" {
		return domain.VerificationResult{}, fmt.Errorf("%w: blob locator is required", domain.ErrInvalidArgument)
	}
	data, err := s.blobs.Get(ctx, locator)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("fetch document: %w", err)
	}
	return s.Verify(ctx, productID, data)
}

// VerifyPayload decodes a scanned payload and verifies the presented
// bytes against the product it names.
func (s *RegistryService) VerifyPayload(ctx context.Context, payloadText string, presented []byte) (domain.VerificationResult, error) {
	p, err := payload.Decode(payloadText)
	if err != nil {
		return domain.VerificationResult{}, err
	}
	return s.Verify(ctx, p.ProductID, presented)
}

// Lookup returns the registry record for productID.
func (s *RegistryService) Lookup(ctx context.Context, productID string) (domain.ProductRecord, error) {
	if productID == "" {
		return domain.ProductRecord{}, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	rec, err := s.lookup(ctx, productID)
	if err != nil {
		return domain.ProductRecord{}, err
	}
	if !rec.Exists() {
		return domain.ProductRecord{}, fmt.Errorf("%w: product %q", domain.ErrNotFound, productID)
	}
	return rec, nil
}

// PayloadFor re-encodes the verification payload for an already
// registered product.
func (s *RegistryService) PayloadFor(ctx context.Context, productID string, metadata map[string]string) (string, error) {
	if _, err := s.Lookup(ctx, productID); err != nil {
		return "", err
	}
	return payload.Encode(payload.Payload{
		ProductID:       productID,
		RegistryLocator: s.registryLocator,
		Metadata:        metadata,
	})
}

// Scan decodes a presented payload, resolves the record it names and
// persists a scan entry for the product's audit trail.
func (s *RegistryService) Scan(ctx context.Context, payloadText, scannerName, scannerLocation string) (ScanReceipt, error) {
	if scannerName == "" {
		return ScanReceipt{}, fmt.Errorf("%w: scanner name is required", domain.ErrInvalidArgument)
	}
	p, err := payload.Decode(payloadText)
	if err != nil {
		return ScanReceipt{}, err
	}

	rec, err := s.Lookup(ctx, p.ProductID)
	if err != nil {
		return ScanReceipt{}, err
	}

	scan := domain.Scan{
		ID:              uuid.NewString(),
		ProductID:       p.ProductID,
		ScannerName:     scannerName,
		ScannerLocation: scannerLocation,
		ScannedAt:       time.Now(),
	}
	if err := s.audit.RecordScan(ctx, scan); err != nil {
		return ScanReceipt{}, fmt.Errorf("record scan: %w", err)
	}
	return ScanReceipt{Scan: scan, Record: rec}, nil
}

// ScansFor lists recorded scans for a product, newest first.
func (s *RegistryService) ScansFor(ctx context.Context, productID string, limit int) ([]domain.Scan, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	return s.audit.ListScans(ctx, productID, limit)
}

// EventQueue exposes the stream of committed write events. The queue
// is drained by the audit workers started in cmd/server.
func (s *RegistryService) EventQueue() <-chan domain.Event {
	return s.events
}

// Close closes the event queue. No Register call may follow.
func (s *RegistryService) Close() {
	close(s.events)
}

// lookup reads the record through the cache when one is configured.
// Cache failures degrade to a ledger read; staleness is tolerated.
func (s *RegistryService) lookup(ctx context.Context, productID string) (domain.ProductRecord, error) {
	if s.cache != nil {
		rec, ok, err := s.cache.GetRecord(ctx, productID)
		if err != nil {
			s.logger.Warn("cache read failed", "productId", productID, "error", err)
		} else if ok {
			return rec, nil
		}
	}

	rec, err := s.ledger.GetInfo(ctx, productID)
	if err != nil {
		return domain.ProductRecord{}, err
	}

	if s.cache != nil && rec.Exists() {
		if err := s.cache.PutRecord(ctx, rec); err != nil {
			s.logger.Warn("cache write failed", "productId", productID, "error", err)
		}
	}
	return rec, nil
}

// acquireClaim serializes first writes per product when a cache is
// configured; the ledger's own conditional write remains the backstop.
func (s *RegistryService) acquireClaim(ctx context.Context, productID string) (func(), error) {
	if s.cache == nil {
		return func() {}, nil
	}
	token := uuid.NewString()
	ok, err := s.cache.AcquireClaim(ctx, productID, token)
	if err != nil {
		return nil, fmt.Errorf("acquire write claim: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: concurrent write on product %q", domain.ErrConflict, productID)
	}
	return func() {
		if err := s.cache.ReleaseClaim(ctx, productID, token); err != nil {
			s.logger.Warn("release write claim failed", "productId", productID, "error", err)
		}
	}, nil
}
