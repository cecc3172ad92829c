package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/scanchain/scanchain/internal/core/domain"
)

const mysqlDupEntry = 1062

// MySQLAdapter is the authoritative ledger backend plus the audit
// trail (write events and scans). Store is a single transaction with
// a row lock, so the ownership check and the write are indivisible.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Store(ctx context.Context, productID, contentHash string, caller domain.Owner) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	if contentHash == "" {
		return false, fmt.Errorf("%w: contentHash is required", domain.ErrInvalidArgument)
	}
	if caller == "" {
		return false, fmt.Errorf("%w: caller identity is required", domain.ErrInvalidArgument)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return false, infraErr("begin tx", err)
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRowContext(ctx, `
		SELECT owner FROM registry WHERE product_id = ? FOR UPDATE`, productID,
	).Scan(&owner)

	if errors.Is(err, sql.ErrNoRows) {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO registry (product_id, content_hash, owner, registered_at)
			VALUES (?, ?, ?, NOW())`,
			productID, contentHash, string(caller),
		)
		if isDupEntry(err) {
			// Another first-writer inserted between our read and the insert.
			return false, fmt.Errorf("%w: concurrent first write on product %q", domain.ErrConflict, productID)
		}
		if err != nil {
			return false, infraErr("insert record", err)
		}
		if err := tx.Commit(); err != nil {
			return false, infraErr("commit", err)
		}
		return false, nil
	}
	if err != nil {
		return false, infraErr("select owner", err)
	}

	if domain.Owner(owner) != caller {
		return false, fmt.Errorf("%w: product %q is owned by %q", domain.ErrNotAuthorized, productID, owner)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE registry
		SET content_hash = ?, owner = ?, registered_at = NOW()
		WHERE product_id = ?`,
		contentHash, string(caller), productID,
	)
	if err != nil {
		return false, infraErr("update record", err)
	}
	if err := tx.Commit(); err != nil {
		return false, infraErr("commit", err)
	}
	return true, nil
}

func (m *MySQLAdapter) GetHash(ctx context.Context, productID string) (string, error) {
	var contentHash string
	err := m.db.QueryRowContext(ctx, `
		SELECT content_hash FROM registry WHERE product_id = ?`, productID,
	).Scan(&contentHash)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", infraErr("query hash", err)
	}
	return contentHash, nil
}

func (m *MySQLAdapter) GetInfo(ctx context.Context, productID string) (domain.ProductRecord, error) {
	var rec domain.ProductRecord
	var owner string
	err := m.db.QueryRowContext(ctx, `
		SELECT product_id, content_hash, owner, registered_at
		FROM registry WHERE product_id = ?`, productID,
	).Scan(&rec.ProductID, &rec.ContentHash, &owner, &rec.RegisteredAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ProductRecord{}, nil
	}
	if err != nil {
		return domain.ProductRecord{}, infraErr("query record", err)
	}
	rec.Owner = domain.Owner(owner)
	return rec, nil
}

func (m *MySQLAdapter) Exists(ctx context.Context, productID string) (bool, error) {
	contentHash, err := m.GetHash(ctx, productID)
	if err != nil {
		return false, err
	}
	return contentHash != "", nil
}

func (m *MySQLAdapter) RecordEvent(ctx context.Context, ev domain.Event) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO registry_events (event_type, product_id, content_hash, owner, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(ev.Type), ev.ProductID, ev.ContentHash, string(ev.Owner), ev.At,
	)
	if err != nil {
		return infraErr("insert event", err)
	}
	return nil
}

func (m *MySQLAdapter) RecordScan(ctx context.Context, scan domain.Scan) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO product_scans (id, product_id, scanner_name, scanner_location, scanned_at)
		VALUES (?, ?, ?, ?, ?)`,
		scan.ID, scan.ProductID, scan.ScannerName, scan.ScannerLocation, scan.ScannedAt,
	)
	if err != nil {
		return infraErr("insert scan", err)
	}
	return nil
}

func (m *MySQLAdapter) ListScans(ctx context.Context, productID string, limit int) ([]domain.Scan, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, product_id, scanner_name, scanner_location, scanned_at
		FROM product_scans WHERE product_id = ?
		ORDER BY scanned_at DESC LIMIT ?`,
		productID, limit,
	)
	if err != nil {
		return nil, infraErr("query scans", err)
	}
	defer rows.Close()

	var scans []domain.Scan
	for rows.Next() {
		var s domain.Scan
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ScannerName, &s.ScannerLocation, &s.ScannedAt); err != nil {
			return nil, infraErr("scan row", err)
		}
		scans = append(scans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infraErr("iterate scans", err)
	}
	return scans, nil
}

func isDupEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDupEntry
}

func infraErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendUnavailable, err)
}
