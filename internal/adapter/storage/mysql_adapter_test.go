package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/scanchain/scanchain/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/scanchain?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func cleanupProduct(t *testing.T, db *sql.DB, productID string) {
	t.Helper()
	ctx := context.Background()
	db.ExecContext(ctx, `DELETE FROM registry WHERE product_id = ?`, productID)
	db.ExecContext(ctx, `DELETE FROM registry_events WHERE product_id = ?`, productID)
	db.ExecContext(ctx, `DELETE FROM product_scans WHERE product_id = ?`, productID)
}

func TestMySQLStore_FirstWriteAndUpdate(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	productID := "test-store-" + uuid.NewString()
	defer cleanupProduct(t, db, productID)

	wasUpdate, err := adapter.Store(ctx, productID, "hash-1", "0xA")
	if err != nil {
		t.Fatalf("first Store failed: %v", err)
	}
	if wasUpdate {
		t.Error("first write reported as update")
	}

	wasUpdate, err = adapter.Store(ctx, productID, "hash-2", "0xA")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if !wasUpdate {
		t.Error("second write not reported as update")
	}

	h, err := adapter.GetHash(ctx, productID)
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}
	if h != "hash-2" {
		t.Errorf("expected hash-2, got %s", h)
	}
}

func TestMySQLStore_OwnerLocked(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	productID := "test-owner-" + uuid.NewString()
	defer cleanupProduct(t, db, productID)

	if _, err := adapter.Store(ctx, productID, "hash-1", "0xA"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := adapter.Store(ctx, productID, "hash-2", "0xB")
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	rec, err := adapter.GetInfo(ctx, productID)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if rec.ContentHash != "hash-1" || rec.Owner != "0xA" {
		t.Errorf("record changed after denied write: %+v", rec)
	}
}

func TestMySQLStore_AbsentReads(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	productID := "test-absent-" + uuid.NewString()

	h, err := adapter.GetHash(ctx, productID)
	if err != nil || h != "" {
		t.Errorf("GetHash(absent) = %q, %v; want empty, nil", h, err)
	}

	rec, err := adapter.GetInfo(ctx, productID)
	if err != nil || rec.Exists() {
		t.Errorf("GetInfo(absent) = %+v, %v; want zero record, nil", rec, err)
	}

	ok, err := adapter.Exists(ctx, productID)
	if err != nil || ok {
		t.Errorf("Exists(absent) = %v, %v; want false, nil", ok, err)
	}
}

func TestMySQLAudit_EventsAndScans(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	productID := "test-audit-" + uuid.NewString()
	defer cleanupProduct(t, db, productID)

	err := adapter.RecordEvent(ctx, domain.Event{
		Type:        domain.EventStored,
		ProductID:   productID,
		ContentHash: "hash-1",
		Owner:       "0xA",
		At:          time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registry_events WHERE product_id = ?`, productID).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 event row, got %d", count)
	}

	first := domain.Scan{
		ID: uuid.NewString(), ProductID: productID,
		ScannerName: "Depot 7", ScannerLocation: "Rotterdam",
		ScannedAt: time.Now().Add(-time.Minute),
	}
	second := domain.Scan{
		ID: uuid.NewString(), ProductID: productID,
		ScannerName: "Depot 9", ScannerLocation: "Hamburg",
		ScannedAt: time.Now(),
	}
	if err := adapter.RecordScan(ctx, first); err != nil {
		t.Fatalf("RecordScan failed: %v", err)
	}
	if err := adapter.RecordScan(ctx, second); err != nil {
		t.Fatalf("RecordScan failed: %v", err)
	}

	scans, err := adapter.ListScans(ctx, productID, 10)
	if err != nil {
		t.Fatalf("ListScans failed: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans, got %d", len(scans))
	}
	if scans[0].ScannerName != "Depot 9" {
		t.Errorf("expected newest scan first, got %s", scans[0].ScannerName)
	}
}
