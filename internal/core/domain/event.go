package domain

import "time"

type EventType string

const (
	EventStored  EventType = "stored"
	EventUpdated EventType = "updated"
)

// Event is emitted after a committed registry write. Re-storing an
// identical hash still emits EventUpdated; observers see every write.
type Event struct {
	Type        EventType
	ProductID   string
	ContentHash string
	Owner       Owner
	At          time.Time
}

// Scan records one consumer-side scan of a registered product.
type Scan struct {
	ID              string
	ProductID       string
	ScannerName     string
	ScannerLocation string
	ScannedAt       time.Time
}
