package domain

import "time"

// Owner identifies the principal that controls a registry record.
// Ownership is claimed by the first successful write for a product.
type Owner string

// ProductRecord is the registry's authoritative state for one product.
type ProductRecord struct {
	ProductID    string
	ContentHash  string
	Owner        Owner
	RegisteredAt time.Time
}

// Exists reports whether the record denotes a registered product.
// An empty content hash and an absent record are the same thing.
func (r ProductRecord) Exists() bool {
	return r.ContentHash != ""
}
