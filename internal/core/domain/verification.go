package domain

import "time"

type VerdictReason string

const (
	// ReasonNotFound means no record exists for the product id.
	ReasonNotFound VerdictReason = "not_found"
	// ReasonHashMismatch means a record exists but the presented
	// document hashes to a different value.
	ReasonHashMismatch VerdictReason = "hash_mismatch"
)

// VerificationResult is the verdict of comparing a presented document
// against the registry. Verified=false with a populated StoredHash is
// "not authentic"; it is never used to signal an infrastructure error.
type VerificationResult struct {
	ProductID    string
	Verified     bool
	Reason       VerdictReason
	StoredHash   string
	CurrentHash  string
	Owner        Owner
	RegisteredAt time.Time
}
