// Package hash computes the content fingerprint used as the
// tamper-evidence anchor of the registry. The digest must be computed
// identically on the registration and verification paths.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// EncodedLen is the length of a digest in its canonical hex form.
const EncodedLen = sha256.Size * 2

// Digest returns the lower-case hex SHA-256 of data. Pure function:
// same bytes always produce the same string.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
