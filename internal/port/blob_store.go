package port

import "context"

// BlobStore stores product documents and hands back stable retrieval
// locators. The core never inspects a locator beyond passing it around.
type BlobStore interface {
	// Put stores data under name and returns the locator.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)

	// Get retrieves the bytes for a locator previously returned by Put.
	// A locator that resolves to nothing fails with domain.ErrNotFound.
	Get(ctx context.Context, locator string) ([]byte, error)
}
