// Package blob provides object-store adapters for product documents.
package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scanchain/scanchain/internal/core/domain"
)

// FSStore keeps objects on the local filesystem and hands out
// URL-shaped locators under a configured base. It stands in for a
// remote object store behind the same port.
type FSStore struct {
	dir     string
	baseURL string
}

type objectMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	StoredAt    string `json:"storedAt"`
}

func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &FSStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *FSStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	name = sanitizeName(name)
	if name == "" {
		return "", fmt.Errorf("%w: object name is required", domain.ErrInvalidArgument)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w: %w", domain.ErrBackendUnavailable, err)
	}

	meta, _ := json.MarshalIndent(objectMeta{
		Name:        name,
		ContentType: contentType,
		Size:        len(data),
		StoredAt:    time.Now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err := os.WriteFile(filepath.Join(s.dir, name+".meta.json"), meta, 0o644); err != nil {
		return "", fmt.Errorf("write object meta: %w: %w", domain.ErrBackendUnavailable, err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *FSStore) Get(ctx context.Context, locator string) ([]byte, error) {
	name, ok := strings.CutPrefix(locator, s.baseURL+"/")
	if !ok || sanitizeName(name) != name {
		return nil, fmt.Errorf("%w: locator %q is not served by this store", domain.ErrInvalidArgument, locator)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: object %q", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read object: %w: %w", domain.ErrBackendUnavailable, err)
	}
	return data, nil
}

// sanitizeName strips anything that could escape the store directory.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
