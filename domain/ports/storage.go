package ports

import (
	"context"
	"io"
	"time"
)

// StoragePort abstracts the object-storage backend so the provider can be
// swapped (MinIO, Cloudflare R2, any S3-compatible store).
type StoragePort interface {
	// Upload writes the blob at path and returns the stored path.
	Upload(ctx context.Context, reader io.Reader, path string, size int64, contentType string) (string, error)

	// Delete removes the blob at path.
	Delete(ctx context.Context, path string) error

	// URL resolves a fresh access URL for path. Never cached by callers.
	URL(ctx context.Context, path string) (string, error)

	// List returns every object under prefix, for reconciliation sweeps.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

type ObjectInfo struct {
	Path         string
	Size         int64
	LastModified time.Time
}
