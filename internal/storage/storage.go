package storage

import (
	"context"
	"io"
)

// DocumentStorage stores supporting documents (student-card scans,
// certificates) under opaque keys. The key returned by Save is the reference
// string persisted on the registration and never interpreted.
type DocumentStorage interface {
	// Save writes the file and returns its storage key.
	Save(ctx context.Context, originalName string, reader io.Reader) (string, error)
	// Open returns the file for reading.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Exists checks if a file exists and returns its size.
	Exists(ctx context.Context, key string) (bool, int64, error)
	// Delete removes a file.
	Delete(ctx context.Context, key string) error
}
