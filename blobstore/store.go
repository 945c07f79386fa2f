package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for writing data blobs.
type BlobStore interface {
	// Create creates a blob for streaming writes.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// WritableBlob is a blob being written.
//
// Exactly one of Close or Abort must be called.
type WritableBlob interface {
	io.Writer
	// Close completes the blob and makes it visible under its name.
	io.Closer
	// Abort discards the blob. Nothing becomes visible under its name.
	Abort() error
}

// put writes data through Create so a store only needs to implement streaming.
func put(ctx context.Context, s BlobStore, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Close()
}
