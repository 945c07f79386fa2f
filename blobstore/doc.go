// Package blobstore provides the storage abstraction for sieve output.
//
// BlobStore is the interface for writing named blobs (prime listings,
// serialized prime sets). Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic rename on Close
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with streaming multipart uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Atomic Visibility
//
// A blob written through Create becomes visible under its name only when
// Close succeeds. Abort discards everything written so far, so a failed run
// never publishes a truncated listing:
//
//	w, err := store.Create(ctx, "primes.txt")
//	if err != nil {
//	    return err
//	}
//	if err := produce(w); err != nil {
//	    _ = w.Abort()
//	    return err
//	}
//	return w.Close()
package blobstore
