// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "primes/")
//
//	w, err := store.Create(ctx, "primes.txt.zst")
//
// # Features
//
//   - Streaming multipart uploads of unknown length (the prime listing is
//     written as it is produced)
//   - Failed uploads are aborted, so no partial object is ever visible
//   - Configurable prefix for multi-tenant isolation
package s3
