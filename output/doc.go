// Package output resolves where a prime listing is written and how it is
// encoded on the way there.
//
// A destination is one of
//
//	-                         standard output
//	discard                   count only, write nothing
//	path/to/primes.txt        local file, published atomically
//	s3://bucket/key           Amazon S3
//	minio://host:port/bucket/key
//
// The compression codec is chosen explicitly or inferred from the key's
// extension (.gz, .zst, .lz4).
package output
