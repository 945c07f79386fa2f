// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible systems such as Ceph, Garage
// and SeaweedFS, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minioblob.NewClient(minioblob.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "primes/")
//	w, err := store.Create(ctx, "primes.txt")
//
// Streaming uploads use an unknown object size, so the client buffers
// multipart chunks internally. The object becomes visible only when Close
// returns nil.
package minio
