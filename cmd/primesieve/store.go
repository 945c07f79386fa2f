package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/primesieve/blobstore"
	minioblob "github.com/hupe1980/primesieve/blobstore/minio"
	s3blob "github.com/hupe1980/primesieve/blobstore/s3"
	"github.com/hupe1980/primesieve/output"
)

// openStore returns the blob store that holds d.
func openStore(ctx context.Context, cfg *config, d output.Destination) (blobstore.BlobStore, error) {
	switch d.Kind {
	case output.KindFile:
		return blobstore.NewLocalStore(d.Dir), nil
	case output.KindS3:
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.s3.region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.s3.region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.s3.endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.s3.endpoint)
				o.UsePathStyle = true
			}
		})
		return s3blob.NewStore(client, d.Bucket, d.Dir), nil
	case output.KindMinIO:
		client, err := minioblob.NewClient(minioblob.Config{
			Endpoint:  d.Host,
			AccessKey: cfg.minio.accessKey,
			SecretKey: cfg.minio.secretKey,
			Region:    cfg.minio.region,
			Secure:    cfg.minio.secure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client %s: %w", d.Host, err)
		}
		store := minioblob.NewStore(client, d.Bucket, d.Dir)
		if cfg.minio.createBucket {
			if err := store.EnsureBucket(ctx); err != nil {
				return nil, fmt.Errorf("minio bucket %s: %w", d.Bucket, err)
			}
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s has no blob store", output.ErrInvalidDestination, d.Kind)
	}
}

// createBlob opens the primary output for writing.
func createBlob(ctx context.Context, cfg *config, d output.Destination, stdout io.Writer) (blobstore.WritableBlob, error) {
	if d.Kind == output.KindStdout {
		return output.StreamBlob(stdout), nil
	}
	store, err := openStore(ctx, cfg, d)
	if err != nil {
		return nil, err
	}
	blob, err := store.Create(ctx, d.Name)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", d, err)
	}
	return blob, nil
}
