// Package storage provides the gocloud blob implementation of media storage.
// The bucket is addressed by URL, so production runs against S3 while tests
// and local development use an on-disk bucket.
package storage

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"golang.org/x/sync/errgroup"

	_ "gocloud.dev/blob/fileblob" // register the file:// bucket scheme
	_ "gocloud.dev/blob/s3blob"   // register the s3:// bucket scheme

	"atelier/config"
	"atelier/internal/domain/service"
)

// signConcurrency bounds parallel signing calls in batch resolution.
const signConcurrency = 8

// Params defines the dependencies required for the blob storage
type Params struct {
	fx.In

	fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// blobStorage signs upload and download URLs against a gocloud bucket.
type blobStorage struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and binds its lifetime to the fx lifecycle.
func New(params Params) (service.MediaStorage, error) {
	blobCfg := params.Config.Blob
	if blobCfg == nil {
		return nil, errors.New("blob config must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), blobCfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", blobCfg.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket}, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests.
func NewWithBucket(bucket *blob.Bucket) service.MediaStorage {
	return &blobStorage{bucket: bucket}
}

// SignedPutURL returns a URL that allows a single PUT of the given content
// type to key.
func (s *blobStorage) SignedPutURL(ctx context.Context, key string, contentType string, expiry time.Duration) (string, error) {
	signedURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry:      expiry,
		Method:      http.MethodPut,
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign put url for %s", key)
	}

	return signedURL, nil
}

// SignedGetURL returns a URL that allows reading key.
func (s *blobStorage) SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	signedURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: expiry,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign get url for %s", key)
	}

	return signedURL, nil
}

// SignedGetURLs resolves read URLs for several keys concurrently.
func (s *blobStorage) SignedGetURLs(ctx context.Context, keys []string, expiry time.Duration) (map[string]string, error) {
	signed := make([]string, len(keys))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(signConcurrency)

	for i, key := range keys {
		group.Go(func() error {
			signedURL, err := s.SignedGetURL(groupCtx, key, expiry)
			if err != nil {
				return err
			}
			signed[i] = signedURL

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	urls := make(map[string]string, len(keys))
	for i, key := range keys {
		urls[key] = signed[i]
	}

	return urls, nil
}
