package service

import (
	"context"
	"time"
)

// MediaStorage defines the interface for direct-to-bucket media transfers.
// The server never proxies file bytes; it mints time-limited signed URLs and
// clients talk to the bucket themselves.
type MediaStorage interface {
	// SignedPutURL returns a signed URL that allows a single PUT of the given
	// content type to key, valid for the given duration.
	SignedPutURL(ctx context.Context, key string, contentType string, expiry time.Duration) (string, error)

	// SignedGetURL returns a signed URL for reading key, valid for the given
	// duration.
	SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// SignedGetURLs resolves signed read URLs for several keys at once,
	// keyed by object key.
	SignedGetURLs(ctx context.Context, keys []string, expiry time.Duration) (map[string]string, error)
}
