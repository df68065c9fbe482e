// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// UploadTicketInput defines the data required to mint a presigned upload.
type UploadTicketInput struct {
	FileName    string
	ContentType string
}

// UploadTicketOutput returns the minted object key and the URL the client
// uploads to with a plain HTTP PUT.
type UploadTicketOutput struct {
	Key       string
	UploadURL string
}

// MediaUsecase defines the interface for presigned media access.
type MediaUsecase interface {
	// CreateUploadTicket mints a date-partitioned object key for the file and
	// returns it with a presigned PUT URL. Only image content types are accepted.
	CreateUploadTicket(ctx context.Context, input *UploadTicketInput) (*UploadTicketOutput, error)

	// ResolveDownloadURL returns a presigned GET URL for one object key.
	ResolveDownloadURL(ctx context.Context, key string) (string, error)

	// ResolveDownloadURLs returns presigned GET URLs for a batch of object
	// keys, keyed by the input keys.
	ResolveDownloadURLs(ctx context.Context, keys []string) (map[string]string, error)
}
