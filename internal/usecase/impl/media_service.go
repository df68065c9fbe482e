package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSignedURLExpiry = 15 * time.Minute

// imageExtensions maps the accepted upload content types to the extension the
// minted object key carries. Anything absent from this map is rejected.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage      service.MediaStorage
	signedExpiry time.Duration
	logger       *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.MediaStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	signedExpiry := defaultSignedURLExpiry
	if params.Config != nil && params.Config.Blob != nil && params.Config.Blob.SignedURLExpiry > 0 {
		signedExpiry = params.Config.Blob.SignedURLExpiry
	}

	return &mediaService{
		storage:      params.Storage,
		signedExpiry: signedExpiry,
		logger:       params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUploadTicket mints a date-partitioned object key for the file and
// returns it with a presigned PUT URL. The extension comes from the declared
// content type, not the client's file name, so keys never carry surprises.
func (srv *mediaService) CreateUploadTicket(ctx context.Context, input *usecase.UploadTicketInput) (*usecase.UploadTicketOutput, error) {
	ext, ok := imageExtensions[input.ContentType]
	if !ok {
		srv.log(ctx).Warn("Upload rejected for content type", slog.String("contentType", input.ContentType))

		return nil, errors.Wrap(domainerrors.ErrUnsupportedMediaType, "unsupported upload content type")
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("uploads/%04d/%02d/%02d/%s%s", now.Year(), now.Month(), now.Day(), uuid.New().String(), ext)

	uploadURL, err := srv.storage.SignedPutURL(ctx, key, input.ContentType, srv.signedExpiry)
	if err != nil {
		srv.log(ctx).Error("Failed to presign upload", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to presign upload")
	}

	srv.log(ctx).Debug("Upload ticket minted", slog.String("key", key), slog.String("fileName", input.FileName))

	return &usecase.UploadTicketOutput{
		Key:       key,
		UploadURL: uploadURL,
	}, nil
}

// ResolveDownloadURL returns a presigned GET URL for one object key.
func (srv *mediaService) ResolveDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := srv.storage.SignedGetURL(ctx, key, srv.signedExpiry)
	if err != nil {
		srv.log(ctx).Error("Failed to presign download", slog.String("key", key), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to presign download")
	}

	return url, nil
}

// ResolveDownloadURLs returns presigned GET URLs for a batch of object keys,
// keyed by the input keys.
func (srv *mediaService) ResolveDownloadURLs(ctx context.Context, keys []string) (map[string]string, error) {
	urls, err := srv.storage.SignedGetURLs(ctx, keys, srv.signedExpiry)
	if err != nil {
		srv.log(ctx).Error("Failed to presign downloads", slog.Int("count", len(keys)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to presign downloads")
	}

	return urls, nil
}
