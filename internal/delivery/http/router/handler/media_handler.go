package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for presigned media access handlers.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadTicketRequest is the request body for minting an upload ticket.
type UploadTicketRequest struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// DownloadURLsRequest is the request body for batch-resolving object keys.
type DownloadURLsRequest struct {
	Keys []string `json:"keys" validate:"required,min=1,dive,required"`
}

// CreateUploadTicket handles minting a presigned upload. The server picks the
// object key; the client only chooses the file name and content type.
func (h *MediaHandler) CreateUploadTicket(c echo.Context) error {
	var req UploadTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid upload ticket input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.uc.CreateUploadTicket(c.Request().Context(), &usecase.UploadTicketInput{
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.UploadTicketResponse{
		Key:       ticket.Key,
		UploadURL: ticket.UploadURL,
	})
}

// ResolveDownload handles presigning a single object key for reading.
func (h *MediaHandler) ResolveDownload(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "Missing object key")
	}

	url, err := h.uc.ResolveDownloadURL(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.DownloadURLResponse{
		Key:         key,
		DownloadURL: url,
	})
}

// ResolveDownloads handles presigning a batch of object keys for reading.
func (h *MediaHandler) ResolveDownloads(c echo.Context) error {
	var req DownloadURLsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid download batch input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	urls, err := h.uc.ResolveDownloadURLs(c.Request().Context(), req.Keys)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.DownloadURLsResponse{URLs: urls})
}
