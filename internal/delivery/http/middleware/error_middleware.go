package middleware

import (
	"log/slog"
	"net/http"

	"atelier/config"
	"atelier/internal/delivery/http/response"
	domainerrors "atelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware shapes every error that escapes a handler.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Server-side failures are logged in full; the caller only ever sees
		// the taxonomy message.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}

		response.ErrorWithDetail(c, appErr.HTTPCode(), appErr.Message(), m.detailFor(err, appErr.Details()))

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		response.Error(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log in full and keep the body generic
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	response.ErrorWithDetail(c, http.StatusInternalServerError, "Internal server error", m.detailFor(err, ""))
}

// detailFor picks the detail string for an error body. Outside debug mode it
// is always empty.
func (m *ErrorMiddleware) detailFor(err error, details string) string {
	if !m.debug {
		return ""
	}

	if details != "" {
		return details
	}

	return err.Error()
}
