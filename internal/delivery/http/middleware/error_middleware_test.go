package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/config"
	domainerrors "atelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestErrorMiddleware(debug bool) (*ErrorMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(logger, cfg), &buf
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m, logged := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrInvalidCredentials), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Invalid username/email or password", body["message"])

	_, hasDetail := body["detail"]
	assert.False(t, hasDetail)

	// Client-side failures are not worth a log line.
	assert.Empty(t, logged.String())
}

func TestErrorMiddleware_HandleHTTPError_ServerErrorLogged(t *testing.T) {
	m, logged := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrTransactionFailed), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Database transaction failed", body["message"])

	assert.Contains(t, logged.String(), "Request failed")
	assert.Contains(t, logged.String(), "/api/accounts")
}

func TestErrorMiddleware_HandleHTTPError_DebugDetail(t *testing.T) {
	m, _ := createTestErrorMiddleware(true)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing", nil)
	c, rec := newGateContext(req)

	appErr := domainerrors.ErrArticleNotFound.WithDetails("no article with slug 'missing'")
	m.HandleHTTPError(appErr, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Article not found", body["message"])
	assert.Equal(t, "no article with slug 'missing'", body["detail"])
}

func TestErrorMiddleware_HandleHTTPError_DetailSuppressedOutsideDebug(t *testing.T) {
	m, _ := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing", nil)
	c, rec := newGateContext(req)

	appErr := domainerrors.ErrArticleNotFound.WithDetails("no article with slug 'missing'")
	m.HandleHTTPError(appErr, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Article not found", body["message"])

	_, hasDetail := body["detail"]
	assert.False(t, hasDetail)
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	m, _ := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "refreshToken is required"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "refreshToken is required", body["message"])
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPErrorNonStringMessage(t *testing.T) {
	m, _ := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusTooManyRequests, 42), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, http.StatusText(http.StatusTooManyRequests), body["message"])
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	m, logged := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(errors.New("gorm: connection pool exhausted"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Internal server error", body["message"])

	_, hasDetail := body["detail"]
	assert.False(t, hasDetail)

	assert.Contains(t, logged.String(), "Unhandled error")
}

func TestErrorMiddleware_HandleHTTPError_UnknownErrorDebugDetail(t *testing.T) {
	m, _ := createTestErrorMiddleware(true)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	c, rec := newGateContext(req)

	m.HandleHTTPError(errors.New("gorm: connection pool exhausted"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "gorm: connection pool exhausted", body["detail"])
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m, _ := createTestErrorMiddleware(false)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	c, rec := newGateContext(req)

	require.NoError(t, c.NoContent(http.StatusOK))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	// A committed response must not be rewritten.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
