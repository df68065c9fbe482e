package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/errors"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds the mocked collaborators of the session gate.
type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	codec       *mockSvc.MockTokenCodec
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	codec := mockSvc.NewMockTokenCodec(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(codec, accountRepo),
		codec:       codec,
		accountRepo: accountRepo,
	}
}

func newGateContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func activeGateAccount() *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Username: "mira",
		Email:    "mira@example.com",
		Role:     entity.RoleUser,
		IsActive: true,
	}
}

func accessClaims(account *entity.Account) *service.Claims {
	return &service.Claims{
		AccountID: account.ID,
		Role:      string(account.Role),
		Type:      service.TokenTypeAccess,
	}
}

func TestAuthMiddleware_Authenticate_BearerHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := activeGateAccount()
	fx.codec.EXPECT().Verify("good-token", service.TokenTypeAccess).Return(accessClaims(account), nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c, rec := newGateContext(req)

	next := func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, account.ID, principal.AccountID)
		assert.Equal(t, "mira", principal.Username)
		assert.Equal(t, "mira@example.com", principal.Email)
		assert.Equal(t, entity.RoleUser, principal.Role)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_CookieFallback(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := activeGateAccount()
	fx.codec.EXPECT().Verify("cookie-token", service.TokenTypeAccess).Return(accessClaims(account), nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	c, rec := newGateContext(req)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_HeaderWinsOverCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := activeGateAccount()

	// Only the header token may reach the codec.
	fx.codec.EXPECT().Verify("header-token", service.TokenTypeAccess).Return(accessClaims(account), nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	c, rec := newGateContext(req)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing access token")
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic bWlyYTpodW50ZXIy")
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.codec.EXPECT().Verify("bad-token", service.TokenTypeAccess).Return(nil, errors.New("signature is invalid"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad-token")
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_Authenticate_AccountGone(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	accountID := uuid.New()
	fx.codec.EXPECT().Verify("orphan-token", service.TokenTypeAccess).Return(&service.Claims{
		AccountID: accountID,
		Role:      "user",
		Type:      service.TokenTypeAccess,
	}, nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, repository.ErrAccountNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer orphan-token")
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account not found")
}

func TestAuthMiddleware_Authenticate_RepositoryFailure(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	accountID := uuid.New()
	fx.codec.EXPECT().Verify("good-token", service.TokenTypeAccess).Return(&service.Claims{
		AccountID: accountID,
		Role:      "user",
		Type:      service.TokenTypeAccess,
	}, nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c, _ := newGateContext(req)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	// Infrastructure failures bubble to the error handler instead of being
	// disguised as authentication failures.
	err := fx.middleware.Authenticate(next)(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuthMiddleware_Authenticate_InactiveAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := activeGateAccount()
	account.IsActive = false

	fx.codec.EXPECT().Verify("good-token", service.TokenTypeAccess).Return(accessClaims(account), nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account has been deactivated")
}

func TestAuthMiddleware_RequireRole_Allows(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}
	req = req.WithContext(deliverycontext.WithPrincipal(context.Background(), principal))
	c, rec := newGateContext(req)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.middleware.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_RejectsWrongRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleUser}
	req = req.WithContext(deliverycontext.WithPrincipal(context.Background(), principal))
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.RequireRole(entity.RoleAdmin)(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "require 'admin' role")
}

func TestAuthMiddleware_RequireRole_MissingPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newGateContext(req)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, fx.middleware.RequireRole(entity.RoleAdmin)(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "principal missing")
}
