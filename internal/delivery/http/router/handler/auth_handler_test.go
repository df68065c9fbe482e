package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/internal/delivery/http/response"
	"atelier/internal/delivery/http/validator"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// postJSONContext builds an echo context around a JSON POST body, with the
// request validator installed the way the server installs it.
func postJSONContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func testLoginAccount() *entity.Account {
	return &entity.Account{
		ID:              uuid.New(),
		Username:        "mira",
		Email:           "mira@example.com",
		Role:            entity.RoleUser,
		IsActive:        true,
		ProfileImageKey: "avatars/mira.png",
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	account := testLoginAccount()
	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Identifier: "mira",
			Password:   "Password123!",
			RememberMe: true,
		}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			Account:      account,
		}, nil)

	c, rec := postJSONContext(`{"usernameOrEmail":"mira","password":"Password123!","rememberMe":true}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body.AccessToken)
	assert.Equal(t, "refresh-token", body.RefreshToken)
	assert.Equal(t, "bearer", body.TokenType)
	assert.Equal(t, account.ID, body.User.AccountID)
	assert.Equal(t, "mira", body.User.Username)
	assert.Equal(t, "mira@example.com", body.User.EmailAddress)
	assert.Equal(t, "user", body.User.AccountRole)
	assert.Equal(t, "avatars/mira.png", body.User.ProfileImage)

	// The field names themselves are part of the contract.
	assert.Contains(t, rec.Body.String(), `"tokenType":"bearer"`)
	assert.Contains(t, rec.Body.String(), `"user"`)

	cookie := responseCookie(rec, "access_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "access-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	c, rec := postJSONContext(`{not json`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid login input")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := postJSONContext(`{"usernameOrEmail":"mira","password":"wrong"}`)

	err := handler.Login(c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// No token cookie may leak on a failed login.
	assert.Nil(t, responseCookie(rec, "access_token"))
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "raw-refresh"}).
		Return(&usecase.RefreshTokenOutput{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		}, nil)

	c, rec := postJSONContext(`{"refreshToken":"raw-refresh"}`)

	require.NoError(t, handler.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.TokenPairResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new-access", body.AccessToken)
	assert.Equal(t, "new-refresh", body.RefreshToken)
	assert.Equal(t, "bearer", body.TokenType)

	cookie := responseCookie(rec, "access_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "new-access", cookie.Value)
}

func TestAuthHandler_RefreshToken_MissingToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	c, _ := postJSONContext(`{}`)

	err := handler.RefreshToken(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_RefreshToken_Rejected(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "stale"}).
		Return(nil, domainerrors.ErrInvalidOrExpiredToken)

	c, rec := postJSONContext(`{"refreshToken":"stale"}`)

	err := handler.RefreshToken(c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
	assert.Nil(t, responseCookie(rec, "access_token"))
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "raw-refresh"}).
		Return(nil)

	c, rec := postJSONContext(`{"refreshToken":"raw-refresh"}`)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out")

	cookie := responseCookie(rec, "access_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_UnknownToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	// The usecase treats an unknown token as already logged out; the wire
	// outcome is indistinguishable from a live session ending.
	uc.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "never-issued"}).
		Return(nil)

	c, rec := postJSONContext(`{"refreshToken":"never-issued"}`)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out")
}

func TestAuthHandler_RequestRecovery_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		RequestPasswordRecovery(mock.Anything, &usecase.RecoveryRequestInput{Email: "mira@example.com"}).
		Return(nil)

	c, rec := postJSONContext(`{"emailAddress":"mira@example.com"}`)

	require.NoError(t, handler.RequestRecovery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a password reset link is on its way")
}

func TestAuthHandler_RequestRecovery_MissingEmail(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	c, _ := postJSONContext(`{}`)

	err := handler.RequestRecovery(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
			Token:       "recovery-token",
			NewPassword: "NewPassword123!",
		}).
		Return(nil)

	c, rec := postJSONContext(`{"token":"recovery-token","newPassword":"NewPassword123!"}`)

	require.NoError(t, handler.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password has been reset successfully")
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
			Token:       "expired",
			NewPassword: "NewPassword123!",
		}).
		Return(domainerrors.ErrInvalidOrExpiredToken)

	c, _ := postJSONContext(`{"token":"expired","newPassword":"NewPassword123!"}`)

	err := handler.ResetPassword(c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}
