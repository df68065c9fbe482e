// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
	RememberMe      bool   `json:"rememberMe"`
}

// RefreshRequest is the request body for rotating a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest is the request body for ending a session.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RecoveryRequest is the request body for requesting a password reset link.
type RecoveryRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required"`
}

// ResetPasswordRequest is the request body for redeeming a recovery token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// Login handles the login request. Every authentication failure surfaces as
// the same 401 so callers cannot probe which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.UsernameOrEmail,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setAccessTokenCookie(c, output.AccessToken)

	return c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    response.TokenTypeBearer,
		User:         response.NewAccountResponse(output.Account),
	})
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setAccessTokenCookie(c, output.AccessToken)

	return c.JSON(http.StatusOK, response.TokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    response.TokenTypeBearer,
	})
}

// Logout handles the logout request. The outcome is a success even when the
// presented token no longer maps to a live session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	clearAccessTokenCookie(c)

	return response.Message(c, http.StatusOK, "Successfully logged out")
}

// RequestRecovery handles a password recovery request. The success body is
// identical whether or not the email belongs to an account.
func (h *AuthHandler) RequestRecovery(c echo.Context) error {
	var req RecoveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid recovery input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordRecovery(c.Request().Context(), &usecase.RecoveryRequestInput{
		Email: req.EmailAddress,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "If that email address is registered, a password reset link is on its way")
}

// ResetPassword handles redeeming a recovery token for a new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reset password input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password has been reset successfully")
}

// setAccessTokenCookie mirrors the issued access token into the cookie the
// session gate accepts, so browser clients stay signed in without scripting
// the Authorization header.
func setAccessTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAccessTokenCookie expires the access token cookie.
func clearAccessTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
