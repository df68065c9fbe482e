// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
// Identifier is matched against both username and email, case-sensitively.
type LoginInput struct {
	Identifier string
	Password   string
	RememberMe bool
}

// RefreshTokenInput carries the raw refresh token presented for rotation.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// RecoveryRequestInput carries the email address a reset link is requested for.
type RecoveryRequestInput struct {
	Email string
}

// ResetPasswordInput carries a raw recovery token and the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated token pair after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for credential and session lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login authenticates by username or email and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a refresh session: the presented token is consumed
	// and a fresh pair is issued. A token value can be rotated at most once.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout ends the session for the presented refresh token. Logging out a
	// token that no longer exists is still a success.
	Logout(ctx context.Context, input *LogoutInput) error

	// RequestPasswordRecovery mails a reset link when the email belongs to an
	// active account. The outcome is identical either way.
	RequestPasswordRecovery(ctx context.Context, input *RecoveryRequestInput) error

	// ResetPassword redeems a recovery token, replaces the password and ends
	// every session of the account.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
