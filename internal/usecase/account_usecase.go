// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput defines the data an administrator supplies for a new account.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateProfileInput carries the profile fields an account may change about
// itself. Nil pointers leave the current value untouched.
type UpdateProfileInput struct {
	AccountID       uuid.UUID
	Username        *string
	Email           *string
	ProfileImageKey *string
}

// ChangePasswordInput carries a self-service password change. The current
// password must verify before the new one is accepted.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// AccountUsecase defines the interface for account management operations.
type AccountUsecase interface {
	// CreateAccount provisions a new account with a hashed password.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// ListAccounts retrieves all accounts ordered by creation time.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// GetAccount retrieves a single account by ID.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateProfile applies self-service profile changes.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Account, error)

	// ChangePassword verifies the current password, stores the new hash and
	// ends every session of the account.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// SetActive flips the account's active flag. Deactivating also ends every
	// session of the account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Account, error)
}
