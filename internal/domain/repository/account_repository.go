// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsernameOrEmail retrieves a single account whose username or email
	// exactly matches identifier. Matching is case-sensitive.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error)

	// List retrieves all accounts ordered by creation time.
	List(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateLastLogin stamps the account's last successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdatePasswordHash replaces the account's stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
