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

// ErrRecoveryNotFound is returned when no password recovery matches the given token hash.
var ErrRecoveryNotFound = errors.New("password recovery not found")

// RecoveryRepository defines the standard operations for password recovery persistence.
type RecoveryRepository interface {
	// Create persists a new password recovery grant.
	Create(ctx context.Context, recovery *entity.PasswordRecovery) error

	// FindByTokenHash retrieves a recovery grant by the hash of its raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordRecovery, error)

	// MarkUsed flags the grant as redeemed. Returns ErrRecoveryNotFound when
	// no row with the given ID exists.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// DeleteDead removes grants that can never be redeemed again, i.e. those
	// already used or expired at now, and reports how many rows were removed.
	DeleteDead(ctx context.Context, now time.Time) (int64, error)
}
