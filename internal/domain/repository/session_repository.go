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

// ErrSessionNotFound is returned when no live refresh session matches the
// given token hash. A session that exists but has already expired is
// deliberately indistinguishable from one that never existed.
var ErrSessionNotFound = errors.New("refresh session not found")

// SessionRepository defines the standard operations for refresh session persistence.
type SessionRepository interface {
	// Create persists a new refresh session.
	Create(ctx context.Context, session *entity.RefreshSession) error

	// ConsumeByTokenHash atomically deletes the session matching tokenHash
	// whose expiry is strictly after now, and returns the deleted row.
	// The conditional delete is a single statement so that two concurrent
	// consumers of the same token hash see exactly one winner. Returns
	// ErrSessionNotFound when no live row matched.
	ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshSession, error)

	// DeleteByTokenHash removes the session matching tokenHash if one exists.
	// Deleting a missing session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes every session belonging to the account.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes all sessions whose expiry is at or before now and
	// reports how many rows were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
