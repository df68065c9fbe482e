// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession represents a single long-lived "remember this login" grant.
// It is consumed to obtain a new token pair after the access token expires,
// without requiring credentials. Rotation replaces the row wholesale; a
// session row is never updated in place.
type RefreshSession struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	AccountID uuid.UUID // Links this session to the Account it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact instant this session expires; validity is strictly before this instant.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the login happened).
}

// IsExpired reports whether the session is no longer redeemable at the given
// instant. The boundary is inclusive: a session whose expiry equals now is
// already expired.
func (s *RefreshSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
