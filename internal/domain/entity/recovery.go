// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordRecovery represents a one-time password reset grant mailed to an
// account owner. A grant is redeemable exactly once and only before it
// expires; redeemed grants are kept with the used flag set, never deleted.
type PasswordRecovery struct {
	ID        uuid.UUID // The unique ID for this recovery record.
	AccountID uuid.UUID // Links this recovery grant to the Account it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw recovery token sent by mail.
	ExpiresAt time.Time // The exact instant this grant expires.
	Used      bool      // Marks the grant as redeemed; a used grant can never be redeemed again.
	CreatedAt time.Time // Timestamp of when the recovery was requested.
}

// IsRedeemable reports whether the grant can still be exchanged for a
// password reset at the given instant.
func (r *PasswordRecovery) IsRedeemable(now time.Time) bool {
	return !r.Used && r.ExpiresAt.After(now)
}
