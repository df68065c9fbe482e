// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity in the system, representing a single
// person who can sign in and manage content.
type Account struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the account.
	Username        string     // Unique handle, accepted as a login identifier.
	Email           string     // The account's unique email address, also accepted as a login identifier.
	PasswordHash    string     // Stores the bcrypt-hashed password.
	Role            Role       // The single flat role assigned to this account, either "admin" or "user".
	IsActive        bool       // Whether the account may authenticate; inactive accounts are locked out everywhere.
	ProfileImageKey string     // Object storage key of the account's profile image, empty when unset.
	LastLoginAt     *time.Time // Timestamp of the most recent successful login. Nil before the first login.
	CreatedAt       time.Time  // Timestamp of when this account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this account.
}

// Principal is the authenticated identity attached to a request after the
// session gate has verified an access token and resolved its owner.
type Principal struct {
	AccountID uuid.UUID // The authenticated account's ID.
	Username  string    // The authenticated account's username.
	Email     string    // The authenticated account's email address.
	Role      Role      // The authenticated account's role.
}
