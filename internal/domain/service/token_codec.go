package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type tags embedded in the "type" claim. Verification rejects a token
// whose tag does not match the expected flavor, so an access token can never
// be replayed as a refresh token or vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the verified content of a signed token.
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      string    `json:"role"` // Populated for access tokens only.
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec defines the interface for minting and verifying signed tokens.
// Access and refresh tokens are signed with independent secrets so that a
// leak of one secret cannot forge tokens of the other flavor.
type TokenCodec interface {
	// IssueAccess mints a short-lived access token carrying the account's
	// role. When extended is true the remember-me TTL is used instead of the
	// standard one.
	IssueAccess(accountID uuid.UUID, role string, extended bool) (string, error)

	// IssueRefresh mints a refresh token. Each call produces a distinct token
	// value even within the same second.
	IssueRefresh(accountID uuid.UUID) (string, error)

	// Verify checks the signature, expiry and type tag of tokenString against
	// the expected flavor and returns its claims.
	Verify(tokenString string, expectedType string) (*Claims, error)

	// HashToken returns the SHA-256 hex digest of a raw token, the form in
	// which refresh tokens are stored at rest.
	HashToken(token string) string

	// RefreshTokenDuration returns the lifetime of newly minted refresh
	// tokens, used to stamp the matching session row's expiry.
	RefreshTokenDuration() time.Duration
}
