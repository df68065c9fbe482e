// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"atelier/config"
	"atelier/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Access and refresh tokens are signed with independent secrets.
type jwtCodec struct {
	accessSecret      string        // Secret key for signing access tokens.
	refreshSecret     string        // Secret key for signing refresh tokens.
	accessTTL         time.Duration // Time-to-live for access tokens.
	accessExtendedTTL time.Duration // Time-to-live for access tokens issued with remember-me.
	refreshTTL        time.Duration // Time-to-live for refresh tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// It fails fast when either signing secret is missing; there is no default secret.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	codec := &jwtCodec{
		accessSecret:      cfg.SecretKey.Access,
		refreshSecret:     cfg.SecretKey.Refresh,
		accessTTL:         time.Minute * 15,
		accessExtendedTTL: time.Hour * 24,
		refreshTTL:        time.Hour * 24 * 7,
	}

	if auth := cfg.Auth; auth != nil {
		if auth.AccessTokenTTL > 0 {
			codec.accessTTL = auth.AccessTokenTTL
		}
		if auth.AccessTokenExtendedTTL > 0 {
			codec.accessExtendedTTL = auth.AccessTokenExtendedTTL
		}
		if auth.RefreshTokenTTL > 0 {
			codec.refreshTTL = auth.RefreshTokenTTL
		}
	}

	return codec, nil
}

// IssueAccess creates an access token carrying the account's role.
func (s *jwtCodec) IssueAccess(accountID uuid.UUID, role string, extended bool) (string, error) {
	ttl := s.accessTTL
	if extended {
		ttl = s.accessExtendedTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),      // Subject (who the token is for)
		"iat":  now.Unix(),              // Issued At
		"exp":  now.Add(ttl).Unix(),     // Expiration Time
		"type": service.TokenTypeAccess, // Type tag, checked on verification
		"role": role,                    // Role for stateless authorization
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// IssueRefresh creates a refresh token. The jti claim makes every token
// unique even when two are minted within the same second.
func (s *jwtCodec) IssueRefresh(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
		"type": service.TokenTypeRefresh,
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.refreshSecret))
}

// Verify checks a token's signature and expiry against the secret of the
// expected flavor and rejects tokens whose type tag does not match.
func (s *jwtCodec) Verify(tokenString string, expectedType string) (*service.Claims, error) {
	secret, err := s.secretFor(expectedType)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token structure: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token claims are not valid")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != expectedType {
		return nil, fmt.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("token subject missing: %w", err)
	}

	accountID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a valid id: %w", err)
	}

	claims := &service.Claims{
		AccountID: accountID,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}

	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.ID = jti
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest of a raw token. Refresh tokens are
// stored at rest only in this form.
func (s *jwtCodec) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtCodec) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// secretFor maps a token flavor to its signing secret.
func (s *jwtCodec) secretFor(tokenType string) (string, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	default:
		return "", fmt.Errorf("unknown token type %q", tokenType)
	}
}
