package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/config"
	"atelier/internal/domain/service"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTCodec_RequiresSecrets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		access  string
		refresh string
	}{
		{name: "missing access secret", access: "", refresh: "refresh"},
		{name: "missing refresh secret", access: "access", refresh: ""},
		{name: "missing both secrets", access: "", refresh: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{}
			cfg.SecretKey.Access = tt.access
			cfg.SecretKey.Refresh = tt.refresh

			codec, err := NewJWTCodec(cfg)
			require.Error(t, err)
			assert.Nil(t, codec)
			assert.Contains(t, err.Error(), "jwt secrets must be provided")
		})
	}
}

func TestJWTCodec_IssueAccessAndVerify(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := codec.IssueAccess(accountID, "admin", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTCodec_IssueRefreshAndVerify(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := codec.IssueRefresh(accountID)
	require.NoError(t, err)

	claims, err := codec.Verify(token, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTCodec_RefreshTokensAreUnique(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	// Two tokens minted back to back share sub, iat and exp; only the jti
	// claim keeps them distinct.
	first, err := codec.IssueRefresh(accountID)
	require.NoError(t, err)

	second, err := codec.IssueRefresh(accountID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTCodec_RejectsWrongTokenType(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	accessToken, err := codec.IssueAccess(accountID, "user", false)
	require.NoError(t, err)

	refreshToken, err := codec.IssueRefresh(accountID)
	require.NoError(t, err)

	// An access token presented where a refresh token is expected (and vice
	// versa) must fail even though both signatures are genuine.
	_, err = codec.Verify(accessToken, service.TokenTypeRefresh)
	require.Error(t, err)

	_, err = codec.Verify(refreshToken, service.TokenTypeAccess)
	require.Error(t, err)
}

func TestJWTCodec_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	_, err = codec.Verify("this is not a token", service.TokenTypeAccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTCodec_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-access-secret"
	otherCfg.SecretKey.Refresh = "other-refresh-secret"

	otherCodec, err := NewJWTCodec(otherCfg)
	require.NoError(t, err)

	token, err := otherCodec.IssueAccess(uuid.New(), "user", false)
	require.NoError(t, err)

	_, err = codec.Verify(token, service.TokenTypeAccess)
	require.Error(t, err)
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	// Sign an already expired access token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": service.TokenTypeAccess,
		"role": "user",
	})

	tokenString, err := expired.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = codec.Verify(tokenString, service.TokenTypeAccess)
	require.Error(t, err)
}

func TestJWTCodec_HashToken(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)

	first := codec.HashToken("some-raw-token")
	second := codec.HashToken("some-raw-token")
	other := codec.HashToken("another-raw-token")

	assert.Len(t, first, 64) // SHA-256 hex digest
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestJWTCodec_RefreshTokenDuration(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, codec.RefreshTokenDuration())

	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	configured, err := NewJWTCodec(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, configured.RefreshTokenDuration())
}
