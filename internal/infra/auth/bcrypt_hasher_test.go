package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	assert.NoError(t, err)

	second, err := hasher.Hash("same password")
	assert.NoError(t, err)

	// Each hash embeds a fresh salt, so equal inputs produce distinct hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	password := "correct horse battery staple"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(customCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	// A cost outside bcrypt's valid range falls back to the library default
	// instead of making every Hash call fail.
	hasher := NewBcryptHasher(bcrypt.MaxCost + 10)

	hash, err := hasher.Hash("password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
