package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshSession_IsExpired_Boundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := &RefreshSession{ExpiresAt: issued.Add(7 * 24 * time.Hour)}

	assert.False(t, session.IsExpired(issued.Add(6*24*time.Hour+23*time.Hour)))

	// Expiry equal to now already counts as expired.
	assert.True(t, session.IsExpired(session.ExpiresAt))
	assert.True(t, session.IsExpired(issued.Add(7*24*time.Hour+time.Second)))
}

func TestPasswordRecovery_IsRedeemable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	live := &PasswordRecovery{ExpiresAt: now.Add(24 * time.Hour)}
	assert.True(t, live.IsRedeemable(now))

	used := &PasswordRecovery{ExpiresAt: now.Add(24 * time.Hour), Used: true}
	assert.False(t, used.IsRedeemable(now))

	expired := &PasswordRecovery{ExpiresAt: now.Add(-time.Second)}
	assert.False(t, expired.IsRedeemable(now))

	atBoundary := &PasswordRecovery{ExpiresAt: now}
	assert.False(t, atBoundary.IsRedeemable(now))
}
