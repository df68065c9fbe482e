package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSessionModel mirrors the 'refresh_sessions' table. Each row is one
// redeemable refresh grant; rotation deletes and re-inserts, never updates.
type RefreshSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshSessionModel) TableName() string {
	return "refresh_sessions"
}

// PasswordRecoveryModel mirrors the 'password_recoveries' table. Redeemed
// rows stay behind with the used flag set so a grant can never fire twice.
type PasswordRecoveryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordRecoveryModel) TableName() string {
	return "password_recoveries"
}
