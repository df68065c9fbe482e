package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username        string    `gorm:"type:varchar(50);unique;not null"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive        bool      `gorm:"not null;default:true"`
	ProfileImageKey string    `gorm:"type:varchar(512)"`
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	RefreshSessions    []RefreshSessionModel   `gorm:"foreignKey:AccountID"`
	PasswordRecoveries []PasswordRecoveryModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
