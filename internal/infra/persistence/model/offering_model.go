package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferingModel mirrors the 'offerings' table. Prices are stored in the
// smallest currency unit; zero means pricing on request.
type OfferingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);unique;not null"`
	Summary     string    `gorm:"type:text"`
	Description string    `gorm:"type:text;not null"`
	PriceCents  int64     `gorm:"not null;default:0"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'USD'"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferingModel) TableName() string {
	return "offerings"
}
