package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryModel mirrors the 'inquiries' table. Rows are append-only except for
// the handled flag an administrator can flip.
type InquiryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Handled   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}
