package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table. Public listings sort on
// display_order ascending, so the column carries an index.
type ProjectModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Summary       string    `gorm:"type:text"`
	Description   string    `gorm:"type:text;not null"`
	CoverImageKey string    `gorm:"type:varchar(512)"`
	RepoURL       string    `gorm:"type:varchar(512)"`
	LiveURL       string    `gorm:"type:varchar(512)"`
	DisplayOrder  int       `gorm:"not null;default:0;index"`
	Featured      bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
