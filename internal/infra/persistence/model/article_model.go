package model

import (
	"time"

	"github.com/google/uuid"
)

// ArticleModel mirrors the 'articles' table. Status carries the draft/published
// state; published_at is written once on the first publish.
type ArticleModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Slug          string     `gorm:"type:varchar(255);unique;not null"`
	Summary       string     `gorm:"type:text"`
	Body          string     `gorm:"type:text;not null"`
	CoverImageKey string     `gorm:"type:varchar(512)"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft'"`
	PublishedAt   *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}
