// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	// ArticleStatusDraft indicates an article visible to editors only.
	ArticleStatusDraft ArticleStatus = "draft"
	// ArticleStatusPublished indicates an article visible on the public site.
	ArticleStatusPublished ArticleStatus = "published"
)

// String returns the string representation of the ArticleStatus.
func (s ArticleStatus) String() string {
	return string(s)
}

// IsValid checks if the ArticleStatus is a valid value.
func (s ArticleStatus) IsValid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPublished:
		return true
	default:
		return false
	}
}

// Article represents a single long-form post on the site.
type Article struct {
	ID            uuid.UUID     // The unique ID for this article.
	Title         string        // The article's display title.
	Slug          string        // URL-safe unique identifier used in public links.
	Summary       string        // Short teaser shown in listings.
	Body          string        // Full article body, stored as markdown.
	CoverImageKey string        // Object storage key of the cover image, empty when unset.
	Status        ArticleStatus // Publication state, either "draft" or "published".
	PublishedAt   *time.Time    // Set once on the first transition to published, nil for drafts.
	CreatedAt     time.Time     // Timestamp of when this article was created.
	UpdatedAt     time.Time     // Timestamp of the last modification to this article.
}

// IsPublished reports whether the article is visible on the public site.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
