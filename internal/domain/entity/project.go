// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a single portfolio entry showcased on the site.
type Project struct {
	ID            uuid.UUID // The unique ID for this project.
	Title         string    // The project's display title.
	Slug          string    // URL-safe unique identifier used in public links.
	Summary       string    // Short teaser shown in listings.
	Description   string    // Full project description, stored as markdown.
	CoverImageKey string    // Object storage key of the cover image, empty when unset.
	RepoURL       string    // Link to the source repository, empty when private.
	LiveURL       string    // Link to the running deployment, empty when none exists.
	DisplayOrder  int       // Position in public listings; lower values are shown first.
	Featured      bool      // Whether the project is highlighted on the landing page.
	CreatedAt     time.Time // Timestamp of when this project was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this project.
}
