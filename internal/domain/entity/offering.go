// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offering represents a service offered for hire on the site.
type Offering struct {
	ID          uuid.UUID // The unique ID for this offering.
	Title       string    // The offering's display title.
	Slug        string    // URL-safe unique identifier used in public links.
	Summary     string    // Short teaser shown in listings.
	Description string    // Full description of the offering, stored as markdown.
	PriceCents  int64     // Price in the smallest currency unit; zero means "contact for pricing".
	Currency    string    // ISO 4217 currency code for the price, e.g. "USD".
	IsActive    bool      // Whether the offering is currently shown on the public site.
	CreatedAt   time.Time // Timestamp of when this offering was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this offering.
}
