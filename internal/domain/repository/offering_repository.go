// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferingNotFound is a domain-specific error returned when an offering is not found.
var ErrOfferingNotFound = errors.New("offering not found")

// OfferingRepository defines the standard operations for offering persistence.
type OfferingRepository interface {
	// FindByID retrieves a single offering by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error)

	// FindBySlug retrieves a single offering by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Offering, error)

	// List retrieves offerings ordered by creation time. When activeOnly is
	// true, inactive offerings are excluded.
	List(ctx context.Context, activeOnly bool) ([]*entity.Offering, error)

	// Create persists a new offering entity to the storage.
	Create(ctx context.Context, offering *entity.Offering) error

	// Update modifies an existing offering entity in the storage.
	Update(ctx context.Context, offering *entity.Offering) error

	// Delete removes the offering with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
