// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
)

// CreateOfferingInput defines the data required to create a service offering.
type CreateOfferingInput struct {
	Title       string
	Slug        string
	Summary     string
	Description string
	PriceCents  int64
	Currency    string
	IsActive    bool
}

// UpdateOfferingInput carries offering changes keyed by the current slug.
// Nil pointers leave the current value untouched.
type UpdateOfferingInput struct {
	Slug        string
	Title       *string
	NewSlug     *string
	Summary     *string
	Description *string
	PriceCents  *int64
	Currency    *string
	IsActive    *bool
}

// OfferingUsecase defines the interface for service offering operations.
// Public readers only ever see active offerings.
type OfferingUsecase interface {
	// ListActive retrieves the offerings shown on the public site.
	ListActive(ctx context.Context) ([]*entity.Offering, error)

	// ListAll retrieves every offering including inactive ones.
	ListAll(ctx context.Context) ([]*entity.Offering, error)

	// GetActiveBySlug retrieves an active offering; inactive ones are
	// reported as not found.
	GetActiveBySlug(ctx context.Context, slug string) (*entity.Offering, error)

	// CreateOffering persists a new offering.
	CreateOffering(ctx context.Context, input *CreateOfferingInput) (*entity.Offering, error)

	// UpdateOffering applies changes to the offering with the given slug.
	UpdateOffering(ctx context.Context, input *UpdateOfferingInput) (*entity.Offering, error)

	// DeleteOffering removes the offering with the given slug.
	DeleteOffering(ctx context.Context, slug string) error
}
