// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInquiryNotFound is a domain-specific error returned when an inquiry is not found.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository defines the standard operations for inquiry persistence.
type InquiryRepository interface {
	// FindByID retrieves a single inquiry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)

	// List retrieves all inquiries newest-first.
	List(ctx context.Context) ([]*entity.Inquiry, error)

	// Create persists a new inquiry entity to the storage.
	Create(ctx context.Context, inquiry *entity.Inquiry) error

	// MarkHandled flags the inquiry as dealt with. Returns ErrInquiryNotFound
	// when no row with the given ID exists.
	MarkHandled(ctx context.Context, id uuid.UUID) error
}
