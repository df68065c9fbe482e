// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitInquiryInput defines the data a visitor submits through the contact form.
type SubmitInquiryInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// InquiryUsecase defines the interface for contact inquiry operations.
type InquiryUsecase interface {
	// SubmitInquiry persists a new inquiry and notifies the configured inbox.
	// A notification failure is logged but never fails the submission.
	SubmitInquiry(ctx context.Context, input *SubmitInquiryInput) (*entity.Inquiry, error)

	// ListInquiries retrieves all inquiries newest-first.
	ListInquiries(ctx context.Context) ([]*entity.Inquiry, error)

	// MarkHandled flags an inquiry as dealt with.
	MarkHandled(ctx context.Context, id uuid.UUID) error
}
