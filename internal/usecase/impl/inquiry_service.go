package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// InquiryServiceParams holds dependencies for InquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	InquiryRepo repository.InquiryRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo: params.InquiryRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitInquiry persists a new inquiry and notifies the configured inbox. The
// stored row is the source of truth: a notification failure is logged but the
// submission still succeeds.
func (srv *inquiryService) SubmitInquiry(ctx context.Context, input *usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	srv.log(ctx).Debug("Submitting inquiry", slog.String("subject", input.Subject))

	inquiry := &entity.Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		srv.log(ctx).Error("Failed to store inquiry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store inquiry")
	}

	if err := srv.mailer.SendInquiryNotification(ctx, inquiry); err != nil {
		srv.log(ctx).Error("Failed to send inquiry notification", slog.Any("inquiryID", inquiry.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Inquiry submitted", slog.Any("inquiryID", inquiry.ID))

	return inquiry, nil
}

// ListInquiries retrieves all inquiries newest-first.
func (srv *inquiryService) ListInquiries(ctx context.Context) ([]*entity.Inquiry, error) {
	inquiries, err := srv.inquiryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	return inquiries, nil
}

// MarkHandled flags an inquiry as dealt with.
func (srv *inquiryService) MarkHandled(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Debug("Marking inquiry handled", slog.Any("inquiryID", id))

	if err := srv.inquiryRepo.MarkHandled(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return errors.Wrap(domainerrors.ErrInquiryNotFound, "inquiry not found")
		}

		return errors.Wrap(err, "failed to mark inquiry handled")
	}

	srv.log(ctx).Info("Inquiry marked handled", slog.Any("inquiryID", id))

	return nil
}
