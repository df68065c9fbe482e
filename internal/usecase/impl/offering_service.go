package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offeringService implements the OfferingUsecase interface.
type offeringService struct {
	offeringRepo repository.OfferingRepository
	logger       *slog.Logger
}

// OfferingServiceParams holds dependencies for OfferingService, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	OfferingRepo repository.OfferingRepository
	Logger       *slog.Logger
}

// NewOfferingService is the constructor for offeringService.
func NewOfferingService(params OfferingServiceParams) usecase.OfferingUsecase {
	return &offeringService{
		offeringRepo: params.OfferingRepo,
		logger:       params.Logger,
	}
}

func (srv *offeringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActive retrieves the offerings shown on the public site.
func (srv *offeringService) ListActive(ctx context.Context) ([]*entity.Offering, error) {
	offerings, err := srv.offeringRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active offerings")
	}

	return offerings, nil
}

// ListAll retrieves every offering including inactive ones.
func (srv *offeringService) ListAll(ctx context.Context) ([]*entity.Offering, error) {
	offerings, err := srv.offeringRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}

	return offerings, nil
}

// GetActiveBySlug retrieves an active offering. Inactive ones answer exactly
// like missing ones.
func (srv *offeringService) GetActiveBySlug(ctx context.Context, slug string) (*entity.Offering, error) {
	offering, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !offering.IsActive {
		return nil, errors.Wrap(domainerrors.ErrOfferingNotFound, "offering not found")
	}

	return offering, nil
}

// CreateOffering persists a new offering.
func (srv *offeringService) CreateOffering(ctx context.Context, input *usecase.CreateOfferingInput) (*entity.Offering, error) {
	srv.log(ctx).Debug("Creating offering", slog.String("slug", input.Slug))

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	offering := &entity.Offering{
		Title:       input.Title,
		Slug:        input.Slug,
		Summary:     input.Summary,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Currency:    currency,
		IsActive:    input.IsActive,
	}

	if err := srv.offeringRepo.Create(ctx, offering); err != nil {
		srv.log(ctx).Warn("Failed to create offering", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create offering")
	}

	srv.log(ctx).Info("Offering created", slog.Any("offeringID", offering.ID))

	return offering, nil
}

// UpdateOffering applies changes to the offering with the given slug.
func (srv *offeringService) UpdateOffering(ctx context.Context, input *usecase.UpdateOfferingInput) (*entity.Offering, error) {
	srv.log(ctx).Debug("Updating offering", slog.String("slug", input.Slug))

	offering, err := srv.findBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		offering.Title = *input.Title
	}
	if input.NewSlug != nil {
		offering.Slug = *input.NewSlug
	}
	if input.Summary != nil {
		offering.Summary = *input.Summary
	}
	if input.Description != nil {
		offering.Description = *input.Description
	}
	if input.PriceCents != nil {
		offering.PriceCents = *input.PriceCents
	}
	if input.Currency != nil {
		offering.Currency = *input.Currency
	}
	if input.IsActive != nil {
		offering.IsActive = *input.IsActive
	}

	if err := srv.offeringRepo.Update(ctx, offering); err != nil {
		srv.log(ctx).Warn("Failed to update offering", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update offering")
	}

	srv.log(ctx).Info("Offering updated", slog.Any("offeringID", offering.ID))

	return offering, nil
}

// DeleteOffering removes the offering with the given slug.
func (srv *offeringService) DeleteOffering(ctx context.Context, slug string) error {
	srv.log(ctx).Debug("Deleting offering", slog.String("slug", slug))

	offering, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := srv.offeringRepo.Delete(ctx, offering.ID); err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			return errors.Wrap(domainerrors.ErrOfferingNotFound, "offering not found")
		}

		return errors.Wrap(err, "failed to delete offering")
	}

	srv.log(ctx).Info("Offering deleted", slog.Any("offeringID", offering.ID), slog.String("slug", slug))

	return nil
}

func (srv *offeringService) findBySlug(ctx context.Context, slug string) (*entity.Offering, error) {
	offering, err := srv.offeringRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferingNotFound, "offering not found")
		}

		return nil, errors.Wrap(err, "failed to find offering")
	}

	return offering, nil
}
