// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offeringRepository implements the domain.OfferingRepository interface using GORM.
type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository is the constructor for offeringRepository.
func NewOfferingRepository(db *gorm.DB) repository.OfferingRepository {
	return &offeringRepository{db: db}
}

// FindByID retrieves a single offering by its unique ID.
func (repo *offeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	var offeringM model.OfferingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offeringM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferingNotFound
		}

		return nil, errors.Wrap(err, "failed to find offering by id")
	}

	return toOfferingDomain(&offeringM), nil
}

// FindBySlug retrieves a single offering by its slug.
func (repo *offeringRepository) FindBySlug(ctx context.Context, slug string) (*entity.Offering, error) {
	var offeringM model.OfferingModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&offeringM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferingNotFound
		}

		return nil, errors.Wrap(err, "failed to find offering by slug")
	}

	return toOfferingDomain(&offeringM), nil
}

// List retrieves offerings ordered by creation time. The public listing
// excludes inactive offerings.
func (repo *offeringRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Offering, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var offeringMs []model.OfferingModel
	if err := query.Find(&offeringMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}

	offerings := make([]*entity.Offering, 0, len(offeringMs))
	for i := range offeringMs {
		offerings = append(offerings, toOfferingDomain(&offeringMs[i]))
	}

	return offerings, nil
}

// Create persists a new offering entity to the database.
func (repo *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("offering slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offering information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create offering")
	}

	offering.ID = offeringM.ID
	offering.CreatedAt = offeringM.CreatedAt
	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

// Update modifies an existing offering entity in the database.
func (repo *offeringRepository) Update(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Save(offeringM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("offering slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offering information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update offering")
	}

	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

// Delete removes the offering with the given ID.
func (repo *offeringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferingDomain converts a GORM OfferingModel to a domain Offering entity.
func toOfferingDomain(data *model.OfferingModel) *entity.Offering {
	if data == nil {
		return nil
	}

	return &entity.Offering{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Summary:     data.Summary,
		Description: data.Description,
		PriceCents:  data.PriceCents,
		Currency:    data.Currency,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOfferingDomain converts a domain Offering entity to a GORM OfferingModel for persistence.
func fromOfferingDomain(data *entity.Offering) *model.OfferingModel {
	if data == nil {
		return nil
	}

	return &model.OfferingModel{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Summary:     data.Summary,
		Description: data.Description,
		PriceCents:  data.PriceCents,
		Currency:    data.Currency,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}
