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

// inquiryRepository implements the domain.InquiryRepository interface using GORM.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

// FindByID retrieves a single inquiry by its unique ID.
func (repo *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	var inquiryM model.InquiryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inquiryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inquiry by id")
	}

	return toInquiryDomain(&inquiryM), nil
}

// List retrieves all inquiries newest-first.
func (repo *inquiryRepository) List(ctx context.Context) ([]*entity.Inquiry, error) {
	var inquiryMs []model.InquiryModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&inquiryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(inquiryMs))
	for i := range inquiryMs {
		inquiries = append(inquiries, toInquiryDomain(&inquiryMs[i]))
	}

	return inquiries, nil
}

// Create persists a new inquiry entity to the database.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inquiry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = inquiryM.ID
	inquiry.CreatedAt = inquiryM.CreatedAt

	return nil
}

// MarkHandled flags the inquiry as dealt with.
func (repo *inquiryRepository) MarkHandled(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("id = ?", id).
		Update("handled", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark inquiry handled")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInquiryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toInquiryDomain converts a GORM InquiryModel to a domain Inquiry entity.
func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	if data == nil {
		return nil
	}

	return &entity.Inquiry{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Body:      data.Body,
		Handled:   data.Handled,
		CreatedAt: data.CreatedAt,
	}
}

// fromInquiryDomain converts a domain Inquiry entity to a GORM InquiryModel for persistence.
func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	return &model.InquiryModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Body:      data.Body,
		Handled:   data.Handled,
		CreatedAt: data.CreatedAt,
	}
}
