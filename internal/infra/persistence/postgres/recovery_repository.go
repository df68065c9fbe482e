// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recoveryRepository implements the domain.RecoveryRepository interface using GORM.
type recoveryRepository struct {
	db *gorm.DB
}

// NewRecoveryRepository is the constructor for recoveryRepository.
func NewRecoveryRepository(db *gorm.DB) repository.RecoveryRepository {
	return &recoveryRepository{db: db}
}

// Create persists a new password recovery grant.
func (repo *recoveryRepository) Create(ctx context.Context, recovery *entity.PasswordRecovery) error {
	recoveryM := fromPasswordRecoveryDomain(recovery)

	if err := repo.db.WithContext(ctx).Create(recoveryM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("recovery token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password recovery")
	}

	recovery.ID = recoveryM.ID
	recovery.CreatedAt = recoveryM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a recovery grant by the hash of its raw token.
func (repo *recoveryRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordRecovery, error) {
	var recoveryM model.PasswordRecoveryModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&recoveryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecoveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find password recovery by token hash")
	}

	return toPasswordRecoveryDomain(&recoveryM), nil
}

// MarkUsed flags the grant as redeemed so it can never fire twice.
func (repo *recoveryRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordRecoveryModel{}).
		Where("id = ?", id).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password recovery used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecoveryNotFound
	}

	return nil
}

// DeleteDead removes grants that can never be redeemed again.
func (repo *recoveryRepository) DeleteDead(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("used = ? OR expires_at <= ?", true, now).
		Delete(&model.PasswordRecoveryModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dead password recoveries")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toPasswordRecoveryDomain converts a GORM PasswordRecoveryModel to a domain PasswordRecovery entity.
func toPasswordRecoveryDomain(data *model.PasswordRecoveryModel) *entity.PasswordRecovery {
	if data == nil {
		return nil
	}

	return &entity.PasswordRecovery{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

// fromPasswordRecoveryDomain converts a domain PasswordRecovery entity to a GORM PasswordRecoveryModel.
func fromPasswordRecoveryDomain(data *entity.PasswordRecovery) *model.PasswordRecoveryModel {
	if data == nil {
		return nil
	}

	return &model.PasswordRecoveryModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
