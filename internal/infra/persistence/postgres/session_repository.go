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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new refresh session, representing one "remember this login" grant.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.RefreshSession) error {
	sessionM := fromRefreshSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("refresh session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// ConsumeByTokenHash atomically deletes the live session matching tokenHash and
// returns the deleted row. The conditional DELETE ... RETURNING is a single
// statement, so two concurrent consumers of the same hash see exactly one
// winner; the loser gets ErrSessionNotFound.
func (repo *sessionRepository) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshSession, error) {
	var sessionM model.RefreshSessionModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token_hash = ? AND expires_at > ?", tokenHash, now).
		Delete(&sessionM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume refresh session")
	}
	if result.RowsAffected == 0 {
		// Expired and missing sessions are deliberately indistinguishable.
		return nil, repository.ErrSessionNotFound
	}

	return toRefreshSessionDomain(&sessionM), nil
}

// DeleteByTokenHash removes the session matching tokenHash. Deleting a missing
// session is not an error, which keeps logout idempotent.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshSessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh session")
	}

	return nil
}

// DeleteByAccountID removes every session belonging to the account.
func (repo *sessionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.RefreshSessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account sessions")
	}

	return nil
}

// DeleteExpired removes all sessions whose expiry is at or before now.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.RefreshSessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toRefreshSessionDomain converts a GORM RefreshSessionModel to a domain RefreshSession entity.
func toRefreshSessionDomain(data *model.RefreshSessionModel) *entity.RefreshSession {
	if data == nil {
		return nil
	}

	return &entity.RefreshSession{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshSessionDomain converts a domain RefreshSession entity to a GORM RefreshSessionModel.
func fromRefreshSessionDomain(data *entity.RefreshSession) *model.RefreshSessionModel {
	if data == nil {
		return nil
	}

	return &model.RefreshSessionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
