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

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsernameOrEmail retrieves a single account whose username or email
// exactly matches the identifier.
func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username or email")
	}

	return toAccountDomain(&accountM), nil
}

// List retrieves all accounts ordered by creation time.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Map the pure domain entity to a GORM persistence model.
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateLastLogin stamps the account's last successful login time.
func (repo *accountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the account's stored password hash.
func (repo *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:              data.ID,
		Username:        data.Username,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		IsActive:        data.IsActive,
		ProfileImageKey: data.ProfileImageKey,
		LastLoginAt:     data.LastLoginAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:              data.ID,
		Username:        data.Username,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Role:            data.Role.String(),
		IsActive:        data.IsActive,
		ProfileImageKey: data.ProfileImageKey,
		LastLoginAt:     data.LastLoginAt,
		CreatedAt:       data.CreatedAt,
	}
}
