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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount provisions a new account with a hashed password.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Debug("Creating account", slog.String("username", input.Username))

	// 1. Hash the password outside any transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	// 2. Persist; username/email collisions surface as a conflict.
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID), slog.String("role", role.String()))

	return account, nil
}

// ListAccounts retrieves all accounts ordered by creation time.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetAccount retrieves a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// UpdateProfile applies self-service profile changes. Nil input fields leave
// the current value untouched.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("accountID", input.AccountID))

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account for profile update")
	}

	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.Email != nil {
		account.Email = *input.Email
	}
	if input.ProfileImageKey != nil {
		account.ProfileImageKey = *input.ProfileImageKey
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("accountID", account.ID))

	return account, nil
}

// ChangePassword verifies the current password, stores the new hash and ends
// every session of the account so stolen refresh tokens die with the old
// password.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Debug("Changing password", slog.Any("accountID", input.AccountID))

	// 1. Resolve the account and prove the caller knows the current password.
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to find account for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("accountID", input.AccountID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password change failed")
	}

	// 2. Hash the replacement outside the transaction.
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	// 3. Swap the hash and purge sessions atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().UpdatePasswordHash(ctx, account.ID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}
		if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to purge account sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

// SetActive flips the account's active flag. Deactivating also ends every
// session of the account, locking it out immediately rather than at token
// expiry.
func (srv *accountService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Account, error) {
	srv.log(ctx).Debug("Setting account active flag", slog.Any("accountID", id), slog.Bool("active", active))

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account for activation change")
	}

	if account.IsActive == active {
		return account, nil
	}

	account.IsActive = active

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		if !active {
			if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, account.ID); err != nil {
				return errors.Wrap(err, "failed to purge account sessions")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute activation transaction", slog.Any("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute activation transaction")
	}

	srv.log(ctx).Info("Account active flag updated", slog.Any("accountID", account.ID), slog.Bool("active", active))

	return account, nil
}
