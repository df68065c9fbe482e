// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/observability"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// recoveryTokenBytes is the entropy of a raw recovery token; the mailed
	// value is its hex encoding.
	recoveryTokenBytes = 32

	defaultRecoveryTokenTTL = 24 * time.Hour
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	sessionRepo      repository.SessionRepository
	recoveryRepo     repository.RecoveryRepository
	codec            service.TokenCodec
	hasher           service.PasswordHasher
	mailer           service.Mailer
	metrics          *observability.Metrics
	recoveryTokenTTL time.Duration
	resetBaseURL     string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	RecoveryRepo repository.RecoveryRepository
	Codec        service.TokenCodec
	Hasher       service.PasswordHasher
	Mailer       service.Mailer
	Metrics      *observability.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	recoveryTokenTTL := defaultRecoveryTokenTTL
	resetBaseURL := ""
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.RecoveryTokenTTL > 0 {
			recoveryTokenTTL = params.Config.Auth.RecoveryTokenTTL
		}
		resetBaseURL = params.Config.Auth.ResetBaseURL
	}

	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		sessionRepo:      params.SessionRepo,
		recoveryRepo:     params.RecoveryRepo,
		codec:            params.Codec,
		hasher:           params.Hasher,
		mailer:           params.Mailer,
		metrics:          params.Metrics,
		recoveryTokenTTL: recoveryTokenTTL,
		resetBaseURL:     resetBaseURL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the account login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	account, err := srv.accountRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		srv.metrics.RecordLogin(false)
		if errors.Is(err, repository.ErrAccountNotFound) {
			// An unknown identifier must be indistinguishable from a wrong password.
			srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	// Check the password before the active flag: identity is proven first,
	// and bcrypt is CPU-bound so it stays outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.metrics.RecordLogin(false)
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !account.IsActive {
		srv.metrics.RecordLogin(false)
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(ctx, account, input.RememberMe)
	if err != nil {
		srv.metrics.RecordLogin(false)
		srv.log(ctx).Error("Login failed to issue tokens", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	// Best-effort: a failed stamp never gates a successful login.
	now := time.Now()
	if err := srv.accountRepo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("accountID", account.ID), slog.Any("error", err))
	} else {
		account.LastLoginAt = &now
	}

	srv.metrics.RecordLogin(true)
	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// RefreshToken rotates a refresh session: the presented token's row is
// consumed and a fresh pair is issued for the same account.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to rotate refresh token")

	if _, err := srv.codec.Verify(input.RefreshToken, service.TokenTypeRefresh); err != nil {
		srv.metrics.RecordRefresh(false)
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "refresh failed")
	}

	tokenHash := srv.codec.HashToken(input.RefreshToken)

	var output *usecase.RefreshTokenOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		accountRepo := repoFactory.AccountRepo()

		// 1. Consume the session row. The conditional delete is the
		// serialization point: two concurrent rotations of one token value
		// produce exactly one winner.
		session, err := sessionRepo.ConsumeByTokenHash(ctx, tokenHash, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "refresh failed")
			}

			return errors.Wrap(err, "failed to consume refresh session")
		}

		// 2. The owner must still exist and be active.
		account, err := accountRepo.FindByID(ctx, session.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "refresh failed")
			}

			return errors.Wrap(err, "failed to load account for refresh")
		}
		if !account.IsActive {
			return errors.Wrap(domainerrors.ErrAccountInactive, "refresh failed")
		}

		// 3. Issue the replacement pair inside the same transaction, so a
		// failed insert rolls the consumed row back instead of logging the
		// account out.
		accessToken, refreshToken, err := srv.issueTokenPairWithRepo(ctx, sessionRepo, account, false)
		if err != nil {
			return err
		}

		output = &usecase.RefreshTokenOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})

	if err != nil {
		srv.metrics.RecordRefresh(false)
		if errors.Is(err, domainerrors.ErrInvalidOrExpiredToken) || errors.Is(err, domainerrors.ErrAccountInactive) {
			srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))
		} else {
			srv.log(ctx).Error("Failed to execute refresh transaction", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	srv.metrics.RecordRefresh(true)
	srv.log(ctx).Debug("Refresh token rotated")

	return output, nil
}

// Logout ends the session for the presented refresh token by deleting its row.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.codec.Verify(input.RefreshToken, service.TokenTypeRefresh); err != nil {
		// Even an invalid token gets its hash deleted; removing nothing is fine.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.codec.HashToken(input.RefreshToken)

	// Single operation - use direct repository instance
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh session")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// RequestPasswordRecovery mints and mails a one-time reset grant. Every path
// reports success: the caller must not be able to probe which emails exist or
// whether the mail infrastructure is up.
func (srv *authService) RequestPasswordRecovery(ctx context.Context, input *usecase.RecoveryRequestInput) error {
	srv.log(ctx).Info("Password recovery requested")
	defer srv.metrics.RecordRecoveryRequest()

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Recovery requested for unknown email")
		} else {
			srv.log(ctx).Error("Failed to look up account for recovery", slog.Any("error", err))
		}

		return nil
	}

	if !account.IsActive {
		srv.log(ctx).Debug("Recovery requested for inactive account", slog.Any("accountID", account.ID))

		return nil
	}

	rawToken, err := util.RandomHex(recoveryTokenBytes)
	if err != nil {
		srv.log(ctx).Error("Failed to mint recovery token", slog.Any("error", err))

		return nil
	}

	recovery := &entity.PasswordRecovery{
		AccountID: account.ID,
		TokenHash: srv.codec.HashToken(rawToken),
		ExpiresAt: time.Now().Add(srv.recoveryTokenTTL),
	}
	if err := srv.recoveryRepo.Create(ctx, recovery); err != nil {
		srv.log(ctx).Error("Failed to store password recovery", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil
	}

	resetURL := fmt.Sprintf("%s?token=%s", srv.resetBaseURL, rawToken)
	if err := srv.mailer.SendPasswordReset(ctx, account.Email, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Password reset mail sent", slog.Any("accountID", account.ID))

	return nil
}

// ResetPassword redeems a recovery grant, replaces the password and purges
// every refresh session of the account. Which check failed is never leaked.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Attempting password reset")

	tokenHash := srv.codec.HashToken(input.Token)
	now := time.Now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recoveryRepo := repoFactory.RecoveryRepo()
		accountRepo := repoFactory.AccountRepo()
		sessionRepo := repoFactory.SessionRepo()

		// 1. Resolve the grant; used and expired grants fail the same way.
		recovery, err := recoveryRepo.FindByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRecoveryNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "password reset failed")
			}

			return errors.Wrap(err, "failed to find password recovery")
		}
		if !recovery.IsRedeemable(now) {
			return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "password reset failed")
		}

		// 2. Resolve the owner; a vanished owner looks like a bad token.
		account, err := accountRepo.FindByID(ctx, recovery.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "password reset failed")
			}

			return errors.Wrap(err, "failed to load account for password reset")
		}

		// 3. Store the new hash.
		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}
		if err := accountRepo.UpdatePasswordHash(ctx, account.ID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		// 4. Burn the grant and end every session of the account.
		if err := recoveryRepo.MarkUsed(ctx, recovery.ID); err != nil {
			return errors.Wrap(err, "failed to mark recovery used")
		}
		if err := sessionRepo.DeleteByAccountID(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to purge account sessions")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidOrExpiredToken) {
			srv.log(ctx).Warn("Password reset rejected")
		} else {
			srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("error", err))
		}

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.metrics.RecordPasswordReset()
	srv.log(ctx).Info("Password reset completed")

	return nil
}

// issueTokenPair mints an access and refresh token for the account and stores
// the matching session row through the service's own repository.
func (srv *authService) issueTokenPair(ctx context.Context, account *entity.Account, extended bool) (string, string, error) {
	return srv.issueTokenPairWithRepo(ctx, srv.sessionRepo, account, extended)
}

// issueTokenPairWithRepo is the transaction-aware variant: callers inside a
// transaction pass the factory-bound session repository.
func (srv *authService) issueTokenPairWithRepo(ctx context.Context, sessionRepo repository.SessionRepository, account *entity.Account, extended bool) (string, string, error) {
	accessToken, err := srv.codec.IssueAccess(account.ID, account.Role.String(), extended)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.codec.IssueRefresh(account.ID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	session := &entity.RefreshSession{
		AccountID: account.ID,
		TokenHash: srv.codec.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.codec.RefreshTokenDuration()),
	}
	if err := sessionRepo.Create(ctx, session); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh session")
	}

	return accessToken, refreshToken, nil
}
