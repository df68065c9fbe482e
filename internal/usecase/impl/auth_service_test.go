package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/observability"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t            *testing.T
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	sessionRepo  *mockRepo.MockSessionRepository
	recoveryRepo *mockRepo.MockRecoveryRepository
	codec        *mockSvc.MockTokenCodec
	hasher       *mockSvc.MockPasswordHasher
	mailer       *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	recoveryRepo := mockRepo.NewMockRecoveryRepository(t)
	codec := mockSvc.NewMockTokenCodec(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		SessionRepo:  sessionRepo,
		RecoveryRepo: recoveryRepo,
		Codec:        codec,
		Hasher:       hasher,
		Mailer:       mailer,
		Metrics:      observability.NewMetrics(),
		Config:       newTestAuthConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		sessionRepo:  sessionRepo,
		recoveryRepo: recoveryRepo,
		codec:        codec,
		hasher:       hasher,
		mailer:       mailer,
	}
}

func (fx authServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	stubExecute(fx.t, ctx, fx.txManager, result, setup)
}

func activeTestAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "mira",
		Email:        "mira@example.com",
		PasswordHash: "$2a$12$stored-hash",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	input := &usecase.LoginInput{
		Identifier: "mira",
		Password:   "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "mira").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.codec.EXPECT().IssueAccess(account.ID, "user", false).Return("access-token", nil)
	fx.codec.EXPECT().IssueRefresh(account.ID).Return("refresh-token", nil)
	fx.codec.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.codec.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).
		Run(func(ctx context.Context, session *entity.RefreshSession) {
			assert.Equal(t, account.ID, session.AccountID)
			assert.Equal(t, "refresh-hash", session.TokenHash)
			assert.True(t, session.ExpiresAt.After(time.Now()))
		}).
		Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	require.NotNil(t, output.Account)
	assert.Equal(t, account.ID, output.Account.ID)
	assert.NotNil(t, output.Account.LastLoginAt)
}

func TestAuthService_Login_EmailIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	input := &usecase.LoginInput{
		Identifier: "mira@example.com",
		Password:   "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "mira@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.codec.EXPECT().IssueAccess(account.ID, "user", false).Return("access-token", nil)
	fx.codec.EXPECT().IssueRefresh(account.ID).Return("refresh-token", nil)
	fx.codec.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.codec.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)
	fx.accountRepo.EXPECT().UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Login_RememberMeExtendsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	input := &usecase.LoginInput{
		Identifier: "mira",
		Password:   "Password123!",
		RememberMe: true,
	}

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "mira").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	// The extended flag only widens the access token; the refresh session keeps
	// its usual lifetime.
	fx.codec.EXPECT().IssueAccess(account.ID, "user", true).Return("extended-access-token", nil)
	fx.codec.EXPECT().IssueRefresh(account.ID).Return("refresh-token", nil)
	fx.codec.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.codec.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)
	fx.accountRepo.EXPECT().UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "extended-access-token", output.AccessToken)
}

func TestAuthService_Login_LastLoginStampFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	input := &usecase.LoginInput{
		Identifier: "mira",
		Password:   "Password123!",
	}

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "mira").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.codec.EXPECT().IssueAccess(account.ID, "user", false).Return("access-token", nil)
	fx.codec.EXPECT().IssueRefresh(account.ID).Return("refresh-token", nil)
	fx.codec.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.codec.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)
	fx.accountRepo.EXPECT().
		UpdateLastLogin(ctx, account.ID, mock.AnythingOfType("time.Time")).
		Return(assert.AnError)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Nil(t, output.Account.LastLoginAt)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	session := &entity.RefreshSession{
		ID:        uuid.New(),
		AccountID: account.ID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.codec.EXPECT().
		Verify("old-refresh-token", service.TokenTypeRefresh).
		Return(&service.Claims{AccountID: account.ID, Type: service.TokenTypeRefresh}, nil)
	fx.codec.EXPECT().HashToken("old-refresh-token").Return("old-hash")
	fx.codec.EXPECT().IssueAccess(account.ID, "user", false).Return("new-access-token", nil)
	fx.codec.EXPECT().IssueRefresh(account.ID).Return("new-refresh-token", nil)
	fx.codec.EXPECT().HashToken("new-refresh-token").Return("new-hash")
	fx.codec.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockSessionRepo.EXPECT().
				ConsumeByTokenHash(ctx, "old-hash", mock.AnythingOfType("time.Time")).
				Return(session, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshSession")).
				Run(func(ctx context.Context, created *entity.RefreshSession) {
					assert.Equal(t, account.ID, created.AccountID)
					assert.Equal(t, "new-hash", created.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh-token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.codec.EXPECT().
		Verify("refresh-token", service.TokenTypeRefresh).
		Return(&service.Claims{AccountID: accountID, Type: service.TokenTypeRefresh}, nil)
	fx.codec.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenStillSucceeds(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// An unverifiable token still gets its hash looked up and deleted, so a
	// client can always clear its own session.
	fx.codec.EXPECT().
		Verify("garbage-token", service.TokenTypeRefresh).
		Return(nil, assert.AnError)
	fx.codec.EXPECT().HashToken("garbage-token").Return("garbage-hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "garbage-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "garbage-token"})

	require.NoError(t, err)
}

func TestAuthService_RequestPasswordRecovery_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.codec.EXPECT().HashToken(mock.AnythingOfType("string")).Return("recovery-hash")
	fx.recoveryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordRecovery")).
		Run(func(ctx context.Context, recovery *entity.PasswordRecovery) {
			assert.Equal(t, account.ID, recovery.AccountID)
			assert.Equal(t, "recovery-hash", recovery.TokenHash)
			assert.True(t, recovery.ExpiresAt.After(time.Now()))
			assert.False(t, recovery.Used)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, account.Email, mock.MatchedBy(func(resetURL string) bool {
			return strings.HasPrefix(resetURL, "https://atelier.example.com/reset-password?token=")
		})).
		Return(nil)

	err := fx.service.RequestPasswordRecovery(ctx, &usecase.RecoveryRequestInput{Email: account.Email})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := activeTestAccount()
	recovery := &entity.PasswordRecovery{
		ID:        uuid.New(),
		AccountID: account.ID,
		TokenHash: "recovery-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.codec.EXPECT().HashToken("raw-recovery-token").Return("recovery-hash")
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new-password-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecoveryRepo := mockRepo.NewMockRecoveryRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().RecoveryRepo().Return(mockRecoveryRepo)
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockRecoveryRepo.EXPECT().FindByTokenHash(ctx, "recovery-hash").Return(recovery, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			mockAccountRepo.EXPECT().UpdatePasswordHash(ctx, account.ID, "new-password-hash").Return(nil)
			mockRecoveryRepo.EXPECT().MarkUsed(ctx, recovery.ID).Return(nil)
			mockSessionRepo.EXPECT().DeleteByAccountID(ctx, account.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-recovery-token",
		NewPassword: "NewPassword123!",
	})

	require.NoError(t, err)
}
