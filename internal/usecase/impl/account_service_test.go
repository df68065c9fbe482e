package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	t           *testing.T
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
	}
}

func (fx accountServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	stubExecute(fx.t, ctx, fx.txManager, result, setup)
}

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Username: "mira",
		Email:    "mira@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	account, err := fx.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "mira", account.Username)
	assert.Equal(t, "hashed-password", account.PasswordHash)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.True(t, account.IsActive)
}

func TestAccountService_CreateAccount_AdminRole(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Username: "ops",
		Email:    "ops@example.com",
		Password: "Password123!",
		Role:     entity.RoleAdmin,
	}

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	account, err := fx.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, account.Role)
}

func TestAccountService_ListAccounts_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accounts := []*entity.Account{
		{ID: uuid.New(), Username: "mira"},
		{ID: uuid.New(), Username: "ops"},
	}

	fx.accountRepo.EXPECT().List(ctx).Return(accounts, nil)

	listed, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "mira", listed[0].Username)
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	found, err := fx.service.GetAccount(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()
	newUsername := "mira-renamed"
	newImageKey := "uploads/2026/08/25/avatar.png"
	input := &usecase.UpdateProfileInput{
		AccountID:       account.ID,
		Username:        &newUsername,
		ProfileImageKey: &newImageKey,
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.Equal(t, "mira-renamed", updated.Username)
			assert.Equal(t, newImageKey, updated.ProfileImageKey)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "mira-renamed", updated.Username)
	// A nil email pointer leaves the stored value untouched.
	assert.Equal(t, "mira@example.com", updated.Email)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()
	input := &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "Password123!",
		NewPassword:     "Stronger456!",
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.hasher.EXPECT().Hash("Stronger456!").Return("new-password-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().UpdatePasswordHash(ctx, account.ID, "new-password-hash").Return(nil)
			mockSessionRepo.EXPECT().DeleteByAccountID(ctx, account.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_SetActive_DeactivatePurgesSessions(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, updated *entity.Account) {
					assert.False(t, updated.IsActive)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().DeleteByAccountID(ctx, account.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.SetActive(ctx, account.ID, false)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestAccountService_SetActive_ReactivateKeepsSessions(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()
	account.IsActive = false

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			// Reactivation never touches the session repository: there is
			// nothing to purge for an account that could not log in.
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.SetActive(ctx, account.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestAccountService_SetActive_NoopWhenUnchanged(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()

	// No transaction expectation: flipping an already-active account to
	// active writes nothing.
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	updated, err := fx.service.SetActive(ctx, account.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}
