package impl

import (
	"context"
	"testing"

	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_CreateAccount_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("", errors.New("bcrypt cost out of range"))

	account, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Username: "mira",
		Email:    "mira@example.com",
		Password: "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_CreateAccount_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists"))

	account, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Username: "mira",
		Email:    "mira@example.com",
		Password: "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, accountID)

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	newUsername := "renamed"

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID: accountID,
		Username:  &newUsername,
	})

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_UpdateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()
	takenEmail := "ops@example.com"

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists"))

	updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID: account.ID,
		Email:     &takenEmail,
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()

	// The new password is never hashed when the current one fails to verify.
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", account.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "wrong-password",
		NewPassword:     "Stronger456!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_ChangePassword_AccountNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       accountID,
		CurrentPassword: "Password123!",
		NewPassword:     "Stronger456!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ChangePassword_TransactionFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := activeTestAccount()
	dbError := errors.New("database connection failed")

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.hasher.EXPECT().Hash("Stronger456!").Return("new-password-hash", nil)

	fx.onExecute(ctx, errors.Wrap(dbError, "failed to update password hash"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)

		mockAccountRepo.EXPECT().
			UpdatePasswordHash(ctx, account.ID, "new-password-hash").
			Return(dbError)
	})

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "Password123!",
		NewPassword:     "Stronger456!",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute password change transaction")
}

func TestAccountService_SetActive_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.SetActive(ctx, accountID, false)

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
