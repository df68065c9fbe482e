package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inquiryServiceFixtures holds all test dependencies for inquiry service tests.
type inquiryServiceFixtures struct {
	service     usecase.InquiryUsecase
	inquiryRepo *mockRepo.MockInquiryRepository
	mailer      *mockSvc.MockMailer
}

func createTestInquiryService(t *testing.T) inquiryServiceFixtures {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewInquiryService(InquiryServiceParams{
		InquiryRepo: inquiryRepo,
		Mailer:      mailer,
		Logger:      newDiscardLogger(),
	})

	return inquiryServiceFixtures{
		service:     service,
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
	}
}

func TestInquiryService_SubmitInquiry_Success(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	input := &usecase.SubmitInquiryInput{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Subject: "Commission request",
		Body:    "Would you take on a dinnerware set?",
	}

	fx.inquiryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Run(func(ctx context.Context, inquiry *entity.Inquiry) {
			inquiry.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendInquiryNotification(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Return(nil)

	inquiry, err := fx.service.SubmitInquiry(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, inquiry)
	assert.NotEqual(t, uuid.Nil, inquiry.ID)
	assert.Equal(t, "Commission request", inquiry.Subject)
	assert.False(t, inquiry.Handled)
}

func TestInquiryService_SubmitInquiry_NotificationFailureStillSucceeds(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()

	// The stored row is the source of truth; a dead mailer loses nothing.
	fx.inquiryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Run(func(ctx context.Context, inquiry *entity.Inquiry) {
			inquiry.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendInquiryNotification(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Return(errors.New("smtp connection refused"))

	inquiry, err := fx.service.SubmitInquiry(ctx, &usecase.SubmitInquiryInput{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Subject: "Commission request",
		Body:    "Would you take on a dinnerware set?",
	})

	require.NoError(t, err)
	assert.NotNil(t, inquiry)
}

func TestInquiryService_SubmitInquiry_StoreFailure(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()

	// No notification goes out for an inquiry that was never stored.
	fx.inquiryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Return(errors.New("database connection failed"))

	inquiry, err := fx.service.SubmitInquiry(ctx, &usecase.SubmitInquiryInput{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Subject: "Commission request",
		Body:    "Would you take on a dinnerware set?",
	})

	assert.Error(t, err)
	assert.Nil(t, inquiry)
	assert.Contains(t, err.Error(), "failed to store inquiry")
}

func TestInquiryService_ListInquiries_Success(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	inquiries := []*entity.Inquiry{
		{ID: uuid.New(), Subject: "Commission request"},
		{ID: uuid.New(), Subject: "Workshop availability", Handled: true},
	}

	fx.inquiryRepo.EXPECT().List(ctx).Return(inquiries, nil)

	listed, err := fx.service.ListInquiries(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestInquiryService_MarkHandled_Success(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	inquiryID := uuid.New()

	fx.inquiryRepo.EXPECT().MarkHandled(ctx, inquiryID).Return(nil)

	err := fx.service.MarkHandled(ctx, inquiryID)

	require.NoError(t, err)
}

func TestInquiryService_MarkHandled_NotFound(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	inquiryID := uuid.New()

	fx.inquiryRepo.EXPECT().MarkHandled(ctx, inquiryID).Return(repository.ErrInquiryNotFound)

	err := fx.service.MarkHandled(ctx, inquiryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInquiryNotFound))
}
