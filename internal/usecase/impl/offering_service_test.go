package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offeringServiceFixtures holds all test dependencies for offering service tests.
type offeringServiceFixtures struct {
	service      usecase.OfferingUsecase
	offeringRepo *mockRepo.MockOfferingRepository
}

func createTestOfferingService(t *testing.T) offeringServiceFixtures {
	offeringRepo := mockRepo.NewMockOfferingRepository(t)

	service := NewOfferingService(OfferingServiceParams{
		OfferingRepo: offeringRepo,
		Logger:       newDiscardLogger(),
	})

	return offeringServiceFixtures{
		service:      service,
		offeringRepo: offeringRepo,
	}
}

func activeTestOffering() *entity.Offering {
	return &entity.Offering{
		ID:         uuid.New(),
		Title:      "Wheel throwing workshop",
		Slug:       "wheel-throwing-workshop",
		Summary:    "A weekend introduction to the wheel.",
		PriceCents: 18000,
		Currency:   "USD",
		IsActive:   true,
	}
}

func TestOfferingService_ListActive_Success(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offerings := []*entity.Offering{activeTestOffering()}

	fx.offeringRepo.EXPECT().List(ctx, true).Return(offerings, nil)

	listed, err := fx.service.ListActive(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "wheel-throwing-workshop", listed[0].Slug)
}

func TestOfferingService_ListAll_IncludesInactive(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offerings := []*entity.Offering{
		activeTestOffering(),
		{ID: uuid.New(), Slug: "retired-workshop", IsActive: false},
	}

	fx.offeringRepo.EXPECT().List(ctx, false).Return(offerings, nil)

	listed, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestOfferingService_GetActiveBySlug_Success(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offering := activeTestOffering()

	fx.offeringRepo.EXPECT().FindBySlug(ctx, offering.Slug).Return(offering, nil)

	found, err := fx.service.GetActiveBySlug(ctx, offering.Slug)

	require.NoError(t, err)
	assert.Equal(t, offering.ID, found.ID)
}

func TestOfferingService_GetActiveBySlug_InactiveHidden(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offering := activeTestOffering()
	offering.IsActive = false

	fx.offeringRepo.EXPECT().FindBySlug(ctx, offering.Slug).Return(offering, nil)

	found, err := fx.service.GetActiveBySlug(ctx, offering.Slug)

	assert.Error(t, err)
	assert.Nil(t, found)
	// An inactive offering answers exactly like a missing one.
	assert.True(t, errors.Is(err, domainerrors.ErrOfferingNotFound))
}

func TestOfferingService_CreateOffering_DefaultsCurrency(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	input := &usecase.CreateOfferingInput{
		Title:      "Wheel throwing workshop",
		Slug:       "wheel-throwing-workshop",
		PriceCents: 18000,
		IsActive:   true,
	}

	fx.offeringRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offering")).
		Run(func(ctx context.Context, offering *entity.Offering) {
			offering.ID = uuid.New()
		}).
		Return(nil)

	offering, err := fx.service.CreateOffering(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "USD", offering.Currency)
	assert.Equal(t, int64(18000), offering.PriceCents)
}

func TestOfferingService_UpdateOffering_ChangesPriceAndVisibility(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offering := activeTestOffering()
	newPrice := int64(21000)
	retire := false

	fx.offeringRepo.EXPECT().FindBySlug(ctx, offering.Slug).Return(offering, nil)
	fx.offeringRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Offering")).
		Run(func(ctx context.Context, updated *entity.Offering) {
			assert.Equal(t, int64(21000), updated.PriceCents)
			assert.False(t, updated.IsActive)
		}).
		Return(nil)

	updated, err := fx.service.UpdateOffering(ctx, &usecase.UpdateOfferingInput{
		Slug:       offering.Slug,
		PriceCents: &newPrice,
		IsActive:   &retire,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21000), updated.PriceCents)
	assert.Equal(t, "Wheel throwing workshop", updated.Title)
}

func TestOfferingService_UpdateOffering_NotFound(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	newTitle := "Renamed"

	fx.offeringRepo.EXPECT().
		FindBySlug(ctx, "missing-offering").
		Return(nil, repository.ErrOfferingNotFound)

	offering, err := fx.service.UpdateOffering(ctx, &usecase.UpdateOfferingInput{
		Slug:  "missing-offering",
		Title: &newTitle,
	})

	assert.Error(t, err)
	assert.Nil(t, offering)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferingNotFound))
}

func TestOfferingService_DeleteOffering_Success(t *testing.T) {
	fx := createTestOfferingService(t)

	ctx := context.Background()
	offering := activeTestOffering()

	fx.offeringRepo.EXPECT().FindBySlug(ctx, offering.Slug).Return(offering, nil)
	fx.offeringRepo.EXPECT().Delete(ctx, offering.ID).Return(nil)

	err := fx.service.DeleteOffering(ctx, offering.Slug)

	require.NoError(t, err)
}
