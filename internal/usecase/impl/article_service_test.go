package impl

import (
	"context"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// articleServiceFixtures holds all test dependencies for article service tests.
type articleServiceFixtures struct {
	service     usecase.ArticleUsecase
	articleRepo *mockRepo.MockArticleRepository
	qr          *mockSvc.MockShareQRService
}

func createTestArticleService(t *testing.T) articleServiceFixtures {
	articleRepo := mockRepo.NewMockArticleRepository(t)
	qr := mockSvc.NewMockShareQRService(t)

	service := NewArticleService(ArticleServiceParams{
		ArticleRepo: articleRepo,
		QR:          qr,
		Logger:      newDiscardLogger(),
	})

	return articleServiceFixtures{
		service:     service,
		articleRepo: articleRepo,
		qr:          qr,
	}
}

func publishedTestArticle() *entity.Article {
	publishedAt := time.Now().Add(-time.Hour)

	return &entity.Article{
		ID:          uuid.New(),
		Title:       "Notes on glaze chemistry",
		Slug:        "notes-on-glaze-chemistry",
		Summary:     "Why ash glazes behave the way they do.",
		Body:        "Long-form notes on ash glaze behavior.",
		Status:      entity.ArticleStatusPublished,
		PublishedAt: &publishedAt,
	}
}

func TestArticleService_ListPublished_Success(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	articles := []*entity.Article{publishedTestArticle()}

	fx.articleRepo.EXPECT().List(ctx, true).Return(articles, nil)

	listed, err := fx.service.ListPublished(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "notes-on-glaze-chemistry", listed[0].Slug)
}

func TestArticleService_ListAll_IncludesDrafts(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	articles := []*entity.Article{
		publishedTestArticle(),
		{ID: uuid.New(), Slug: "wip-kiln-rebuild", Status: entity.ArticleStatusDraft},
	}

	fx.articleRepo.EXPECT().List(ctx, false).Return(articles, nil)

	listed, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestArticleService_GetPublishedBySlug_Success(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := publishedTestArticle()

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)

	found, err := fx.service.GetPublishedBySlug(ctx, article.Slug)

	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)
}

func TestArticleService_CreateArticle_DefaultsToDraft(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	input := &usecase.CreateArticleInput{
		Title:   "Notes on glaze chemistry",
		Slug:    "notes-on-glaze-chemistry",
		Summary: "Why ash glazes behave the way they do.",
		Body:    "Long-form notes on ash glaze behavior.",
	}

	fx.articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(ctx context.Context, article *entity.Article) {
			article.ID = uuid.New()
		}).
		Return(nil)

	article, err := fx.service.CreateArticle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ArticleStatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
}

func TestArticleService_CreateArticle_PublishedStampsPublicationTime(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	input := &usecase.CreateArticleInput{
		Title:  "Opening the new studio",
		Slug:   "opening-the-new-studio",
		Status: entity.ArticleStatusPublished,
	}

	fx.articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(ctx context.Context, article *entity.Article) {
			article.ID = uuid.New()
		}).
		Return(nil)

	article, err := fx.service.CreateArticle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ArticleStatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)
	assert.WithinDuration(t, time.Now(), *article.PublishedAt, time.Minute)
}

func TestArticleService_UpdateArticle_FirstPublishStampsTime(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := &entity.Article{
		ID:     uuid.New(),
		Title:  "Notes on glaze chemistry",
		Slug:   "notes-on-glaze-chemistry",
		Status: entity.ArticleStatusDraft,
	}
	published := entity.ArticleStatusPublished

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)
	fx.articleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Article")).Return(nil)

	updated, err := fx.service.UpdateArticle(ctx, &usecase.UpdateArticleInput{
		Slug:   article.Slug,
		Status: &published,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ArticleStatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	assert.WithinDuration(t, time.Now(), *updated.PublishedAt, time.Minute)
}

func TestArticleService_UpdateArticle_RepublishKeepsOriginalStamp(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	firstPublication := time.Now().Add(-48 * time.Hour)
	article := &entity.Article{
		ID:          uuid.New(),
		Slug:        "notes-on-glaze-chemistry",
		Status:      entity.ArticleStatusDraft,
		PublishedAt: &firstPublication,
	}
	published := entity.ArticleStatusPublished

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)
	fx.articleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Article")).Return(nil)

	updated, err := fx.service.UpdateArticle(ctx, &usecase.UpdateArticleInput{
		Slug:   article.Slug,
		Status: &published,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	// Unpublishing and publishing again never moves the original stamp.
	assert.True(t, updated.PublishedAt.Equal(firstPublication))
}

func TestArticleService_UpdateArticle_RenamesSlug(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := publishedTestArticle()
	newSlug := "glaze-chemistry-revisited"

	fx.articleRepo.EXPECT().FindBySlug(ctx, "notes-on-glaze-chemistry").Return(article, nil)
	fx.articleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(ctx context.Context, updated *entity.Article) {
			assert.Equal(t, newSlug, updated.Slug)
		}).
		Return(nil)

	updated, err := fx.service.UpdateArticle(ctx, &usecase.UpdateArticleInput{
		Slug:    "notes-on-glaze-chemistry",
		NewSlug: &newSlug,
	})

	require.NoError(t, err)
	assert.Equal(t, newSlug, updated.Slug)
}

func TestArticleService_DeleteArticle_Success(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := publishedTestArticle()

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)
	fx.articleRepo.EXPECT().Delete(ctx, article.ID).Return(nil)

	err := fx.service.DeleteArticle(ctx, article.Slug)

	require.NoError(t, err)
}

func TestArticleService_ShareQR_Success(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := publishedTestArticle()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)
	fx.qr.EXPECT().GenerateShareQR(article.Slug).Return(pngBytes, nil)

	png, err := fx.service.ShareQR(ctx, article.Slug)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}
