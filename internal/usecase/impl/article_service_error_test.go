package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestArticleService_GetPublishedBySlug_NotFound(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()

	fx.articleRepo.EXPECT().
		FindBySlug(ctx, "missing-article").
		Return(nil, repository.ErrArticleNotFound)

	article, err := fx.service.GetPublishedBySlug(ctx, "missing-article")

	assert.Error(t, err)
	assert.Nil(t, article)
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestArticleService_GetPublishedBySlug_DraftHidden(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	draft := &entity.Article{
		ID:     uuid.New(),
		Slug:   "wip-kiln-rebuild",
		Status: entity.ArticleStatusDraft,
	}

	fx.articleRepo.EXPECT().FindBySlug(ctx, draft.Slug).Return(draft, nil)

	article, err := fx.service.GetPublishedBySlug(ctx, draft.Slug)

	assert.Error(t, err)
	assert.Nil(t, article)
	// A draft answers exactly like a missing article, so unpublished slugs
	// cannot be probed.
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestArticleService_CreateArticle_DuplicateSlug(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()

	fx.articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Return(domainerrors.ErrSlugAlreadyExists.WrapMessage("slug already exists"))

	article, err := fx.service.CreateArticle(ctx, &usecase.CreateArticleInput{
		Title: "Notes on glaze chemistry",
		Slug:  "notes-on-glaze-chemistry",
	})

	assert.Error(t, err)
	assert.Nil(t, article)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugAlreadyExists))
}

func TestArticleService_UpdateArticle_NotFound(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	newTitle := "Renamed"

	fx.articleRepo.EXPECT().
		FindBySlug(ctx, "missing-article").
		Return(nil, repository.ErrArticleNotFound)

	article, err := fx.service.UpdateArticle(ctx, &usecase.UpdateArticleInput{
		Slug:  "missing-article",
		Title: &newTitle,
	})

	assert.Error(t, err)
	assert.Nil(t, article)
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestArticleService_DeleteArticle_NotFound(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()

	fx.articleRepo.EXPECT().
		FindBySlug(ctx, "missing-article").
		Return(nil, repository.ErrArticleNotFound)

	err := fx.service.DeleteArticle(ctx, "missing-article")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestArticleService_ShareQR_DraftHidden(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	draft := &entity.Article{
		ID:     uuid.New(),
		Slug:   "wip-kiln-rebuild",
		Status: entity.ArticleStatusDraft,
	}

	// The QR generator is never invoked for a draft.
	fx.articleRepo.EXPECT().FindBySlug(ctx, draft.Slug).Return(draft, nil)

	png, err := fx.service.ShareQR(ctx, draft.Slug)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestArticleService_ShareQR_GeneratorFailure(t *testing.T) {
	fx := createTestArticleService(t)

	ctx := context.Background()
	article := publishedTestArticle()

	fx.articleRepo.EXPECT().FindBySlug(ctx, article.Slug).Return(article, nil)
	fx.qr.EXPECT().GenerateShareQR(article.Slug).Return(nil, errors.New("content too long"))

	png, err := fx.service.ShareQR(ctx, article.Slug)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.Contains(t, err.Error(), "failed to generate share QR code")
}
