package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// articleService implements the ArticleUsecase interface.
type articleService struct {
	articleRepo repository.ArticleRepository
	qr          service.ShareQRService
	logger      *slog.Logger
}

// ArticleServiceParams holds dependencies for ArticleService, injected by Fx.
type ArticleServiceParams struct {
	fx.In

	ArticleRepo repository.ArticleRepository
	QR          service.ShareQRService
	Logger      *slog.Logger
}

// NewArticleService is the constructor for articleService.
func NewArticleService(params ArticleServiceParams) usecase.ArticleUsecase {
	return &articleService{
		articleRepo: params.ArticleRepo,
		qr:          params.QR,
		logger:      params.Logger,
	}
}

func (srv *articleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublished retrieves published articles, newest publication first.
func (srv *articleService) ListPublished(ctx context.Context) ([]*entity.Article, error) {
	articles, err := srv.articleRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published articles")
	}

	return articles, nil
}

// ListAll retrieves every article including drafts, newest first.
func (srv *articleService) ListAll(ctx context.Context) ([]*entity.Article, error) {
	articles, err := srv.articleRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

// GetPublishedBySlug retrieves a published article. Drafts answer exactly like
// missing articles so unpublished slugs cannot be probed.
func (srv *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished() {
		return nil, errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
	}

	return article, nil
}

// CreateArticle persists a new article. Creating one directly in the published
// state stamps the publication time immediately.
func (srv *articleService) CreateArticle(ctx context.Context, input *usecase.CreateArticleInput) (*entity.Article, error) {
	srv.log(ctx).Debug("Creating article", slog.String("slug", input.Slug))

	status := input.Status
	if status == "" {
		status = entity.ArticleStatusDraft
	}

	article := &entity.Article{
		Title:         input.Title,
		Slug:          input.Slug,
		Summary:       input.Summary,
		Body:          input.Body,
		CoverImageKey: input.CoverImageKey,
		Status:        status,
	}
	if status == entity.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := srv.articleRepo.Create(ctx, article); err != nil {
		srv.log(ctx).Warn("Failed to create article", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create article")
	}

	srv.log(ctx).Info("Article created", slog.Any("articleID", article.ID), slog.String("status", status.String()))

	return article, nil
}

// UpdateArticle applies changes to the article with the given slug. The first
// transition to published stamps the publication time; later transitions back
// and forth never move it.
func (srv *articleService) UpdateArticle(ctx context.Context, input *usecase.UpdateArticleInput) (*entity.Article, error) {
	srv.log(ctx).Debug("Updating article", slog.String("slug", input.Slug))

	article, err := srv.findBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.NewSlug != nil {
		article.Slug = *input.NewSlug
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Body != nil {
		article.Body = *input.Body
	}
	if input.CoverImageKey != nil {
		article.CoverImageKey = *input.CoverImageKey
	}
	if input.Status != nil {
		article.Status = *input.Status
		if article.IsPublished() && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := srv.articleRepo.Update(ctx, article); err != nil {
		srv.log(ctx).Warn("Failed to update article", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update article")
	}

	srv.log(ctx).Info("Article updated", slog.Any("articleID", article.ID), slog.String("status", article.Status.String()))

	return article, nil
}

// DeleteArticle removes the article with the given slug.
func (srv *articleService) DeleteArticle(ctx context.Context, slug string) error {
	srv.log(ctx).Debug("Deleting article", slog.String("slug", slug))

	article, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := srv.articleRepo.Delete(ctx, article.ID); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
		}

		return errors.Wrap(err, "failed to delete article")
	}

	srv.log(ctx).Info("Article deleted", slog.Any("articleID", article.ID), slog.String("slug", slug))

	return nil
}

// ShareQR renders a PNG QR code pointing at the published article's public
// page. Drafts answer like missing articles.
func (srv *articleService) ShareQR(ctx context.Context, slug string) ([]byte, error) {
	article, err := srv.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GenerateShareQR(article.Slug)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR code", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// findBySlug resolves a slug to an article, translating the repository
// sentinel into the domain error the delivery layer renders.
func (srv *articleService) findBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := srv.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	return article, nil
}
