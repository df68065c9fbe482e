// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// articleRepository implements the domain.ArticleRepository interface using GORM.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{db: db}
}

// FindByID retrieves a single article by its unique ID.
func (repo *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var articleM model.ArticleModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&articleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return toArticleDomain(&articleM), nil
}

// FindBySlug retrieves a single article by its slug.
func (repo *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var articleM model.ArticleModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&articleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by slug")
	}

	return toArticleDomain(&articleM), nil
}

// List retrieves articles newest-first. The public listing excludes drafts and
// orders by publication time instead of creation time.
func (repo *articleRepository) List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error) {
	query := repo.db.WithContext(ctx)
	if publishedOnly {
		query = query.
			Where("status = ?", entity.ArticleStatusPublished.String()).
			Order("published_at DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var articleMs []model.ArticleModel
	if err := query.Find(&articleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	articles := make([]*entity.Article, 0, len(articleMs))
	for i := range articleMs {
		articles = append(articles, toArticleDomain(&articleMs[i]))
	}

	return articles, nil
}

// Create persists a new article entity to the database.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("article slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Update modifies an existing article entity in the database.
func (repo *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Save(articleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("article slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update article")
	}

	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Delete removes the article with the given ID.
func (repo *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ArticleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArticleDomain converts a GORM ArticleModel to a domain Article entity.
func toArticleDomain(data *model.ArticleModel) *entity.Article {
	if data == nil {
		return nil
	}

	return &entity.Article{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Summary:       data.Summary,
		Body:          data.Body,
		CoverImageKey: data.CoverImageKey,
		Status:        entity.ArticleStatus(data.Status),
		PublishedAt:   data.PublishedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromArticleDomain converts a domain Article entity to a GORM ArticleModel for persistence.
func fromArticleDomain(data *entity.Article) *model.ArticleModel {
	if data == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Summary:       data.Summary,
		Body:          data.Body,
		CoverImageKey: data.CoverImageKey,
		Status:        data.Status.String(),
		PublishedAt:   data.PublishedAt,
		CreatedAt:     data.CreatedAt,
	}
}
