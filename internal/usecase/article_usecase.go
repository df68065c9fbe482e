// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
)

// CreateArticleInput defines the data required to create an article.
type CreateArticleInput struct {
	Title         string
	Slug          string
	Summary       string
	Body          string
	CoverImageKey string
	Status        entity.ArticleStatus
}

// UpdateArticleInput carries article changes keyed by the current slug.
// Nil pointers leave the current value untouched.
type UpdateArticleInput struct {
	Slug          string
	Title         *string
	NewSlug       *string
	Summary       *string
	Body          *string
	CoverImageKey *string
	Status        *entity.ArticleStatus
}

// ArticleUsecase defines the interface for article operations. Public readers
// only ever see published articles; the editorial surface sees everything.
type ArticleUsecase interface {
	// ListPublished retrieves published articles, newest publication first.
	ListPublished(ctx context.Context) ([]*entity.Article, error)

	// ListAll retrieves every article including drafts, newest first.
	ListAll(ctx context.Context) ([]*entity.Article, error)

	// GetPublishedBySlug retrieves a published article; drafts are reported
	// as not found.
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// CreateArticle persists a new article.
	CreateArticle(ctx context.Context, input *CreateArticleInput) (*entity.Article, error)

	// UpdateArticle applies changes to the article with the given slug. The
	// first transition to published stamps the publication time exactly once.
	UpdateArticle(ctx context.Context, input *UpdateArticleInput) (*entity.Article, error)

	// DeleteArticle removes the article with the given slug.
	DeleteArticle(ctx context.Context, slug string) error

	// ShareQR renders a PNG QR code pointing at the published article's
	// public page. Drafts are reported as not found.
	ShareQR(ctx context.Context, slug string) ([]byte, error)
}
