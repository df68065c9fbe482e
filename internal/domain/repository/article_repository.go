// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArticleNotFound is a domain-specific error returned when an article is not found.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository defines the standard operations for article persistence.
type ArticleRepository interface {
	// FindByID retrieves a single article by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)

	// FindBySlug retrieves a single article by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// List retrieves articles newest-first. When publishedOnly is true, drafts
	// are excluded and ordering is by publication time instead.
	List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error)

	// Create persists a new article entity to the storage.
	Create(ctx context.Context, article *entity.Article) error

	// Update modifies an existing article entity in the storage.
	Update(ctx context.Context, article *entity.Article) error

	// Delete removes the article with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
