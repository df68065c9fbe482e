// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
)

// CreateProjectInput defines the data required to create a portfolio project.
type CreateProjectInput struct {
	Title         string
	Slug          string
	Summary       string
	Description   string
	CoverImageKey string
	RepoURL       string
	LiveURL       string
	DisplayOrder  int
	Featured      bool
}

// UpdateProjectInput carries project changes keyed by the current slug.
// Nil pointers leave the current value untouched.
type UpdateProjectInput struct {
	Slug          string
	Title         *string
	NewSlug       *string
	Summary       *string
	Description   *string
	CoverImageKey *string
	RepoURL       *string
	LiveURL       *string
	DisplayOrder  *int
	Featured      *bool
}

// ProjectUsecase defines the interface for portfolio project operations.
type ProjectUsecase interface {
	// ListProjects retrieves all projects ordered by display order.
	ListProjects(ctx context.Context) ([]*entity.Project, error)

	// GetBySlug retrieves a single project by its slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// CreateProject persists a new project.
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)

	// UpdateProject applies changes to the project with the given slug.
	UpdateProject(ctx context.Context, input *UpdateProjectInput) (*entity.Project, error)

	// DeleteProject removes the project with the given slug.
	DeleteProject(ctx context.Context, slug string) error
}
