// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is a domain-specific error returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindBySlug retrieves a single project by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// List retrieves all projects ordered by display order, then creation time.
	List(ctx context.Context) ([]*entity.Project, error)

	// Create persists a new project entity to the storage.
	Create(ctx context.Context, project *entity.Project) error

	// Update modifies an existing project entity in the storage.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes the project with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
