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

// projectRepository implements the domain.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM), nil
}

// FindBySlug retrieves a single project by its slug.
func (repo *projectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&projectM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by slug")
	}

	return toProjectDomain(&projectM), nil
}

// List retrieves all projects ordered by display order, then creation time.
func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var projectMs []model.ProjectModel
	err := repo.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&projectMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for i := range projectMs {
		projects = append(projects, toProjectDomain(&projectMs[i]))
	}

	return projects, nil
}

// Create persists a new project entity to the database.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("project slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Update modifies an existing project entity in the database.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Save(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("project slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update project")
	}

	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Delete removes the project with the given ID.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Summary:       data.Summary,
		Description:   data.Description,
		CoverImageKey: data.CoverImageKey,
		RepoURL:       data.RepoURL,
		LiveURL:       data.LiveURL,
		DisplayOrder:  data.DisplayOrder,
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel for persistence.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Summary:       data.Summary,
		Description:   data.Description,
		CoverImageKey: data.CoverImageKey,
		RepoURL:       data.RepoURL,
		LiveURL:       data.LiveURL,
		DisplayOrder:  data.DisplayOrder,
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
	}
}
