package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProjects retrieves all projects ordered by display order.
func (srv *projectService) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// GetBySlug retrieves a single project by its slug.
func (srv *projectService) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	return srv.findBySlug(ctx, slug)
}

// CreateProject persists a new project.
func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	srv.log(ctx).Debug("Creating project", slog.String("slug", input.Slug))

	project := &entity.Project{
		Title:         input.Title,
		Slug:          input.Slug,
		Summary:       input.Summary,
		Description:   input.Description,
		CoverImageKey: input.CoverImageKey,
		RepoURL:       input.RepoURL,
		LiveURL:       input.LiveURL,
		DisplayOrder:  input.DisplayOrder,
		Featured:      input.Featured,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		srv.log(ctx).Warn("Failed to create project", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID))

	return project, nil
}

// UpdateProject applies changes to the project with the given slug.
func (srv *projectService) UpdateProject(ctx context.Context, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	srv.log(ctx).Debug("Updating project", slog.String("slug", input.Slug))

	project, err := srv.findBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.NewSlug != nil {
		project.Slug = *input.NewSlug
	}
	if input.Summary != nil {
		project.Summary = *input.Summary
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.CoverImageKey != nil {
		project.CoverImageKey = *input.CoverImageKey
	}
	if input.RepoURL != nil {
		project.RepoURL = *input.RepoURL
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.DisplayOrder != nil {
		project.DisplayOrder = *input.DisplayOrder
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		srv.log(ctx).Warn("Failed to update project", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update project")
	}

	srv.log(ctx).Info("Project updated", slog.Any("projectID", project.ID))

	return project, nil
}

// DeleteProject removes the project with the given slug.
func (srv *projectService) DeleteProject(ctx context.Context, slug string) error {
	srv.log(ctx).Debug("Deleting project", slog.String("slug", slug))

	project, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := srv.projectRepo.Delete(ctx, project.ID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
		}

		return errors.Wrap(err, "failed to delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.Any("projectID", project.ID), slog.String("slug", slug))

	return nil
}

func (srv *projectService) findBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	project, err := srv.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}
