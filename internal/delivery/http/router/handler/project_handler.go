package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler holds dependencies for portfolio project handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Summary      string `json:"summary"`
	Description  string `json:"description"`
	CoverImage   string `json:"coverImage"`
	RepoURL      string `json:"repoUrl" validate:"omitempty,url"`
	LiveURL      string `json:"liveUrl" validate:"omitempty,url"`
	DisplayOrder int    `json:"displayOrder"`
	Featured     bool   `json:"featured"`
}

// UpdateProjectRequest is the request body for updating a project. The
// current slug rides in the path; a non-nil slug field renames it.
type UpdateProjectRequest struct {
	Title        *string `json:"title,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	Summary      *string `json:"summary,omitempty"`
	Description  *string `json:"description,omitempty"`
	CoverImage   *string `json:"coverImage,omitempty"`
	RepoURL      *string `json:"repoUrl,omitempty" validate:"omitempty,url"`
	LiveURL      *string `json:"liveUrl,omitempty" validate:"omitempty,url"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

// List handles the public project listing, ordered for display.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProjectResponses(projects))
}

// GetBySlug handles the public project read.
func (h *ProjectHandler) GetBySlug(c echo.Context) error {
	project, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProjectResponse(project))
}

// Create handles creating a new project.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.uc.CreateProject(c.Request().Context(), &usecase.CreateProjectInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Description:   req.Description,
		CoverImageKey: req.CoverImage,
		RepoURL:       req.RepoURL,
		LiveURL:       req.LiveURL,
		DisplayOrder:  req.DisplayOrder,
		Featured:      req.Featured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewProjectResponse(project))
}

// Update handles updating a project addressed by its current slug.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.uc.UpdateProject(c.Request().Context(), &usecase.UpdateProjectInput{
		Slug:          c.Param("slug"),
		Title:         req.Title,
		NewSlug:       req.Slug,
		Summary:       req.Summary,
		Description:   req.Description,
		CoverImageKey: req.CoverImage,
		RepoURL:       req.RepoURL,
		LiveURL:       req.LiveURL,
		DisplayOrder:  req.DisplayOrder,
		Featured:      req.Featured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProjectResponse(project))
}

// Delete handles deleting a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProject(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Project deleted successfully")
}
