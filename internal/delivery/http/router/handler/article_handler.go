package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArticleHandler holds dependencies for article handlers.
type ArticleHandler struct {
	uc     usecase.ArticleUsecase
	logger *slog.Logger
}

// NewArticleHandler is the constructor for ArticleHandler, injected by Fx.
func NewArticleHandler(uc usecase.ArticleUsecase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateArticleRequest is the request body for creating an article.
type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required"`
	Slug       string `json:"slug" validate:"required"`
	Summary    string `json:"summary"`
	Body       string `json:"body"`
	CoverImage string `json:"coverImage"`
	Status     string `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdateArticleRequest is the request body for updating an article. The
// current slug rides in the path; a non-nil slug field renames it.
type UpdateArticleRequest struct {
	Title      *string `json:"title,omitempty"`
	Slug       *string `json:"slug,omitempty"`
	Summary    *string `json:"summary,omitempty"`
	Body       *string `json:"body,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

// ListPublished handles the public article listing.
func (h *ArticleHandler) ListPublished(c echo.Context) error {
	articles, err := h.uc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewArticleResponses(articles))
}

// ListAll handles the editorial listing, drafts included.
func (h *ArticleHandler) ListAll(c echo.Context) error {
	articles, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewArticleResponses(articles))
}

// GetBySlug handles the public article read. Drafts are indistinguishable
// from missing articles.
func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	article, err := h.uc.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewArticleResponse(article))
}

// ShareQR handles rendering the share QR code for a published article.
func (h *ArticleHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create handles creating a new article.
func (h *ArticleHandler) Create(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid article input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), &usecase.CreateArticleInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Body:          req.Body,
		CoverImageKey: req.CoverImage,
		Status:        entity.ArticleStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewArticleResponse(article))
}

// Update handles updating an article addressed by its current slug.
func (h *ArticleHandler) Update(c echo.Context) error {
	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid article input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateArticleInput{
		Slug:          c.Param("slug"),
		Title:         req.Title,
		NewSlug:       req.Slug,
		Summary:       req.Summary,
		Body:          req.Body,
		CoverImageKey: req.CoverImage,
	}
	if req.Status != nil {
		status := entity.ArticleStatus(*req.Status)
		input.Status = &status
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewArticleResponse(article))
}

// Delete handles deleting an article.
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteArticle(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Article deleted successfully")
}
