package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferingHandler holds dependencies for service offering handlers.
type OfferingHandler struct {
	uc     usecase.OfferingUsecase
	logger *slog.Logger
}

// NewOfferingHandler is the constructor for OfferingHandler, injected by Fx.
func NewOfferingHandler(uc usecase.OfferingUsecase, logger *slog.Logger) *OfferingHandler {
	return &OfferingHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOfferingRequest is the request body for creating an offering.
type CreateOfferingRequest struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents" validate:"min=0"`
	Currency    string `json:"currency" validate:"omitempty,len=3"`
	IsActive    bool   `json:"isActive"`
}

// UpdateOfferingRequest is the request body for updating an offering. The
// current slug rides in the path; a non-nil slug field renames it.
type UpdateOfferingRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"priceCents,omitempty" validate:"omitempty,min=0"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListActive handles the public offering listing.
func (h *OfferingHandler) ListActive(c echo.Context) error {
	offerings, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferingResponses(offerings))
}

// ListAll handles the management listing, inactive offerings included.
func (h *OfferingHandler) ListAll(c echo.Context) error {
	offerings, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferingResponses(offerings))
}

// GetBySlug handles the public offering read. Inactive offerings are
// indistinguishable from missing ones.
func (h *OfferingHandler) GetBySlug(c echo.Context) error {
	offering, err := h.uc.GetActiveBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferingResponse(offering))
}

// Create handles creating a new offering.
func (h *OfferingHandler) Create(c echo.Context) error {
	var req CreateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offering input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.CreateOffering(c.Request().Context(), &usecase.CreateOfferingInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewOfferingResponse(offering))
}

// Update handles updating an offering addressed by its current slug.
func (h *OfferingHandler) Update(c echo.Context) error {
	var req UpdateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offering input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.UpdateOffering(c.Request().Context(), &usecase.UpdateOfferingInput{
		Slug:        c.Param("slug"),
		Title:       req.Title,
		NewSlug:     req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferingResponse(offering))
}

// Delete handles deleting an offering.
func (h *OfferingHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteOffering(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Offering deleted successfully")
}
