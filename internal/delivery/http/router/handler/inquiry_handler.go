package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InquiryHandler holds dependencies for contact inquiry handlers.
type InquiryHandler struct {
	uc     usecase.InquiryUsecase
	logger *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler, injected by Fx.
func NewInquiryHandler(uc usecase.InquiryUsecase, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitInquiryRequest is the request body of the public contact form.
type SubmitInquiryRequest struct {
	Name         string `json:"name" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Subject      string `json:"subject" validate:"required"`
	Body         string `json:"body" validate:"required"`
}

// Submit handles a public contact form submission.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid inquiry input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	inquiry, err := h.uc.SubmitInquiry(c.Request().Context(), &usecase.SubmitInquiryInput{
		Name:    req.Name,
		Email:   req.EmailAddress,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewInquiryResponse(inquiry))
}

// List handles retrieving every inquiry, newest first.
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.uc.ListInquiries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewInquiryResponses(inquiries))
}

// MarkHandled handles flagging an inquiry as dealt with.
func (h *InquiryHandler) MarkHandled(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry ID")
	}

	if err := h.uc.MarkHandled(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Inquiry marked as handled")
}
