package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account management and self-service
// profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAccountRequest is the request body for provisioning an account.
type CreateAccountRequest struct {
	Username     string `json:"username" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	AccountRole  string `json:"accountRole" validate:"omitempty,oneof=admin user"`
}

// SetActiveRequest is the request body for flipping an account's active flag.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// UpdateProfileRequest is the request body for self-service profile changes.
// Omitted fields keep their current value.
type UpdateProfileRequest struct {
	Username     *string `json:"username,omitempty"`
	EmailAddress *string `json:"emailAddress,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// ChangePasswordRequest is the request body for a self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// CreateAccount handles provisioning a new account.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Username: req.Username,
		Email:    req.EmailAddress,
		Password: req.Password,
		Role:     entity.Role(req.AccountRole),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewAccountDetailResponse(account))
}

// ListAccounts handles retrieving every account.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewAccountDetailResponses(accounts))
}

// GetAccount handles retrieving a single account by ID.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewAccountDetailResponse(account))
}

// SetActive handles activating or deactivating an account.
func (h *AccountHandler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid active flag input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.SetActive(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewAccountDetailResponse(account))
}

// GetProfile handles retrieving the authenticated account's own record.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "Missing authenticated principal")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), principal.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewAccountDetailResponse(account))
}

// UpdateProfile handles self-service profile changes.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "Missing authenticated principal")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		AccountID:       principal.AccountID,
		Username:        req.Username,
		Email:           req.EmailAddress,
		ProfileImageKey: req.ProfileImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewAccountDetailResponse(account))
}

// ChangePassword handles a self-service password change. A successful change
// ends every session of the account, so the client must log in again.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "Missing authenticated principal")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		AccountID:       principal.AccountID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	clearAccessTokenCookie(c)

	return response.Message(c, http.StatusOK, "Password changed successfully")
}
