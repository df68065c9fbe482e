package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports process and database health.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Liveness is a simple handler to check if the service is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Database reports whether Postgres answers a ping.
func (h *HealthHandler) Database(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		h.logger.Error("Failed to obtain database handle", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "Database unreachable")
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		h.logger.Error("Database ping failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "Database unreachable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}
