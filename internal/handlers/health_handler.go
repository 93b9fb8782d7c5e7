package handlers

import (
	"context"
	"net/http"
	"time"

	"household-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	location *time.Location
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, location *time.Location) *HealthCheckHandler {
	if location == nil {
		location = time.UTC
	}
	return &HealthCheckHandler{db: db, location: location}
}

// HealthCheck reports API and store connectivity
//
// Method: GET /health
//
// Success Response: 200 with status, time and the reporting timezone
//
// Error Responses:
//   - 503: SYSTEM_003 when the store cannot be reached
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"time":     time.Now().In(h.location).Format(time.RFC3339),
		"timezone": h.location.String(),
	})
}
