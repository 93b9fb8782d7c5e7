package handlers

import (
	"net/http"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// The server registers it only when the environment is development.
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{demoDataService: demoDataService}
}

// Seed fills the store with a year of generated household data
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Body (optional): dto.SeedRequest
//   - yearBE: year to generate (default: current year)
//   - cashPerMonth, creditPerMonth: entries per month
//   - bloodPressureDays: days of readings ending today
//   - seed: fixed random seed for reproducible data
//   - skipNamedPeriods: keep the existing period registry
//
// Success Response: 201 Created with the number of records written
//
// Error Responses:
//   - 400: Invalid parameters
//   - 503: Data source unavailable
func (h *DevHandler) Seed(c echo.Context) error {
	var req dto.SeedRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	result, err := h.demoDataService.Seed(c.Request().Context(), &req)
	if err != nil {
		return handleServiceError(c, err, errors.SystemInternalError)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    result,
		Message: "Demo data generated",
	})
}
