package handlers

import (
	stderrors "errors"
	"net/http"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// PeriodHandler manages the named period registry
type PeriodHandler struct {
	periodService services.PeriodServiceInterface
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService services.PeriodServiceInterface) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

// ResolvedPeriodResponse is the answer of a period lookup. Range is nil when
// the month has no named period.
type ResolvedPeriodResponse struct {
	Month  calendar.Month      `json:"month"`
	YearBE int                 `json:"yearBE"`
	Range  *calendar.DateRange `json:"range"`
}

// ListPeriods returns every named period, newest year first
//
// Method: GET /api/v1/periods
func (h *PeriodHandler) ListPeriods(c echo.Context) error {
	periods, err := h.periodService.ListPeriods(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}
	if periods == nil {
		periods = []models.NamedPeriod{}
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: periods})
}

// ResolvePeriod looks up the range of a month's named period
//
// Method: GET /api/v1/periods/resolve
//
// Query parameters:
//   - month: Thai or English month name (required)
//   - yearBE: Buddhist Era year (required)
//
// Success Response: 200. When no period is defined the range is null and a
// REPORT_001 notice is attached.
func (h *PeriodHandler) ResolvePeriod(c echo.Context) error {
	var query dto.ResolvePeriodQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	month, err := calendar.ParseMonth(query.Month)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails(query.Month))
	}

	resp := ResolvedPeriodResponse{Month: month, YearBE: query.YearBE}
	rng, err := h.periodService.ResolvePeriod(c.Request().Context(), month, calendar.ToCE(query.YearBE))
	if stderrors.Is(err, services.ErrPeriodNotFound) {
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:   resp,
			Notice: warningNotice(errors.ReportPeriodNotDefined),
		})
	}
	if err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}

	resp.Range = &rng
	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}

// GetPeriod returns a single named period
//
// Method: GET /api/v1/periods/:id
func (h *PeriodHandler) GetPeriod(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	period, err := h.periodService.GetPeriod(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: period})
}

// CreatePeriod defines a named period
//
// Method: POST /api/v1/periods
//
// Body: dto.NamedPeriodRequest
//
// A second period for the same month and year is accepted; reports keep
// using the earliest one.
//
// Success Response: 201 Created
func (h *PeriodHandler) CreatePeriod(c echo.Context) error {
	var req dto.NamedPeriodRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	period, err := h.periodService.CreatePeriod(c.Request().Context(), &req)
	if err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: period, Message: "Period created"})
}

// UpdatePeriod replaces a named period
//
// Method: PUT /api/v1/periods/:id
func (h *PeriodHandler) UpdatePeriod(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.NamedPeriodRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	period, err := h.periodService.UpdatePeriod(c.Request().Context(), id, &req)
	if err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: period, Message: "Period updated"})
}

// DeletePeriod removes a named period
//
// Method: DELETE /api/v1/periods/:id
func (h *PeriodHandler) DeletePeriod(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.periodService.DeletePeriod(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err, errors.PeriodNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
