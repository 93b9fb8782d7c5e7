package handlers

import (
	"net/http"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// BloodPressureHandler handles daily blood pressure records
type BloodPressureHandler struct {
	recordService   services.BloodPressureServiceInterface
	calendarService services.CalendarServiceInterface
}

// NewBloodPressureHandler creates a new blood pressure handler
func NewBloodPressureHandler(
	recordService services.BloodPressureServiceInterface,
	calendarService services.CalendarServiceInterface,
) *BloodPressureHandler {
	return &BloodPressureHandler{
		recordService:   recordService,
		calendarService: calendarService,
	}
}

// ListRecords returns a page of records, newest first
//
// Method: GET /api/v1/blood-pressure
func (h *BloodPressureHandler) ListRecords(c echo.Context) error {
	page := getPagination(c)
	records, total, err := h.recordService.ListRecords(c.Request().Context(), page)
	if err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}

	return c.JSON(http.StatusOK, dto.ListBloodPressureResponse{
		Records:    records,
		Pagination: paginationMeta(page, total),
	})
}

// Report lists the records of a date range, oldest first, with the number
// of days that had a high reading
//
// Method: GET /api/v1/blood-pressure/report
//
// Query parameters:
//   - startDate, endDate: YYYY-MM-DD (required)
func (h *BloodPressureHandler) Report(c echo.Context) error {
	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	start, end, err := parseRange(query, h.calendarService.Location())
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	report, err := h.recordService.RangeReport(c.Request().Context(), start, end)
	if err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// GetRecord returns a single day of readings
//
// Method: GET /api/v1/blood-pressure/:id
func (h *BloodPressureHandler) GetRecord(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	record, err := h.recordService.GetRecord(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: record})
}

// CreateRecord stores a day of readings
//
// Method: POST /api/v1/blood-pressure
//
// Body: dto.BloodPressureRequest. At least one reading is required.
//
// Success Response: 201 Created
func (h *BloodPressureHandler) CreateRecord(c echo.Context) error {
	var req dto.BloodPressureRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ReadingInvalidFormat, errors.WithDetails(validationDetails(err)...))
	}

	record, err := h.recordService.CreateRecord(c.Request().Context(), &req)
	if err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: record, Message: "Record created"})
}

// UpdateRecord replaces a day of readings
//
// Method: PUT /api/v1/blood-pressure/:id
func (h *BloodPressureHandler) UpdateRecord(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.BloodPressureRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ReadingInvalidFormat, errors.WithDetails(validationDetails(err)...))
	}

	record, err := h.recordService.UpdateRecord(c.Request().Context(), id, &req)
	if err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: record, Message: "Record updated"})
}

// DeleteRecord removes a day of readings
//
// Method: DELETE /api/v1/blood-pressure/:id
func (h *BloodPressureHandler) DeleteRecord(c echo.Context) error {
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.recordService.DeleteRecord(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err, errors.ReadingNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
