package handlers

import (
	"net/http"
	"strconv"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// CalendarHandler serves the pickers and previews used by report forms
type CalendarHandler struct {
	calendarService services.CalendarServiceInterface
}

func NewCalendarHandler(calendarService services.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Months lists the twelve months with their Thai names
//
// Method: GET /api/v1/calendar/months
func (h *CalendarHandler) Months(c echo.Context) error {
	months := calendar.Months()
	options := make([]dto.MonthOption, len(months))
	for i, m := range months {
		options[i] = dto.MonthOption{
			Index:    m.Index(),
			Month:    m,
			Name:     m.String(),
			ThaiName: m.ThaiName(),
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: options})
}

// Years lists selectable BE years counting back from the current one
//
// Method: GET /api/v1/calendar/years?count=N
//
// Without count the configured number of years is returned. count <= 0
// yields an empty list.
func (h *CalendarHandler) Years(c echo.Context) error {
	count := h.calendarService.DefaultYearCount()
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("count: must be an integer"))
		}
		count = n
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.YearRangeResponse{
		CurrentYearBE: h.calendarService.CurrentYearBE(),
		Years:         h.calendarService.YearRange(count),
	}})
}

// BillingCycle previews the statement window of a month
//
// Method: GET /api/v1/calendar/billing-cycle?month=M&yearBE=Y
func (h *CalendarHandler) BillingCycle(c echo.Context) error {
	var query dto.BillingCycleQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	month, err := calendar.MonthFromIndex(*query.Month)
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.BillingCycleResponse{
		Month:  month,
		YearBE: query.YearBE,
		YearCE: calendar.ToCE(query.YearBE),
		Range:  h.calendarService.BillingCycle(month, query.YearBE),
	}})
}
