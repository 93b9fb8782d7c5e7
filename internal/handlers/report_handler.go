package handlers

import (
	stderrors "errors"
	"net/http"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves monthly, annual and date-range reports.
//
// A missing named period is not an error for the caller: the handler
// responds 200 with an empty report and a warning notice.
type ReportHandler struct {
	reportService   services.ReportServiceInterface
	calendarService services.CalendarServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService services.ReportServiceInterface,
	calendarService services.CalendarServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		calendarService: calendarService,
	}
}

// reportResponse sends a report, turning recoverable lookup failures into notices
func reportResponse(c echo.Context, report interface{}, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, SuccessResponse{Data: report})
	case stderrors.Is(err, services.ErrPeriodNotFound):
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:   report,
			Notice: warningNotice(errors.ReportPeriodNotDefined),
		})
	case stderrors.Is(err, services.ErrAnnualPeriodsUnavailable):
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:   report,
			Notice: warningNotice(errors.ReportAnnualPeriodsUnavailable),
		})
	default:
		return handleServiceError(c, err, errors.ReportPeriodNotDefined)
	}
}

// bindMonthly reads a monthly query. When ok is false the error response
// has already been written and err is its result.
func (h *ReportHandler) bindMonthly(c echo.Context) (month calendar.Month, query dto.MonthlyReportQuery, ok bool, err error) {
	if err := c.Bind(&query); err != nil {
		return 0, query, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return 0, query, false, SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}
	month, err = calendar.MonthFromIndex(*query.Month)
	if err != nil {
		return 0, query, false, SendError(c, errors.ValidationInvalidMonth)
	}
	return month, query, true, nil
}

func (h *ReportHandler) bindAnnual(c echo.Context) (dto.AnnualReportQuery, bool, error) {
	var query dto.AnnualReportQuery
	if err := c.Bind(&query); err != nil {
		return query, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return query, false, SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}
	return query, true, nil
}

// CashMonthly reports the cash entries of one named period
//
// Method: GET /api/v1/reports/cash/monthly
//
// Query parameters:
//   - month: zero-based month index (required)
//   - yearBE: Buddhist Era year (required)
//   - detail: category filter (optional)
//
// Success Response: 200 with the report, or an empty report and a
// REPORT_001 notice when the month has no named period.
func (h *ReportHandler) CashMonthly(c echo.Context) error {
	month, query, ok, err := h.bindMonthly(c)
	if !ok {
		return err
	}

	report, err := h.reportService.CashMonthly(c.Request().Context(), month, query.YearBE, query.Detail)
	return reportResponse(c, report, err)
}

// CreditMonthly reports the credit entries of one billing cycle
//
// Method: GET /api/v1/reports/credit/monthly
//
// The cycle for a month runs from the 13th of the previous month to the
// 12th of the month. Entries are sorted newest first.
func (h *ReportHandler) CreditMonthly(c echo.Context) error {
	month, query, ok, err := h.bindMonthly(c)
	if !ok {
		return err
	}

	report, err := h.reportService.CreditMonthly(c.Request().Context(), month, query.YearBE, query.Detail)
	return reportResponse(c, report, err)
}

// CashAnnual summarizes every named period of a year
//
// Method: GET /api/v1/reports/cash/annual
//
// Success Response: 200 with the report, or an empty report and a
// REPORT_002 notice when the year has no named periods.
func (h *ReportHandler) CashAnnual(c echo.Context) error {
	query, ok, err := h.bindAnnual(c)
	if !ok {
		return err
	}

	report, err := h.reportService.CashAnnual(c.Request().Context(), query.YearBE, query.Detail)
	return reportResponse(c, report, err)
}

// CreditAnnual summarizes the twelve billing cycles of a year
//
// Method: GET /api/v1/reports/credit/annual
func (h *ReportHandler) CreditAnnual(c echo.Context) error {
	query, ok, err := h.bindAnnual(c)
	if !ok {
		return err
	}

	report, err := h.reportService.CreditAnnual(c.Request().Context(), query.YearBE, query.Detail)
	return reportResponse(c, report, err)
}

// CashMonthDetail drills into one row of the annual cash report
//
// Method: GET /api/v1/reports/cash/annual/detail
//
// Query parameters:
//   - month: Thai or English month name (required)
//   - yearBE: Buddhist Era year (required)
//   - detail: category filter (optional)
//
// Error Responses:
//   - 400: REPORT_003 when the month name is unknown
func (h *ReportHandler) CashMonthDetail(c echo.Context) error {
	var query dto.MonthDetailQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	report, err := h.reportService.CashMonthDetail(c.Request().Context(), query.Month, query.YearBE, query.Detail)
	if stderrors.Is(err, calendar.ErrInvalidMonth) {
		return SendError(c, errors.ReportInvalidMonth, errors.WithDetails(query.Month))
	}
	return reportResponse(c, report, err)
}

// DateRange reports cash entries between two calendar days
//
// Method: GET /api/v1/reports/cash/range
//
// Query parameters:
//   - startDate, endDate: YYYY-MM-DD (required)
//   - detail: category filter (optional)
func (h *ReportHandler) DateRange(c echo.Context) error {
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

	report, err := h.reportService.DateRange(c.Request().Context(), start, end, query.Detail)
	return reportResponse(c, report, err)
}
