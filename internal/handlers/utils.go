package handlers

import (
	stderrors "errors"
	"fmt"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPagination reads page and limit query parameters, clamping both
func getPagination(c echo.Context) models.Pagination {
	page := getIntParam(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return models.Pagination{Page: page, Limit: limit}
}

func paginationMeta(page models.Pagination, total int64) dto.PaginationMeta {
	return dto.PaginationMeta{Page: page.Page, Limit: page.Limit, Total: total}
}

// getIDParam parses the :id path parameter
func getIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps service and model errors to API error responses.
// Unknown errors become system errors.
func handleServiceError(c echo.Context, err error, notFound errors.ErrorCode) error {
	switch {
	case stderrors.Is(err, services.ErrNotFound):
		return SendError(c, notFound)
	case stderrors.Is(err, services.ErrDataSource):
		return SendDataSourceError(c, err)
	case stderrors.Is(err, calendar.ErrInvalidMonth):
		return SendError(c, errors.ValidationInvalidMonth, errors.WithDetails(err.Error()))
	case stderrors.Is(err, calendar.ErrInvalidDateRange):
		return SendError(c, errors.ReportInvalidDateRange)
	case stderrors.Is(err, models.ErrInvalidTransactionKind):
		return SendError(c, errors.TransactionInvalidKind)
	case stderrors.Is(err, models.ErrNegativeAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrConflictingFlags):
		return SendError(c, errors.TransactionConflictingFlags)
	case stderrors.Is(err, models.ErrMissingDate), stderrors.Is(err, models.ErrMissingDetails):
		return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidPeriodRange):
		return SendError(c, errors.PeriodInvalidRange)
	case stderrors.Is(err, models.ErrInvalidPeriodYear):
		return SendError(c, errors.PeriodInvalidYear)
	case stderrors.Is(err, models.ErrInvalidReading):
		return SendError(c, errors.ReadingInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrMissingReading):
		return SendError(c, errors.ReadingMissing)
	default:
		return SendSystemError(c, err)
	}
}
