package handlers

import (
	"net/http"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles cash and credit entry requests. The kind is
// taken from the :kind path parameter.
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	calendarService    services.CalendarServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	calendarService services.CalendarServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		calendarService:    calendarService,
	}
}

func getKindParam(c echo.Context) (models.TransactionKind, bool) {
	kind := models.TransactionKind(c.Param("kind"))
	return kind, kind.IsValid()
}

// ListTransactions returns a page of entries, newest first
//
// Method: GET /api/v1/transactions/:kind
//
// Query parameters:
//   - page: 1-based page number (default 1)
//   - limit: page size (default 20, max 100)
//
// Error Responses:
//   - 400: Unknown kind
//   - 503: Data source unavailable
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}

	page := getPagination(c)
	txs, total, err := h.transactionService.ListTransactions(c.Request().Context(), kind, page)
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: txs,
		Pagination:   paginationMeta(page, total),
	})
}

// FilterTransactions returns the entries of an inclusive date range
//
// Method: GET /api/v1/transactions/:kind/range
//
// Query parameters:
//   - startDate, endDate: YYYY-MM-DD (required)
//   - detail: exact category after trimming (optional)
//   - order: asc (default) or desc
func (h *TransactionHandler) FilterTransactions(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}

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

	txs, err := h.transactionService.FilterByRange(c.Request().Context(), models.TransactionFilters{
		Kind:   kind,
		Start:  start,
		End:    end,
		Detail: query.Detail,
		Order:  models.SortOrder(query.Order).OrDefault(models.SortAscending),
	})
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: txs})
}

// ListDetails returns the distinct categories used by a kind, sorted
//
// Method: GET /api/v1/transactions/:kind/details
func (h *TransactionHandler) ListDetails(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}

	details, err := h.transactionService.UniqueDetails(c.Request().Context(), kind)
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, dto.DetailsResponse{Kind: kind, Details: details})
}

// GetTransaction returns a single entry
//
// Method: GET /api/v1/transactions/:kind/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	tx, err := h.transactionService.GetTransaction(c.Request().Context(), kind, id)
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tx})
}

// CreateTransaction records a new entry
//
// Method: POST /api/v1/transactions/:kind
//
// Body: dto.TransactionRequest. Amounts may be numbers or numeric strings;
// anything unparseable is stored as 0.
//
// Success Response: 201 Created
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	tx, err := h.transactionService.CreateTransaction(c.Request().Context(), kind, &req)
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: tx, Message: "Transaction created"})
}

// UpdateTransaction replaces an entry's fields
//
// Method: PUT /api/v1/transactions/:kind/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request().Context(), kind, id, &req)
	if err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tx, Message: "Transaction updated"})
}

// DeleteTransaction removes an entry
//
// Method: DELETE /api/v1/transactions/:kind/:id
//
// Success Response: 204 No Content
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	kind, ok := getKindParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidKind)
	}
	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), kind, id); err != nil {
		return handleServiceError(c, err, errors.TransactionNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseRange reads the two dates of a range query as calendar days in loc
func parseRange(query dto.DateRangeQuery, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dto.DateLayout, query.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(dto.DateLayout, query.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
