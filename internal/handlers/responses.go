package handlers

import (
	"log/slog"
	"net/http"

	"household-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and domain errors),
// SendDataSourceError (store failures, 503) and SendSystemError (anything
// else, 500). Recoverable report conditions are not errors: they are sent as
// a 200 SuccessResponse carrying a warning Notice.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	NoticeWarning = "warning"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Notice  *Notice     `json:"notice,omitempty"`
}

// Notice is a non-fatal condition shown to the user next to the data
type Notice struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// warningNotice builds a warning for a recoverable report condition
func warningNotice(code errors.ErrorCode) *Notice {
	return &Notice{
		Level:   NoticeWarning,
		Code:    string(code),
		Message: errors.GetErrorMessage(code),
	}
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("internal error", "trace_id", traceID, "error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDataSourceError reports a store failure as 503 without exposing its cause
func SendDataSourceError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapDataSourceError(err, traceID)
	slog.Error("data source error", "trace_id", traceID, "error", internalErr)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}
