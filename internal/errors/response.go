package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON envelope of every failed API call
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the catalogue message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code. Options apply in order.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationErrorFromList builds a VALIDATION_001 envelope with one
// "field: reason" line per failure
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back for
// server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDataSourceError hides a store failure behind SYSTEM_002
func WrapDataSourceError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDataSourceError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	ValidationInvalidMonth:  http.StatusBadRequest,
	ValidationInvalidYear:   http.StatusBadRequest,
	ValidationInvalidID:     http.StatusBadRequest,

	TransactionNotFound:         http.StatusNotFound,
	TransactionInvalidAmount:    http.StatusBadRequest,
	TransactionInvalidKind:      http.StatusBadRequest,
	TransactionConflictingFlags: http.StatusUnprocessableEntity,
	TransactionValidationFailed: http.StatusUnprocessableEntity,

	PeriodNotFound:     http.StatusNotFound,
	PeriodInvalidRange: http.StatusUnprocessableEntity,
	PeriodInvalidYear:  http.StatusUnprocessableEntity,

	// empty reports are still successful responses
	ReportPeriodNotDefined:         http.StatusOK,
	ReportAnnualPeriodsUnavailable: http.StatusOK,
	ReportInvalidMonth:             http.StatusBadRequest,
	ReportInvalidDateRange:         http.StatusBadRequest,

	ReadingNotFound:      http.StatusNotFound,
	ReadingInvalidFormat: http.StatusBadRequest,
	ReadingMissing:       http.StatusUnprocessableEntity,

	SystemInternalError:      http.StatusInternalServerError,
	SystemDataSourceError:    http.StatusServiceUnavailable,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemConfigurationError: http.StatusInternalServerError,
	SystemUnexpectedError:    http.StatusInternalServerError,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
}

// GetHTTPStatus maps a code to its HTTP status. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
