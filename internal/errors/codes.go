package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_006"
	ValidationInvalidYear   ErrorCode = "VALIDATION_007"
	ValidationInvalidID     ErrorCode = "VALIDATION_008"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind      ErrorCode = "TRANSACTION_003"
	TransactionConflictingFlags ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Named period error codes (PERIOD_*)
const (
	PeriodNotFound     ErrorCode = "PERIOD_001"
	PeriodInvalidRange ErrorCode = "PERIOD_002"
	PeriodInvalidYear  ErrorCode = "PERIOD_003"
)

// Report error codes (REPORT_*)
const (
	ReportPeriodNotDefined         ErrorCode = "REPORT_001"
	ReportAnnualPeriodsUnavailable ErrorCode = "REPORT_002"
	ReportInvalidMonth             ErrorCode = "REPORT_003"
	ReportInvalidDateRange         ErrorCode = "REPORT_004"
)

// Blood pressure error codes (READING_*)
const (
	ReadingNotFound      ErrorCode = "READING_001"
	ReadingInvalidFormat ErrorCode = "READING_002"
	ReadingMissing       ErrorCode = "READING_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDataSourceError    ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidMonth:  "Invalid month",
	ValidationInvalidYear:   "Invalid Buddhist Era year",
	ValidationInvalidID:     "Invalid ID format",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Amount must not be negative",
	TransactionInvalidKind:      "Transaction kind must be cash or credit",
	TransactionConflictingFlags: "Cash entries cannot be cashback and credit entries cannot be income",
	TransactionValidationFailed: "Transaction validation failed",

	// Named period errors
	PeriodNotFound:     "Named period not found",
	PeriodInvalidRange: "Period start date must not be after its end date",
	PeriodInvalidYear:  "Period year is invalid",

	// Report errors
	ReportPeriodNotDefined:         "No period has been defined for the selected month",
	ReportAnnualPeriodsUnavailable: "No periods have been defined for the selected year",
	ReportInvalidMonth:             "Unknown month name",
	ReportInvalidDateRange:         "Start date must not be after end date",

	// Blood pressure errors
	ReadingNotFound:      "Blood pressure record not found",
	ReadingInvalidFormat: "Readings must look like 120/80 P72",
	ReadingMissing:       "At least one reading is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDataSourceError:    "Data source is unavailable. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
