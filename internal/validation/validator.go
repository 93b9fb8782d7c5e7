package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"

	"github.com/go-playground/validator/v10"
)

// Buddhist Era years accepted from clients. CE years such as 2024 fall
// below the range and are rejected.
const (
	MinYearBE = 2400
	MaxYearBE = 2800
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator instance with the ledger rules registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("thai_month", validateThaiMonth)
	_ = v.RegisterValidation("be_year", validateBEYear)
	_ = v.RegisterValidation("bp_reading", validateReading)
	_ = v.RegisterValidation("txn_kind", validateTransactionKind)
	_ = v.RegisterValidation("sort_order", validateSortOrder)

	v.RegisterCustomTypeFunc(flexibleValue, dto.FlexibleDate{}, dto.FlexibleAmount{})

	// Field names in messages follow the request: json for bodies, query for
	// query strings.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// flexibleValue exposes the wrapped value of the lenient dto types so that
// required, gte and friends see a time.Time or float64
func flexibleValue(field reflect.Value) interface{} {
	switch value := field.Interface().(type) {
	case dto.FlexibleDate:
		return value.Time
	case dto.FlexibleAmount:
		return value.InexactFloat64()
	}
	return nil
}

// Custom validation functions

// validateThaiMonth accepts Thai month names and English month names
func validateThaiMonth(fl validator.FieldLevel) bool {
	_, err := calendar.ParseMonth(fl.Field().String())
	return err == nil
}

func validateBEYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinYearBE && year <= MaxYearBE
}

// validateReading checks the "SYS/DIA Ppulse" shape of a blood pressure reading
func validateReading(fl validator.FieldLevel) bool {
	_, err := models.ParseReading(fl.Field().String())
	return err == nil
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.IsValidTransactionKind(fl.Field().String())
}

func validateSortOrder(fl validator.FieldLevel) bool {
	return models.SortOrder(fl.Field().String()).IsValid()
}

// Details turns validation errors into "field: reason" lines. Other errors
// are returned as a single line.
func Details(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), FieldMessage(fe)))
	}
	return details
}

// FieldMessage converts a validator.FieldError to a human-readable message
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "thai_month":
		return "must be a Thai or English month name"
	case "be_year":
		return fmt.Sprintf("must be a Buddhist Era year between %d and %d", MinYearBE, MaxYearBE)
	case "bp_reading":
		return "must look like 120/80 P72"
	case "txn_kind":
		return "must be cash or credit"
	case "sort_order":
		return "must be asc or desc"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in " + fe.Param() + " form"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
