package dto

// NamedPeriodRequest is the body for creating or updating a named period.
// YearBE is a Buddhist Era year; Month accepts a Thai or English month name.
type NamedPeriodRequest struct {
	YearBE    int          `json:"yearBE" validate:"required,be_year"`
	Month     string       `json:"month" validate:"required,thai_month"`
	StartDate FlexibleDate `json:"startDate" validate:"required"`
	EndDate   FlexibleDate `json:"endDate" validate:"required"`
}
