package dto

import (
	"household-ledger/internal/calendar"
)

// MonthlyReportQuery selects one month of a BE year. Month is zero-based.
type MonthlyReportQuery struct {
	Month  *int   `query:"month" validate:"required,min=0,max=11"`
	YearBE int    `query:"yearBE" validate:"required,be_year"`
	Detail string `query:"detail" validate:"max=255"`
}

// AnnualReportQuery selects a BE year.
type AnnualReportQuery struct {
	YearBE int    `query:"yearBE" validate:"required,be_year"`
	Detail string `query:"detail" validate:"max=255"`
}

// MonthDetailQuery identifies an annual report row by its month name.
type MonthDetailQuery struct {
	Month  string `query:"month" validate:"required"`
	YearBE int    `query:"yearBE" validate:"required,be_year"`
	Detail string `query:"detail" validate:"max=255"`
}

// DateRangeQuery selects an inclusive range of calendar days.
type DateRangeQuery struct {
	StartDate string `query:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"required,datetime=2006-01-02"`
	Detail    string `query:"detail" validate:"max=255"`
	Order     string `query:"order" validate:"omitempty,sort_order"`
}

// BillingCycleQuery previews the statement window of a month.
type BillingCycleQuery struct {
	Month  *int `query:"month" validate:"required,min=0,max=11"`
	YearBE int  `query:"yearBE" validate:"required,be_year"`
}

// ResolvePeriodQuery looks up the named period of a month.
type ResolvePeriodQuery struct {
	Month  string `query:"month" validate:"required,thai_month"`
	YearBE int    `query:"yearBE" validate:"required,be_year"`
}

// MonthOption is one entry of the month picker
type MonthOption struct {
	Index    int            `json:"index"`
	Month    calendar.Month `json:"month"`
	Name     string         `json:"name"`
	ThaiName string         `json:"thaiName"`
}

// YearRangeResponse lists selectable BE years, newest first
type YearRangeResponse struct {
	CurrentYearBE int   `json:"currentYearBE"`
	Years         []int `json:"years"`
}

// BillingCycleResponse previews a credit-card statement window
type BillingCycleResponse struct {
	Month  calendar.Month     `json:"month"`
	YearBE int                `json:"yearBE"`
	YearCE int                `json:"yearCE"`
	Range  calendar.DateRange `json:"range"`
}

// SeedRequest controls demo data generation
type SeedRequest struct {
	YearBE            int   `json:"yearBE" validate:"omitempty,be_year"`
	CashPerMonth      int   `json:"cashPerMonth" validate:"omitempty,min=1,max=200"`
	CreditPerMonth    int   `json:"creditPerMonth" validate:"omitempty,min=1,max=200"`
	BloodPressureDays int   `json:"bloodPressureDays" validate:"omitempty,min=1,max=366"`
	Seed              int64 `json:"seed,omitempty"`
	SkipNamedPeriods  bool  `json:"skipNamedPeriods,omitempty"`
}
