package models

import (
	"household-ledger/internal/calendar"

	"github.com/shopspring/decimal"
)

// NoMonth marks an extremum taken over an empty breakdown.
const NoMonth = "-"

// CashTotals sums a set of cash entries. Balance is TotalIncome - TotalExpense.
type CashTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CreditTotals sums a set of credit entries. NetExpense is TotalExpense - TotalCashback.
type CreditTotals struct {
	TotalExpense  decimal.Decimal `json:"total_expense"`
	TotalCashback decimal.Decimal `json:"total_cashback"`
	NetExpense    decimal.Decimal `json:"net_expense"`
}

// MonthlySummary is one row of an annual breakdown. Cash rows use Income,
// credit rows use Cashback, and Balance follows the kind's rule.
type MonthlySummary struct {
	Month        calendar.Month     `json:"month"`
	Range        calendar.DateRange `json:"range"`
	Income       decimal.Decimal    `json:"income"`
	Expense      decimal.Decimal    `json:"expense"`
	Cashback     decimal.Decimal    `json:"cashback"`
	Balance      decimal.Decimal    `json:"balance"`
	Transactions []Transaction      `json:"transactions,omitempty"`
}

type Extremum struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type Extrema struct {
	MaxIncome  Extremum `json:"max_income"`
	MaxExpense Extremum `json:"max_expense"`
	MinIncome  Extremum `json:"min_income"`
	MinExpense Extremum `json:"min_expense"`
}

// EmptyExtrema is the result for a breakdown with no rows.
func EmptyExtrema() Extrema {
	empty := Extremum{Month: NoMonth, Amount: decimal.Zero}
	return Extrema{MaxIncome: empty, MaxExpense: empty, MinIncome: empty, MinExpense: empty}
}

// CashMonthlyReport covers one named period.
type CashMonthlyReport struct {
	Month        calendar.Month      `json:"month"`
	YearBE       int                 `json:"year_be"`
	Detail       string              `json:"detail,omitempty"`
	Range        *calendar.DateRange `json:"range,omitempty"`
	Transactions []Transaction       `json:"transactions"`
	Totals       CashTotals          `json:"totals"`
}

// CreditMonthlyReport covers one billing cycle.
type CreditMonthlyReport struct {
	Month        calendar.Month     `json:"month"`
	YearBE       int                `json:"year_be"`
	Detail       string             `json:"detail,omitempty"`
	Range        calendar.DateRange `json:"range"`
	Transactions []Transaction      `json:"transactions"`
	Totals       CreditTotals       `json:"totals"`
}

type CashAnnualReport struct {
	YearBE  int              `json:"year_be"`
	Detail  string           `json:"detail,omitempty"`
	Months  []MonthlySummary `json:"months"`
	Totals  CashTotals       `json:"totals"`
	Extrema Extrema          `json:"extrema"`
}

type CreditAnnualReport struct {
	YearBE int                `json:"year_be"`
	Detail string             `json:"detail,omitempty"`
	Range  calendar.DateRange `json:"range"`
	Months []MonthlySummary   `json:"months"`
	Totals CreditTotals       `json:"totals"`
}

// DateRangeReport is a cash report over an arbitrary inclusive range.
type DateRangeReport struct {
	Range        calendar.DateRange `json:"range"`
	Detail       string             `json:"detail,omitempty"`
	Transactions []Transaction      `json:"transactions"`
	Totals       CashTotals         `json:"totals"`
}

// BloodPressureReport lists a range of daily records for printing.
type BloodPressureReport struct {
	Range       calendar.DateRange    `json:"range"`
	Records     []BloodPressureRecord `json:"records"`
	HighReading int                   `json:"high_reading_days"`
}
