package services

import (
	"context"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"

	"github.com/google/uuid"
)

// PeriodServiceInterface resolves user-defined named periods and manages the registry
type PeriodServiceInterface interface {
	// ResolvePeriod returns the range of the named period for (month, yearCE).
	// It never falls back to calendar month edges.
	ResolvePeriod(ctx context.Context, month calendar.Month, yearCE int) (calendar.DateRange, error)

	// ResolveAnnualPeriods returns the periods of yearCE in January..December order.
	// Months without a period are omitted; an empty registry yields an empty slice.
	ResolveAnnualPeriods(ctx context.Context, yearCE int) ([]models.ResolvedPeriod, error)

	ListPeriods(ctx context.Context) ([]models.NamedPeriod, error)
	GetPeriod(ctx context.Context, id uuid.UUID) (*models.NamedPeriod, error)
	CreatePeriod(ctx context.Context, req *dto.NamedPeriodRequest) (*models.NamedPeriod, error)
	UpdatePeriod(ctx context.Context, id uuid.UUID, req *dto.NamedPeriodRequest) (*models.NamedPeriod, error)
	DeletePeriod(ctx context.Context, id uuid.UUID) error
}

// TransactionServiceInterface filters and maintains cash and credit entries
type TransactionServiceInterface interface {
	// FilterByRange returns entries inside the inclusive range, end extended
	// to the end of its day, sorted by date in the requested order.
	FilterByRange(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)

	// UniqueDetails returns the distinct trimmed non-empty details, sorted.
	UniqueDetails(ctx context.Context, kind models.TransactionKind) ([]string, error)

	GetTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, kind models.TransactionKind, page models.Pagination) ([]models.Transaction, int64, error)
	CreateTransaction(ctx context.Context, kind models.TransactionKind, req *dto.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID) error
}

// ReportServiceInterface builds monthly, annual and date-range reports.
// Years are given in the Buddhist Era.
type ReportServiceInterface interface {
	CashMonthly(ctx context.Context, month calendar.Month, yearBE int, detail string) (*models.CashMonthlyReport, error)
	CreditMonthly(ctx context.Context, month calendar.Month, yearBE int, detail string) (*models.CreditMonthlyReport, error)
	CashAnnual(ctx context.Context, yearBE int, detail string) (*models.CashAnnualReport, error)
	CreditAnnual(ctx context.Context, yearBE int, detail string) (*models.CreditAnnualReport, error)

	// CashMonthDetail drills into an annual report row identified by its month name.
	CashMonthDetail(ctx context.Context, monthName string, yearBE int, detail string) (*models.CashMonthlyReport, error)

	DateRange(ctx context.Context, start, end time.Time, detail string) (*models.DateRangeReport, error)

	// Breakdown summarizes each period concurrently, preserving period order.
	Breakdown(ctx context.Context, kind models.TransactionKind, periods []models.ResolvedPeriod, detail string) ([]models.MonthlySummary, error)
}

// BloodPressureServiceInterface maintains daily blood pressure readings
type BloodPressureServiceInterface interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*models.BloodPressureRecord, error)
	ListRecords(ctx context.Context, page models.Pagination) ([]models.BloodPressureRecord, int64, error)
	CreateRecord(ctx context.Context, req *dto.BloodPressureRequest) (*models.BloodPressureRecord, error)
	UpdateRecord(ctx context.Context, id uuid.UUID, req *dto.BloodPressureRequest) (*models.BloodPressureRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error

	// RangeReport lists records between two calendar days, oldest first.
	RangeReport(ctx context.Context, start, end time.Time) (*models.BloodPressureReport, error)
}

// CalendarServiceInterface exposes era conversion and billing cycle previews
type CalendarServiceInterface interface {
	CurrentYearBE() int
	DefaultYearCount() int
	YearRange(n int) []int
	BillingCycle(month calendar.Month, yearBE int) calendar.DateRange
	BillingYear(yearBE int) calendar.DateRange
	Location() *time.Location
}

// DemoDataServiceInterface fills the store with generated household data
type DemoDataServiceInterface interface {
	Seed(ctx context.Context, req *dto.SeedRequest) (*SeedResult, error)
}

// LedgerGeneratorInterface generates realistic household records for a year
type LedgerGeneratorInterface interface {
	GenerateNamedPeriods(yearCE int) []models.NamedPeriod
	GenerateCashTransactions(yearCE, perMonth int) []models.Transaction
	GenerateCreditTransactions(yearCE, perMonth int) []models.Transaction
	GenerateBloodPressureRecords(start time.Time, days int) []models.BloodPressureRecord
}

// ReportLoggerInterface writes structured events for report and registry operations
type ReportLoggerInterface interface {
	LogReportGenerated(ctx context.Context, report string, yearBE int, rows int, duration time.Duration)
	LogPeriodNotFound(ctx context.Context, month calendar.Month, yearCE int)
	LogAnnualPeriodsUnavailable(ctx context.Context, yearCE int)
	LogDuplicatePeriod(ctx context.Context, month calendar.Month, yearCE int, existing int64)
	LogDataSourceFailure(ctx context.Context, operation string, err error)
	LogEntityChanged(ctx context.Context, action, entity string, id uuid.UUID)
	LogHighReading(ctx context.Context, id uuid.UUID, date time.Time)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
