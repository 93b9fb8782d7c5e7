package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/repositories"
)

const (
	defaultSeedPerMonth    = 20
	defaultSeedReadingDays = 30
	defaultCreditPerMonth  = 12
)

// SeedResult reports how many records a seed run wrote
type SeedResult struct {
	YearBE               int `json:"yearBE"`
	NamedPeriods         int `json:"namedPeriods"`
	CashTransactions     int `json:"cashTransactions"`
	CreditTransactions   int `json:"creditTransactions"`
	BloodPressureRecords int `json:"bloodPressureRecords"`
}

// GeneratorFactory builds a generator for one seed run
type GeneratorFactory func(seed int64) LedgerGeneratorInterface

type demoDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	periodRepo      repositories.NamedPeriodRepositoryInterface
	recordRepo      repositories.BloodPressureRepositoryInterface
	newGenerator    GeneratorFactory
	metrics         MetricsRecorderInterface
	loc             *time.Location
	now             func() time.Time
}

func NewDemoDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	periodRepo repositories.NamedPeriodRepositoryInterface,
	recordRepo repositories.BloodPressureRepositoryInterface,
	newGenerator GeneratorFactory,
	metrics MetricsRecorderInterface,
	loc *time.Location,
) DemoDataServiceInterface {
	if loc == nil {
		loc = time.Local
	}
	if newGenerator == nil {
		newGenerator = func(seed int64) LedgerGeneratorInterface {
			return NewLedgerGenerator(seed, loc)
		}
	}
	return &demoDataService{
		transactionRepo: transactionRepo,
		periodRepo:      periodRepo,
		recordRepo:      recordRepo,
		newGenerator:    newGenerator,
		metrics:         metrics,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *demoDataService) Seed(ctx context.Context, req *dto.SeedRequest) (*SeedResult, error) {
	now := s.now().In(s.loc)
	yearBE := req.YearBE
	if yearBE == 0 {
		yearBE = calendar.CurrentYearBE(now)
	}
	yearCE := calendar.ToCE(yearBE)
	cashPerMonth := orDefault(req.CashPerMonth, defaultSeedPerMonth)
	creditPerMonth := orDefault(req.CreditPerMonth, defaultCreditPerMonth)
	readingDays := orDefault(req.BloodPressureDays, defaultSeedReadingDays)

	gen := s.newGenerator(req.Seed)
	result := &SeedResult{YearBE: yearBE}

	if !req.SkipNamedPeriods {
		for _, period := range gen.GenerateNamedPeriods(yearCE) {
			if err := s.periodRepo.Create(ctx, &period); err != nil {
				return nil, fmt.Errorf("failed to seed named periods: %w", err)
			}
			result.NamedPeriods++
		}
	}

	cash := gen.GenerateCashTransactions(yearCE, cashPerMonth)
	if err := s.transactionRepo.CreateBatch(ctx, cash); err != nil {
		return nil, fmt.Errorf("failed to seed cash transactions: %w", err)
	}
	result.CashTransactions = len(cash)

	credit := gen.GenerateCreditTransactions(yearCE, creditPerMonth)
	if err := s.transactionRepo.CreateBatch(ctx, credit); err != nil {
		return nil, fmt.Errorf("failed to seed credit transactions: %w", err)
	}
	result.CreditTransactions = len(credit)

	start := calendar.StartOfDay(now).AddDate(0, 0, -(readingDays - 1))
	for _, record := range gen.GenerateBloodPressureRecords(start, readingDays) {
		if err := s.recordRepo.Create(ctx, &record); err != nil {
			return nil, fmt.Errorf("failed to seed blood pressure records: %w", err)
		}
		result.BloodPressureRecords++
	}

	s.metrics.RecordGauge("seed.records", float64(result.NamedPeriods), map[string]string{"kind": "named_period"})
	s.metrics.RecordGauge("seed.records", float64(result.CashTransactions), map[string]string{"kind": "cash"})
	s.metrics.RecordGauge("seed.records", float64(result.CreditTransactions), map[string]string{"kind": "credit"})
	s.metrics.RecordGauge("seed.records", float64(result.BloodPressureRecords), map[string]string{"kind": "blood_pressure"})

	slog.InfoContext(ctx, "demo data seeded",
		"request_id", getRequestID(ctx),
		"year_be", result.YearBE,
		"named_periods", result.NamedPeriods,
		"cash", result.CashTransactions,
		"credit", result.CreditTransactions,
		"blood_pressure", result.BloodPressureRecords)

	return result, nil
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
