package services

import (
	"context"
	"errors"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	ReportCashMonthly   = "cash_monthly"
	ReportCreditMonthly = "credit_monthly"
	ReportCashAnnual    = "cash_annual"
	ReportCreditAnnual  = "credit_annual"
	ReportCashDrillDown = "cash_month_detail"
	ReportDateRange     = "date_range"
)

type reportService struct {
	periods      PeriodServiceInterface
	transactions TransactionServiceInterface
	logger       ReportLoggerInterface
	metrics      MetricsRecorderInterface
	loc          *time.Location
}

// NewReportService creates the report builder. Billing cycles and date
// ranges are computed in loc.
//
// Reports that fail with ErrPeriodNotFound or ErrAnnualPeriodsUnavailable
// still return an empty report alongside the error.
func NewReportService(
	periods PeriodServiceInterface,
	transactions TransactionServiceInterface,
	logger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	loc *time.Location,
) ReportServiceInterface {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{
		periods:      periods,
		transactions: transactions,
		logger:       logger,
		metrics:      metrics,
		loc:          loc,
	}
}

func (s *reportService) CashMonthly(ctx context.Context, month calendar.Month, yearBE int, detail string) (*models.CashMonthlyReport, error) {
	return s.cashMonthly(ctx, ReportCashMonthly, month, yearBE, detail)
}

func (s *reportService) cashMonthly(ctx context.Context, name string, month calendar.Month, yearBE int, detail string) (*models.CashMonthlyReport, error) {
	started := time.Now()
	report := &models.CashMonthlyReport{
		Month:        month,
		YearBE:       yearBE,
		Detail:       detail,
		Transactions: []models.Transaction{},
		Totals:       SummarizeCash(nil),
	}

	rng, err := s.periods.ResolvePeriod(ctx, month, calendar.ToCE(yearBE))
	if err != nil {
		s.finish(ctx, name, yearBE, 0, started, err)
		if errors.Is(err, ErrPeriodNotFound) {
			return report, err
		}
		return nil, err
	}
	report.Range = &rng

	txs, err := s.transactions.FilterByRange(ctx, models.TransactionFilters{
		Kind:   models.KindCash,
		Start:  rng.Start,
		End:    rng.End,
		Detail: detail,
		Order:  models.SortAscending,
	})
	if err != nil {
		s.finish(ctx, name, yearBE, 0, started, err)
		return nil, err
	}

	report.Transactions = txs
	report.Totals = SummarizeCash(txs)
	s.finish(ctx, name, yearBE, len(txs), started, nil)
	return report, nil
}

func (s *reportService) CreditMonthly(ctx context.Context, month calendar.Month, yearBE int, detail string) (*models.CreditMonthlyReport, error) {
	started := time.Now()
	if !month.IsValid() {
		return nil, calendar.ErrInvalidMonth
	}

	rng := calendar.BillingCycleIn(month, calendar.ToCE(yearBE), s.loc)
	txs, err := s.transactions.FilterByRange(ctx, models.TransactionFilters{
		Kind:   models.KindCredit,
		Start:  rng.Start,
		End:    rng.End,
		Detail: detail,
		Order:  models.SortDescending,
	})
	if err != nil {
		s.finish(ctx, ReportCreditMonthly, yearBE, 0, started, err)
		return nil, err
	}

	s.finish(ctx, ReportCreditMonthly, yearBE, len(txs), started, nil)
	return &models.CreditMonthlyReport{
		Month:        month,
		YearBE:       yearBE,
		Detail:       detail,
		Range:        rng,
		Transactions: txs,
		Totals:       SummarizeCredit(txs),
	}, nil
}

func (s *reportService) CashAnnual(ctx context.Context, yearBE int, detail string) (*models.CashAnnualReport, error) {
	started := time.Now()
	report := &models.CashAnnualReport{
		YearBE:  yearBE,
		Detail:  detail,
		Months:  []models.MonthlySummary{},
		Totals:  AnnualCashTotals(nil),
		Extrema: models.EmptyExtrema(),
	}

	periods, err := s.periods.ResolveAnnualPeriods(ctx, calendar.ToCE(yearBE))
	if err != nil {
		s.finish(ctx, ReportCashAnnual, yearBE, 0, started, err)
		return nil, err
	}
	if len(periods) == 0 {
		s.finish(ctx, ReportCashAnnual, yearBE, 0, started, ErrAnnualPeriodsUnavailable)
		return report, ErrAnnualPeriodsUnavailable
	}

	rows, err := s.Breakdown(ctx, models.KindCash, periods, detail)
	if err != nil {
		s.finish(ctx, ReportCashAnnual, yearBE, 0, started, err)
		return nil, err
	}

	report.Months = rows
	report.Totals = AnnualCashTotals(rows)
	report.Extrema = Extrema(rows)
	s.finish(ctx, ReportCashAnnual, yearBE, len(rows), started, nil)
	return report, nil
}

func (s *reportService) CreditAnnual(ctx context.Context, yearBE int, detail string) (*models.CreditAnnualReport, error) {
	started := time.Now()
	yearCE := calendar.ToCE(yearBE)
	rng := calendar.BillingYearIn(yearCE, s.loc)

	txs, err := s.transactions.FilterByRange(ctx, models.TransactionFilters{
		Kind:   models.KindCredit,
		Start:  rng.Start,
		End:    rng.End,
		Detail: detail,
		Order:  models.SortDescending,
	})
	if err != nil {
		s.finish(ctx, ReportCreditAnnual, yearBE, 0, started, err)
		return nil, err
	}

	rows := BucketByBillingCycle(yearCE, s.loc, txs)
	s.finish(ctx, ReportCreditAnnual, yearBE, len(txs), started, nil)
	return &models.CreditAnnualReport{
		YearBE: yearBE,
		Detail: detail,
		Range:  rng,
		Months: rows,
		Totals: AnnualCreditTotals(rows),
	}, nil
}

func (s *reportService) CashMonthDetail(ctx context.Context, monthName string, yearBE int, detail string) (*models.CashMonthlyReport, error) {
	month, err := calendar.ParseMonth(monthName)
	if err != nil {
		return nil, err
	}
	return s.cashMonthly(ctx, ReportCashDrillDown, month, yearBE, detail)
}

func (s *reportService) DateRange(ctx context.Context, start, end time.Time, detail string) (*models.DateRangeReport, error) {
	started := time.Now()
	rng, err := calendar.NewDateRange(start.In(s.loc), end.In(s.loc))
	if err != nil {
		return nil, err
	}

	txs, err := s.transactions.FilterByRange(ctx, models.TransactionFilters{
		Kind:   models.KindCash,
		Start:  rng.Start,
		End:    rng.End,
		Detail: detail,
		Order:  models.SortAscending,
	})
	if err != nil {
		s.finish(ctx, ReportDateRange, calendar.ToBE(rng.Start.Year()), 0, started, err)
		return nil, err
	}

	s.finish(ctx, ReportDateRange, calendar.ToBE(rng.Start.Year()), len(txs), started, nil)
	return &models.DateRangeReport{
		Range:        rng,
		Detail:       detail,
		Transactions: txs,
		Totals:       SummarizeCash(txs),
	}, nil
}

func (s *reportService) Breakdown(ctx context.Context, kind models.TransactionKind, periods []models.ResolvedPeriod, detail string) ([]models.MonthlySummary, error) {
	rows := make([]models.MonthlySummary, len(periods))
	g, gctx := errgroup.WithContext(ctx)

	for i, period := range periods {
		g.Go(func() error {
			txs, err := s.transactions.FilterByRange(gctx, models.TransactionFilters{
				Kind:   kind,
				Start:  period.Range.Start,
				End:    period.Range.End,
				Detail: detail,
				Order:  models.SortAscending,
			})
			if err != nil {
				return err
			}
			rows[i] = SummarizeMonth(kind, period, txs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *reportService) finish(ctx context.Context, report string, yearBE int, rows int, started time.Time, err error) {
	duration := time.Since(started)
	status := "success"
	switch {
	case errors.Is(err, ErrPeriodNotFound), errors.Is(err, ErrAnnualPeriodsUnavailable):
		status = "empty"
	case err != nil:
		status = "failed"
	}

	s.metrics.IncrementCounter("report.generated", map[string]string{"report": report, "status": status})
	s.metrics.RecordProcessingTime("report.duration", duration)
	if status == "success" {
		s.logger.LogReportGenerated(ctx, report, yearBE, rows, duration)
	}
}
