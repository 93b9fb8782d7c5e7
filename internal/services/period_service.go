package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrPeriodNotFound           = errors.New("no named period defined for month")
	ErrAnnualPeriodsUnavailable = errors.New("no named periods defined for year")
)

type periodService struct {
	periodRepo repositories.NamedPeriodRepositoryInterface
	logger     ReportLoggerInterface
	metrics    MetricsRecorderInterface
	loc        *time.Location
	now        func() time.Time
}

// NewPeriodService creates the named period registry. Ranges are resolved in loc.
func NewPeriodService(
	periodRepo repositories.NamedPeriodRepositoryInterface,
	logger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	loc *time.Location,
) PeriodServiceInterface {
	if loc == nil {
		loc = time.Local
	}
	return &periodService{
		periodRepo: periodRepo,
		logger:     logger,
		metrics:    metrics,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *periodService) ResolvePeriod(ctx context.Context, month calendar.Month, yearCE int) (calendar.DateRange, error) {
	if !month.IsValid() {
		return calendar.DateRange{}, calendar.ErrInvalidMonth
	}

	period, err := s.periodRepo.FindByMonthYear(ctx, month, yearCE)
	if err != nil {
		if errors.Is(err, repositories.ErrNamedPeriodNotFound) {
			s.logger.LogPeriodNotFound(ctx, month, yearCE)
			s.metrics.IncrementCounter("period.not_found", map[string]string{"scope": "month"})
			return calendar.DateRange{}, ErrPeriodNotFound
		}
		s.logger.LogDataSourceFailure(ctx, "resolve_period", err)
		return calendar.DateRange{}, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	return period.RangeIn(s.loc), nil
}

func (s *periodService) ResolveAnnualPeriods(ctx context.Context, yearCE int) ([]models.ResolvedPeriod, error) {
	periods, err := s.periodRepo.FindByYear(ctx, yearCE)
	if err != nil {
		s.logger.LogDataSourceFailure(ctx, "resolve_annual_periods", err)
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	seen := make(map[calendar.Month]bool, len(periods))
	resolved := make([]models.ResolvedPeriod, 0, len(periods))
	for i := range periods {
		p := &periods[i]
		if !p.Month.IsValid() || seen[p.Month] {
			continue
		}
		seen[p.Month] = true
		resolved = append(resolved, models.ResolvedPeriod{Month: p.Month, Range: p.RangeIn(s.loc)})
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Month < resolved[j].Month
	})

	if len(resolved) == 0 {
		s.logger.LogAnnualPeriodsUnavailable(ctx, yearCE)
		s.metrics.IncrementCounter("period.not_found", map[string]string{"scope": "year"})
	}

	return resolved, nil
}

func (s *periodService) ListPeriods(ctx context.Context) ([]models.NamedPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})
	return periods, nil
}

func (s *periodService) GetPeriod(ctx context.Context, id uuid.UUID) (*models.NamedPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNamedPeriodNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return period, nil
}

func (s *periodService) CreatePeriod(ctx context.Context, req *dto.NamedPeriodRequest) (*models.NamedPeriod, error) {
	period := &models.NamedPeriod{}
	if err := applyPeriodRequest(period, req); err != nil {
		return nil, err
	}

	s.warnOnDuplicate(ctx, period.Month, period.Year, uuid.Nil)

	if err := s.periodRepo.Create(ctx, period); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	s.logger.LogEntityChanged(ctx, "created", "named_period", period.ID)

	return period, nil
}

func (s *periodService) UpdatePeriod(ctx context.Context, id uuid.UUID, req *dto.NamedPeriodRequest) (*models.NamedPeriod, error) {
	period, err := s.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPeriodRequest(period, req); err != nil {
		return nil, err
	}

	s.warnOnDuplicate(ctx, period.Month, period.Year, period.ID)
	period.ModifiedAt = s.now()

	if err := s.periodRepo.Update(ctx, period); err != nil {
		if errors.Is(err, repositories.ErrNamedPeriodNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	return period, nil
}

func (s *periodService) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	if err := s.periodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNamedPeriodNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return nil
}

// warnOnDuplicate logs when another period already covers (month, year).
// The write still goes through; lookups pick the earliest created period.
func (s *periodService) warnOnDuplicate(ctx context.Context, month calendar.Month, yearCE int, excludeID uuid.UUID) {
	count, err := s.periodRepo.CountByMonthYear(ctx, month, yearCE, excludeID)
	if err != nil {
		s.logger.LogDataSourceFailure(ctx, "count_duplicate_periods", err)
		return
	}
	if count > 0 {
		s.logger.LogDuplicatePeriod(ctx, month, yearCE, count)
		s.metrics.IncrementCounter("period.duplicate", nil)
	}
}

func applyPeriodRequest(period *models.NamedPeriod, req *dto.NamedPeriodRequest) error {
	month, err := calendar.ParseMonth(req.Month)
	if err != nil {
		return err
	}

	period.Year = calendar.ToCE(req.YearBE)
	period.Month = month
	period.StartDate = req.StartDate.Time
	period.EndDate = req.EndDate.Time

	return period.Validate()
}
