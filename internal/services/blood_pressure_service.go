package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories"

	"github.com/google/uuid"
)

type bloodPressureService struct {
	recordRepo repositories.BloodPressureRepositoryInterface
	logger     ReportLoggerInterface
	metrics    MetricsRecorderInterface
	loc        *time.Location
	now        func() time.Time
}

func NewBloodPressureService(
	recordRepo repositories.BloodPressureRepositoryInterface,
	logger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	loc *time.Location,
) BloodPressureServiceInterface {
	if loc == nil {
		loc = time.Local
	}
	return &bloodPressureService{
		recordRepo: recordRepo,
		logger:     logger,
		metrics:    metrics,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *bloodPressureService) GetRecord(ctx context.Context, id uuid.UUID) (*models.BloodPressureRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBloodPressureRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return record, nil
}

func (s *bloodPressureService) ListRecords(ctx context.Context, page models.Pagination) ([]models.BloodPressureRecord, int64, error) {
	records, total, err := s.recordRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return records, total, nil
}

func (s *bloodPressureService) CreateRecord(ctx context.Context, req *dto.BloodPressureRequest) (*models.BloodPressureRecord, error) {
	record := &models.BloodPressureRecord{}
	applyBloodPressureRequest(record, req)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	if record.HasHighReading() {
		s.logger.LogHighReading(ctx, record.ID, record.Date)
	}
	return record, nil
}

func (s *bloodPressureService) UpdateRecord(ctx context.Context, id uuid.UUID, req *dto.BloodPressureRequest) (*models.BloodPressureRecord, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	applyBloodPressureRequest(record, req)
	if err := record.Validate(); err != nil {
		return nil, err
	}
	record.ModifiedAt = s.now()

	if err := s.recordRepo.Update(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrBloodPressureRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return record, nil
}

func (s *bloodPressureService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrBloodPressureRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return nil
}

func (s *bloodPressureService) RangeReport(ctx context.Context, start, end time.Time) (*models.BloodPressureReport, error) {
	rng, err := calendar.NewDateRange(start.In(s.loc), end.In(s.loc))
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetByDateRange(ctx, rng.Start, rng.End)
	if err != nil {
		s.logger.LogDataSourceFailure(ctx, "blood_pressure_range", err)
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if records == nil {
		records = []models.BloodPressureRecord{}
	}

	high := 0
	for i := range records {
		if records[i].HasHighReading() {
			high++
		}
	}

	s.metrics.RecordGauge("blood_pressure.high_days", float64(high), nil)
	return &models.BloodPressureReport{
		Range:       rng,
		Records:     records,
		HighReading: high,
	}, nil
}

func applyBloodPressureRequest(record *models.BloodPressureRecord, req *dto.BloodPressureRequest) {
	record.Date = req.Date.Time
	record.MorningBP1 = strings.TrimSpace(req.MorningBP1)
	record.MorningBP2 = strings.TrimSpace(req.MorningBP2)
	record.EveningBP1 = strings.TrimSpace(req.EveningBP1)
	record.EveningBP2 = strings.TrimSpace(req.EveningBP2)
}
