package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"household-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBloodPressureRecordNotFound = errors.New("blood pressure record not found")
)

type bloodPressureRepository struct {
	db *gorm.DB
}

// NewBloodPressureRepository creates a new blood pressure repository
func NewBloodPressureRepository(db *gorm.DB) BloodPressureRepositoryInterface {
	return &bloodPressureRepository{
		db: db,
	}
}

func (r *bloodPressureRepository) Create(ctx context.Context, record *models.BloodPressureRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create blood pressure record: %w", err)
	}
	return nil
}

func (r *bloodPressureRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BloodPressureRecord, error) {
	var record models.BloodPressureRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloodPressureRecordNotFound
		}
		return nil, fmt.Errorf("failed to get blood pressure record: %w", err)
	}
	return &record, nil
}

func (r *bloodPressureRepository) Update(ctx context.Context, record *models.BloodPressureRecord) error {
	result := r.db.WithContext(ctx).
		Model(record).
		Select("date", "morning_bp1", "morning_bp2", "evening_bp1", "evening_bp2", "modified_at").
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update blood pressure record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBloodPressureRecordNotFound
	}
	return nil
}

func (r *bloodPressureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BloodPressureRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blood pressure record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBloodPressureRecordNotFound
	}
	return nil
}

// List retrieves a page of records, newest day first
func (r *bloodPressureRepository) List(ctx context.Context, page models.Pagination) ([]models.BloodPressureRecord, int64, error) {
	var records []models.BloodPressureRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.BloodPressureRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blood pressure records: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Offset(page.Offset()).Limit(page.Limit).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get blood pressure records: %w", err)
	}

	return records, total, nil
}

// GetByDateRange retrieves records in [start, end], oldest first
func (r *bloodPressureRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.BloodPressureRecord, error) {
	var records []models.BloodPressureRecord
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start.UTC(), end.UTC()).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get blood pressure records by date range: %w", err)
	}
	return records, nil
}
