package repositories

import (
	"context"
	"errors"
	"fmt"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNamedPeriodNotFound = errors.New("named period not found")
)

type namedPeriodRepository struct {
	db *gorm.DB
}

// NewNamedPeriodRepository creates a new named period repository
func NewNamedPeriodRepository(db *gorm.DB) NamedPeriodRepositoryInterface {
	return &namedPeriodRepository{
		db: db,
	}
}

func (r *namedPeriodRepository) Create(ctx context.Context, period *models.NamedPeriod) error {
	if err := r.db.WithContext(ctx).Create(period).Error; err != nil {
		return fmt.Errorf("failed to create named period: %w", err)
	}
	return nil
}

func (r *namedPeriodRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.NamedPeriod, error) {
	var period models.NamedPeriod
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNamedPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get named period: %w", err)
	}
	return &period, nil
}

func (r *namedPeriodRepository) Update(ctx context.Context, period *models.NamedPeriod) error {
	result := r.db.WithContext(ctx).
		Model(period).
		Select("year", "month", "start_date", "end_date", "modified_at").
		Updates(period)
	if result.Error != nil {
		return fmt.Errorf("failed to update named period: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNamedPeriodNotFound
	}
	return nil
}

func (r *namedPeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.NamedPeriod{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete named period: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNamedPeriodNotFound
	}
	return nil
}

// GetAll returns every period, newest year first. Month order within a
// year is left to the caller since the column holds display names.
func (r *namedPeriodRepository) GetAll(ctx context.Context) ([]models.NamedPeriod, error) {
	var periods []models.NamedPeriod
	if err := r.db.WithContext(ctx).
		Order("year DESC").Order("created_at ASC").Order("id ASC").
		Find(&periods).Error; err != nil {
		return nil, fmt.Errorf("failed to get named periods: %w", err)
	}
	return periods, nil
}

func (r *namedPeriodRepository) FindByMonthYear(ctx context.Context, month calendar.Month, year int) (*models.NamedPeriod, error) {
	var period models.NamedPeriod
	if err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC").Order("id ASC").
		First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNamedPeriodNotFound
		}
		return nil, fmt.Errorf("failed to find named period: %w", err)
	}
	return &period, nil
}

func (r *namedPeriodRepository) CountByMonthYear(ctx context.Context, month calendar.Month, year int, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.NamedPeriod{}).
		Where("month = ? AND year = ?", month, year)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count named periods: %w", err)
	}
	return count, nil
}

func (r *namedPeriodRepository) FindByYear(ctx context.Context, year int) ([]models.NamedPeriod, error) {
	var periods []models.NamedPeriod
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("created_at ASC").Order("id ASC").
		Find(&periods).Error; err != nil {
		return nil, fmt.Errorf("failed to find named periods by year: %w", err)
	}
	return periods, nil
}
