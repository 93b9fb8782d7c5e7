package repositories

import (
	"context"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for cash and credit transaction storage
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, kind models.TransactionKind, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, kind models.TransactionKind, id uuid.UUID) error
	List(ctx context.Context, kind models.TransactionKind, page models.Pagination) ([]models.Transaction, int64, error)

	// GetByDateRange returns entries with start <= date <= end, optionally
	// restricted to an exact (trimmed) detail. Results are unordered.
	GetByDateRange(ctx context.Context, kind models.TransactionKind, start, end time.Time, detail string) ([]models.Transaction, error)

	// ListDetails returns the raw details column of every entry of a kind.
	ListDetails(ctx context.Context, kind models.TransactionKind) ([]string, error)
}

// NamedPeriodRepositoryInterface defines the contract for the named period registry
type NamedPeriodRepositoryInterface interface {
	Create(ctx context.Context, period *models.NamedPeriod) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.NamedPeriod, error)
	Update(ctx context.Context, period *models.NamedPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]models.NamedPeriod, error)

	// FindByMonthYear returns the earliest created period for the key.
	FindByMonthYear(ctx context.Context, month calendar.Month, year int) (*models.NamedPeriod, error)
	CountByMonthYear(ctx context.Context, month calendar.Month, year int, excludeID uuid.UUID) (int64, error)
	FindByYear(ctx context.Context, year int) ([]models.NamedPeriod, error)
}

// BloodPressureRepositoryInterface defines the contract for blood pressure record storage
type BloodPressureRepositoryInterface interface {
	Create(ctx context.Context, record *models.BloodPressureRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BloodPressureRecord, error)
	Update(ctx context.Context, record *models.BloodPressureRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page models.Pagination) ([]models.BloodPressureRecord, int64, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.BloodPressureRecord, error)
}
