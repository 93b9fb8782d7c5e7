package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"household-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

func (r *transactionRepository) GetByID(ctx context.Context, kind models.TransactionKind, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(transaction).
		Where("kind = ?", transaction.Kind).
		Select("date", "amount", "is_income", "is_cashback", "details", "remark", "modified_at").
		Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, kind models.TransactionKind, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// List retrieves a page of transactions, newest first
func (r *transactionRepository) List(ctx context.Context, kind models.TransactionKind, page models.Pagination) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("kind = ?", kind).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Offset(page.Offset()).Limit(page.Limit).
		Order("date DESC").Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) GetByDateRange(ctx context.Context, kind models.TransactionKind, start, end time.Time, detail string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.WithContext(ctx).
		Where("kind = ? AND date >= ? AND date <= ?", kind, start.UTC(), end.UTC())

	if detail = strings.TrimSpace(detail); detail != "" {
		query = query.Where("TRIM(details) = ?", detail)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) ListDetails(ctx context.Context, kind models.TransactionKind) ([]string, error) {
	var details []string
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("kind = ?", kind).
		Distinct().
		Pluck("details", &details).Error; err != nil {
		return nil, fmt.Errorf("failed to list transaction details: %w", err)
	}
	return details, nil
}
