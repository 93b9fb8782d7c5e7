package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrDataSource = errors.New("data source unavailable")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          ReportLoggerInterface
	breaker         *storeBreaker
	now             func() time.Time
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger ReportLoggerInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
		breaker:         newStoreBreaker(defaultBreakerConfig()),
		now:             time.Now,
	}
}

func (s *transactionService) FilterByRange(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	if !filters.Kind.IsValid() {
		return nil, models.ErrInvalidTransactionKind
	}
	if filters.End.Before(filters.Start) {
		return nil, calendar.ErrInvalidDateRange
	}

	if !s.breaker.allow() {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, ErrStoreUnavailable)
	}

	end := calendar.EndOfDay(filters.End)
	txs, err := s.transactionRepo.GetByDateRange(ctx, filters.Kind, filters.Start, end, filters.NormalizedDetail())
	s.recordStoreResult(ctx, err)
	if err != nil {
		s.logger.LogDataSourceFailure(ctx, "filter_by_range", err)
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}

	sortByDate(txs, filters.Order.OrDefault(models.SortAscending))
	return txs, nil
}

func (s *transactionService) UniqueDetails(ctx context.Context, kind models.TransactionKind) ([]string, error) {
	if !kind.IsValid() {
		return nil, models.ErrInvalidTransactionKind
	}

	if !s.breaker.allow() {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, ErrStoreUnavailable)
	}

	raw, err := s.transactionRepo.ListDetails(ctx, kind)
	s.recordStoreResult(ctx, err)
	if err != nil {
		s.logger.LogDataSourceFailure(ctx, "unique_details", err)
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	seen := make(map[string]struct{}, len(raw))
	details := make([]string, 0, len(raw))
	for _, d := range raw {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		details = append(details, d)
	}
	sort.Strings(details)
	return details, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, kind models.TransactionKind, page models.Pagination) ([]models.Transaction, int64, error) {
	if !kind.IsValid() {
		return nil, 0, models.ErrInvalidTransactionKind
	}

	txs, total, err := s.transactionRepo.List(ctx, kind, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return txs, total, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, kind models.TransactionKind, req *dto.TransactionRequest) (*models.Transaction, error) {
	tx := &models.Transaction{Kind: kind}
	applyTransactionRequest(tx, req)
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	s.logger.LogEntityChanged(ctx, "created", "transaction", tx.ID)

	return tx, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	tx, err := s.GetTransaction(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	applyTransactionRequest(tx, req)
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	tx.ModifiedAt = s.now()

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, kind models.TransactionKind, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	s.logger.LogEntityChanged(ctx, "deleted", "transaction", id)
	return nil
}

// recordStoreResult feeds the breaker. Errors caused by the caller going away
// say nothing about the store and are not counted.
func (s *transactionService) recordStoreResult(ctx context.Context, err error) {
	if err != nil && (ctx.Err() != nil || errors.Is(err, context.Canceled)) {
		return
	}
	s.breaker.record(err)
}

// applyTransactionRequest copies request fields onto tx. Absent flags default
// to false on create and keep their stored value on update.
func applyTransactionRequest(tx *models.Transaction, req *dto.TransactionRequest) {
	tx.Date = req.Date.Time
	tx.Amount = req.Amount.Decimal
	tx.Details = strings.TrimSpace(req.Details)
	tx.Remark = req.Remark
	if req.IsIncome != nil {
		tx.IsIncome = *req.IsIncome
	}
	if req.IsCashback != nil {
		tx.IsCashback = *req.IsCashback
	}
}
