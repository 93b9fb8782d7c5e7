package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind separates cash book entries from credit-card entries.
type TransactionKind string

const (
	KindCash   TransactionKind = "cash"
	KindCredit TransactionKind = "credit"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrMissingDetails         = errors.New("transaction details are required")
	ErrConflictingFlags       = errors.New("flag does not apply to this transaction kind")
)

func (k TransactionKind) IsValid() bool {
	return k == KindCash || k == KindCredit
}

func (k TransactionKind) String() string {
	return string(k)
}

// Transaction is a single cash or credit-card entry. The amount is never
// negative; direction comes from IsIncome (cash) or IsCashback (credit).
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Kind       TransactionKind `gorm:"type:varchar(10);not null;index" json:"kind"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsIncome   bool            `gorm:"not null;default:false" json:"is_income"`
	IsCashback bool            `gorm:"not null;default:false" json:"is_cashback"`
	Details    string          `gorm:"type:varchar(255);not null;index" json:"details"`
	Remark     string          `gorm:"type:text" json:"remark,omitempty"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	ModifiedAt time.Time       `gorm:"not null" json:"modified_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.ModifiedAt.IsZero() {
		t.ModifiedAt = t.CreatedAt
	}
	t.Date = t.Date.UTC()

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.Date = t.Date.UTC()
	return t.Validate()
}

// Validate checks the invariants of a single entry.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return ErrInvalidTransactionKind
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if strings.TrimSpace(t.Details) == "" {
		return ErrMissingDetails
	}

	if t.Kind == KindCash && t.IsCashback {
		return ErrConflictingFlags
	}
	if t.Kind == KindCredit && t.IsIncome {
		return ErrConflictingFlags
	}

	return nil
}

// IsInflow reports whether the entry reduces what the household owes or adds to its cash.
func (t *Transaction) IsInflow() bool {
	if t.Kind == KindCredit {
		return t.IsCashback
	}
	return t.IsIncome
}

// NormalizedDetails returns Details with surrounding whitespace removed.
func (t *Transaction) NormalizedDetails() string {
	return strings.TrimSpace(t.Details)
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks a raw kind string.
func IsValidTransactionKind(kind string) bool {
	return TransactionKind(kind).IsValid()
}
