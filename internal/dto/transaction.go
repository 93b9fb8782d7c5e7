package dto

import (
	"household-ledger/internal/models"
)

// TransactionRequest is the body for creating or updating a cash or credit entry
type TransactionRequest struct {
	Date       FlexibleDate   `json:"date" validate:"required"`
	Amount     FlexibleAmount `json:"amount" validate:"gte=0"`
	IsIncome   *bool          `json:"isIncome,omitempty"`
	IsCashback *bool          `json:"isCashback,omitempty"`
	Details    string         `json:"details" validate:"required,max=255"`
	Remark     string         `json:"remark,omitempty" validate:"max=1000"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationMeta       `json:"pagination"`
}

// DetailsResponse lists the distinct categories of a transaction kind
type DetailsResponse struct {
	Kind    models.TransactionKind `json:"kind"`
	Details []string               `json:"details"`
}
