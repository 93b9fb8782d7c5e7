package models

import (
	"strings"
	"time"
)

// SortOrder orders results by transaction date.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAscending || o == SortDescending
}

// OrDefault returns o, or def when o is empty or unknown.
func (o SortOrder) OrDefault(def SortOrder) SortOrder {
	if o.IsValid() {
		return o
	}
	return def
}

// TransactionFilters narrows a range query. An empty Detail matches every entry.
type TransactionFilters struct {
	Kind   TransactionKind
	Start  time.Time
	End    time.Time
	Detail string
	Order  SortOrder
}

// NormalizedDetail returns the trimmed detail filter.
func (f TransactionFilters) NormalizedDetail() string {
	return strings.TrimSpace(f.Detail)
}

// HasDetail reports whether the detail filter should be applied.
func (f TransactionFilters) HasDetail() bool {
	return f.NormalizedDetail() != ""
}

// Pagination holds a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
