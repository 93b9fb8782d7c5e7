package models

import (
	"errors"
	"time"

	"household-ledger/internal/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidPeriodYear  = errors.New("period year must be positive")
	ErrInvalidPeriodRange = errors.New("period start date must not be after end date")
)

// NamedPeriod is a user-defined accounting month, e.g. the 25th to the 24th.
// Year is stored in the Gregorian calendar.
type NamedPeriod struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Year       int            `gorm:"not null;index:idx_named_periods_year_month" json:"year"`
	Month      calendar.Month `gorm:"type:varchar(20);not null;index:idx_named_periods_year_month" json:"month"`
	StartDate  time.Time      `gorm:"not null" json:"start_date"`
	EndDate    time.Time      `gorm:"not null" json:"end_date"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	ModifiedAt time.Time      `gorm:"not null" json:"modified_at"`
}

func (p *NamedPeriod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.ModifiedAt.IsZero() {
		p.ModifiedAt = p.CreatedAt
	}
	p.StartDate = p.StartDate.UTC()
	p.EndDate = p.EndDate.UTC()

	return p.Validate()
}

func (p *NamedPeriod) BeforeUpdate(tx *gorm.DB) error {
	p.StartDate = p.StartDate.UTC()
	p.EndDate = p.EndDate.UTC()
	return p.Validate()
}

func (p *NamedPeriod) Validate() error {
	if p.Year <= 0 {
		return ErrInvalidPeriodYear
	}
	if !p.Month.IsValid() {
		return calendar.ErrInvalidMonth
	}
	if p.StartDate.After(p.EndDate) {
		return ErrInvalidPeriodRange
	}
	return nil
}

// Range returns the period bounds with the end extended to the end of its day.
func (p *NamedPeriod) Range() calendar.DateRange {
	return p.RangeIn(p.EndDate.Location())
}

// RangeIn evaluates the calendar days of the period in loc.
func (p *NamedPeriod) RangeIn(loc *time.Location) calendar.DateRange {
	return calendar.DateRange{
		Start: calendar.StartOfDay(p.StartDate.In(loc)),
		End:   calendar.EndOfDay(p.EndDate.In(loc)),
	}
}

func (p *NamedPeriod) TableName() string {
	return "named_periods"
}

// ResolvedPeriod is one month of an annual report with its concrete range.
type ResolvedPeriod struct {
	Month calendar.Month     `json:"month"`
	Range calendar.DateRange `json:"range"`
}
