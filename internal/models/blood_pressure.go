package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HighSystolicThreshold  = 130
	HighDiastolicThreshold = 80
)

var (
	ErrInvalidReading = errors.New("invalid blood pressure reading")
	ErrMissingReading = errors.New("at least one blood pressure reading is required")

	readingPattern   = regexp.MustCompile(`^\s*(\d{2,3})\s*/\s*(\d{2,3})\s*P\s*(\d{2,3})\s*$`)
	readingSeparator = regexp.MustCompile(`[/P\s]+`)
)

// Reading is a single "SYS/DIA Ppulse" measurement, e.g. "120/80 P72".
type Reading struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
	Pulse     int `json:"pulse"`
}

// ParseReading parses the strict "SYS/DIA Ppulse" form.
func ParseReading(s string) (Reading, error) {
	m := readingPattern.FindStringSubmatch(s)
	if m == nil {
		return Reading{}, fmt.Errorf("%w: %q", ErrInvalidReading, s)
	}

	sys, _ := strconv.Atoi(m[1])
	dia, _ := strconv.Atoi(m[2])
	pulse, _ := strconv.Atoi(m[3])
	return Reading{Systolic: sys, Diastolic: dia, Pulse: pulse}, nil
}

func (r Reading) String() string {
	return fmt.Sprintf("%d/%d P%d", r.Systolic, r.Diastolic, r.Pulse)
}

func (r Reading) IsHigh() bool {
	return r.Systolic > HighSystolicThreshold || r.Diastolic > HighDiastolicThreshold
}

// IsReadingHigh flags a stored reading string. Values that cannot be split
// into systolic and diastolic parts are not flagged.
func IsReadingHigh(s string) bool {
	parts := readingSeparator.Split(strings.TrimSpace(s), -1)
	if len(parts) < 2 {
		return false
	}

	sys, errSys := strconv.Atoi(parts[0])
	dia, errDia := strconv.Atoi(parts[1])
	if errSys != nil || errDia != nil {
		return false
	}
	return sys > HighSystolicThreshold || dia > HighDiastolicThreshold
}

// BloodPressureRecord holds the morning and evening measurements of one day.
type BloodPressureRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	MorningBP1 string    `gorm:"type:varchar(20)" json:"morning_bp1"`
	MorningBP2 string    `gorm:"type:varchar(20)" json:"morning_bp2"`
	EveningBP1 string    `gorm:"type:varchar(20)" json:"evening_bp1"`
	EveningBP2 string    `gorm:"type:varchar(20)" json:"evening_bp2"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	ModifiedAt time.Time `gorm:"not null" json:"modified_at"`
}

func (b *BloodPressureRecord) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.ModifiedAt.IsZero() {
		b.ModifiedAt = b.CreatedAt
	}
	b.Date = b.Date.UTC()

	return b.Validate()
}

func (b *BloodPressureRecord) BeforeUpdate(tx *gorm.DB) error {
	b.Date = b.Date.UTC()
	return b.Validate()
}

func (b *BloodPressureRecord) Readings() []string {
	return []string{b.MorningBP1, b.MorningBP2, b.EveningBP1, b.EveningBP2}
}

// Validate requires a date and at least one well-formed reading. Empty slots are allowed.
func (b *BloodPressureRecord) Validate() error {
	if b.Date.IsZero() {
		return ErrMissingDate
	}

	present := 0
	for _, r := range b.Readings() {
		if strings.TrimSpace(r) == "" {
			continue
		}
		if _, err := ParseReading(r); err != nil {
			return err
		}
		present++
	}

	if present == 0 {
		return ErrMissingReading
	}
	return nil
}

// HasHighReading reports whether any of the day's readings is high.
func (b *BloodPressureRecord) HasHighReading() bool {
	for _, r := range b.Readings() {
		if IsReadingHigh(r) {
			return true
		}
	}
	return false
}

func (b *BloodPressureRecord) TableName() string {
	return "blood_pressure_records"
}
