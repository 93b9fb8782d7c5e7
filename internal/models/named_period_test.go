package models

import (
	"testing"
	"time"

	"household-ledger/internal/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedPeriod_Validate(t *testing.T) {
	start := time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 24, 0, 0, 0, 0, time.UTC)

	valid := NamedPeriod{Year: 2024, Month: calendar.June, StartDate: start, EndDate: end}
	assert.NoError(t, valid.Validate())

	noYear := valid
	noYear.Year = 0
	assert.ErrorIs(t, noYear.Validate(), ErrInvalidPeriodYear)

	badMonth := valid
	badMonth.Month = calendar.Month(12)
	assert.ErrorIs(t, badMonth.Validate(), calendar.ErrInvalidMonth)

	inverted := valid
	inverted.StartDate, inverted.EndDate = end, start
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidPeriodRange)
}

func TestNamedPeriod_Range(t *testing.T) {
	p := NamedPeriod{
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	}

	r := p.Range()
	assert.True(t, r.Contains(time.Date(2024, time.June, 30, 18, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNamedPeriod_BeforeCreate(t *testing.T) {
	p := &NamedPeriod{
		Year:      2024,
		Month:     calendar.January,
		StartDate: time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 24, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNamedPeriod_RangeIn(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	p := NamedPeriod{
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, bangkok).UTC(),
		EndDate:   time.Date(2024, time.June, 30, 0, 0, 0, 0, bangkok).UTC(),
	}

	r := p.RangeIn(bangkok)
	assert.True(t, r.Start.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, bangkok)))
	assert.True(t, r.Contains(time.Date(2024, time.June, 30, 22, 0, 0, 0, bangkok)))
	assert.False(t, r.Contains(time.Date(2024, time.July, 1, 0, 0, 0, 0, bangkok)))
}
