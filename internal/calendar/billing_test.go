package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingCycle_JanuaryRollsBackIntoPreviousYear(t *testing.T) {
	cycle := BillingCycleIn(January, 2024, time.UTC)

	assert.Equal(t, time.Date(2023, time.December, 13, 0, 0, 0, 0, time.UTC), cycle.Start)
	assert.Equal(t, time.Date(2024, time.January, 12, 23, 59, 59, 0, time.UTC), cycle.End)
}

func TestBillingCycle_December(t *testing.T) {
	cycle := BillingCycleIn(December, 2024, time.UTC)

	assert.Equal(t, time.Date(2024, time.November, 13, 0, 0, 0, 0, time.UTC), cycle.Start)
	assert.Equal(t, time.Date(2024, time.December, 12, 23, 59, 59, 0, time.UTC), cycle.End)
}

func TestBillingCycle_UsesLocalTime(t *testing.T) {
	cycle := BillingCycle(March, 2024)

	assert.Equal(t, time.Local, cycle.Start.Location())
	assert.Equal(t, time.February, cycle.Start.Month())
	assert.Equal(t, 13, cycle.Start.Day())
}

func TestBillingCycle_BoundaryTransactions(t *testing.T) {
	july := BillingCycleIn(July, 2024, time.UTC)

	assert.True(t, july.Contains(time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, july.Contains(time.Date(2024, time.July, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, july.Contains(time.Date(2024, time.July, 12, 23, 59, 59, 0, time.UTC)))
	assert.False(t, july.Contains(time.Date(2024, time.July, 13, 0, 0, 0, 0, time.UTC)))

	next := BillingCycleIn(August, 2024, time.UTC)
	assert.True(t, next.Contains(time.Date(2024, time.July, 13, 0, 0, 0, 0, time.UTC)))
}

func TestBillingYear(t *testing.T) {
	year := BillingYearIn(2024, time.UTC)

	assert.Equal(t, time.Date(2023, time.December, 13, 0, 0, 0, 0, time.UTC), year.Start)
	assert.Equal(t, time.Date(2024, time.December, 12, 23, 59, 59, 0, time.UTC), year.End)
	assert.Equal(t, time.Local, BillingYear(2024).Start.Location())
}

func TestBillingCycles_AreContiguous(t *testing.T) {
	cycles := BillingCycles(2025, time.UTC)

	for i := 1; i < len(cycles); i++ {
		assert.Equal(t, cycles[i-1].End.Add(time.Second), cycles[i].Start, "cycle %d", i)
	}
}
