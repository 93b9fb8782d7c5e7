package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReading(t *testing.T) {
	r, err := ParseReading("120/80 P72")
	require.NoError(t, err)
	assert.Equal(t, Reading{Systolic: 120, Diastolic: 80, Pulse: 72}, r)
	assert.Equal(t, "120/80 P72", r.String())

	r, err = ParseReading(" 95 / 60 P 101 ")
	require.NoError(t, err)
	assert.Equal(t, 101, r.Pulse)

	for _, bad := range []string{"", "120/80", "120-80 P72", "1200/80 P72", "abc"} {
		_, err := ParseReading(bad)
		assert.ErrorIs(t, err, ErrInvalidReading, bad)
	}
}

func TestIsReadingHigh(t *testing.T) {
	tests := []struct {
		reading string
		high    bool
	}{
		{"120/80 P72", false},
		{"130/80 P72", false},
		{"131/80 P72", true},
		{"120/81 P72", true},
		{"145/95 P88", true},
		{"", false},
		{"garbage", false},
		{"140", false},
	}

	for _, tt := range tests {
		t.Run(tt.reading, func(t *testing.T) {
			assert.Equal(t, tt.high, IsReadingHigh(tt.reading))
		})
	}
}

func TestBloodPressureRecord_Validate(t *testing.T) {
	day := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)

	valid := BloodPressureRecord{Date: day, MorningBP1: "118/76 P70"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&BloodPressureRecord{MorningBP1: "118/76 P70"}).Validate(), ErrMissingDate)
	assert.ErrorIs(t, (&BloodPressureRecord{Date: day}).Validate(), ErrMissingReading)
	assert.ErrorIs(t, (&BloodPressureRecord{Date: day, EveningBP2: "118/76"}).Validate(), ErrInvalidReading)
}

func TestBloodPressureRecord_HasHighReading(t *testing.T) {
	record := BloodPressureRecord{
		MorningBP1: "118/76 P70",
		EveningBP1: "135/79 P80",
	}
	assert.True(t, record.HasHighReading())

	record.EveningBP1 = "125/79 P80"
	assert.False(t, record.HasHighReading())
}
