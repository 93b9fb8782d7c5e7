package services

import (
	"testing"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerGenerator_NamedPeriods(t *testing.T) {
	gen := NewLedgerGenerator(42, bangkok)

	periods := gen.GenerateNamedPeriods(2024)

	require.Len(t, periods, 12)
	assert.Equal(t, calendar.January, periods[0].Month)
	assert.Equal(t, time.Date(2023, time.December, 25, 0, 0, 0, 0, bangkok), periods[0].StartDate)
	assert.Equal(t, time.Date(2024, time.January, 24, 0, 0, 0, 0, bangkok), periods[0].EndDate)
	for _, p := range periods {
		assert.NoError(t, p.Validate())
	}
}

func TestLedgerGenerator_CashTransactionsAreValid(t *testing.T) {
	gen := NewLedgerGenerator(7, bangkok)

	txs := gen.GenerateCashTransactions(2024, 5)

	require.Len(t, txs, 60)
	for _, tx := range txs {
		assert.Equal(t, models.KindCash, tx.Kind)
		assert.Equal(t, 2024, tx.Date.Year())
		assert.NoError(t, tx.Validate())
	}
}

func TestLedgerGenerator_CreditTransactionsStayInBillingYear(t *testing.T) {
	gen := NewLedgerGenerator(7, bangkok)
	year := calendar.BillingYearIn(2024, bangkok)

	txs := gen.GenerateCreditTransactions(2024, 4)

	require.Len(t, txs, 48)
	for _, tx := range txs {
		assert.True(t, year.Contains(tx.Date), tx.Date)
		assert.False(t, tx.IsIncome)
		assert.NoError(t, tx.Validate())
	}
}

func TestLedgerGenerator_SameSeedSameData(t *testing.T) {
	a := NewLedgerGenerator(99, bangkok).GenerateCashTransactions(2024, 2)
	b := NewLedgerGenerator(99, bangkok).GenerateCashTransactions(2024, 2)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Date, b[i].Date)
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
		assert.Equal(t, a[i].Details, b[i].Details)
	}
}

func TestLedgerGenerator_BloodPressureRecords(t *testing.T) {
	gen := NewLedgerGenerator(3, bangkok)
	start := time.Date(2024, time.July, 1, 15, 30, 0, 0, bangkok)

	records := gen.GenerateBloodPressureRecords(start, 10)

	require.Len(t, records, 10)
	assert.Equal(t, ictDay(2024, time.July, 1), records[0].Date)
	assert.Equal(t, ictDay(2024, time.July, 10), records[9].Date)
	for _, r := range records {
		assert.NoError(t, r.Validate())
	}
}
