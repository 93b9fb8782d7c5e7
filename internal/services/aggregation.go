package services

import (
	"sort"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// SummarizeCash totals cash entries. Balance is income minus expense.
func SummarizeCash(txs []models.Transaction) models.CashTotals {
	income, expense := decimal.Zero, decimal.Zero
	for i := range txs {
		if txs[i].IsIncome {
			income = income.Add(txs[i].Amount)
		} else {
			expense = expense.Add(txs[i].Amount)
		}
	}
	return models.CashTotals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// SummarizeCredit totals credit entries. NetExpense is expense minus cashback.
func SummarizeCredit(txs []models.Transaction) models.CreditTotals {
	expense, cashback := decimal.Zero, decimal.Zero
	for i := range txs {
		if txs[i].IsCashback {
			cashback = cashback.Add(txs[i].Amount)
		} else {
			expense = expense.Add(txs[i].Amount)
		}
	}
	return models.CreditTotals{
		TotalExpense:  expense,
		TotalCashback: cashback,
		NetExpense:    expense.Sub(cashback),
	}
}

// SummarizeMonth builds one breakdown row for a period.
func SummarizeMonth(kind models.TransactionKind, period models.ResolvedPeriod, txs []models.Transaction) models.MonthlySummary {
	row := models.MonthlySummary{
		Month:    period.Month,
		Range:    period.Range,
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Cashback: decimal.Zero,
		Balance:  decimal.Zero,
	}

	if kind == models.KindCredit {
		totals := SummarizeCredit(txs)
		row.Expense = totals.TotalExpense
		row.Cashback = totals.TotalCashback
		row.Balance = totals.NetExpense
		return row
	}

	totals := SummarizeCash(txs)
	row.Income = totals.TotalIncome
	row.Expense = totals.TotalExpense
	row.Balance = totals.Balance
	return row
}

// AnnualCashTotals sums the rows of a cash breakdown.
func AnnualCashTotals(rows []models.MonthlySummary) models.CashTotals {
	income, expense := decimal.Zero, decimal.Zero
	for _, row := range rows {
		income = income.Add(row.Income)
		expense = expense.Add(row.Expense)
	}
	return models.CashTotals{TotalIncome: income, TotalExpense: expense, Balance: income.Sub(expense)}
}

// AnnualCreditTotals sums the rows of a credit breakdown.
func AnnualCreditTotals(rows []models.MonthlySummary) models.CreditTotals {
	expense, cashback := decimal.Zero, decimal.Zero
	for _, row := range rows {
		expense = expense.Add(row.Expense)
		cashback = cashback.Add(row.Cashback)
	}
	return models.CreditTotals{TotalExpense: expense, TotalCashback: cashback, NetExpense: expense.Sub(cashback)}
}

// Extrema finds the months with the highest and lowest income and expense.
// Comparisons are strict, so the earliest row wins a tie.
func Extrema(rows []models.MonthlySummary) models.Extrema {
	if len(rows) == 0 {
		return models.EmptyExtrema()
	}

	first := rows[0]
	result := models.Extrema{
		MaxIncome:  models.Extremum{Month: first.Month.ThaiName(), Amount: first.Income},
		MaxExpense: models.Extremum{Month: first.Month.ThaiName(), Amount: first.Expense},
		MinIncome:  models.Extremum{Month: first.Month.ThaiName(), Amount: first.Income},
		MinExpense: models.Extremum{Month: first.Month.ThaiName(), Amount: first.Expense},
	}

	for _, row := range rows[1:] {
		name := row.Month.ThaiName()
		if row.Income.GreaterThan(result.MaxIncome.Amount) {
			result.MaxIncome = models.Extremum{Month: name, Amount: row.Income}
		}
		if row.Income.LessThan(result.MinIncome.Amount) {
			result.MinIncome = models.Extremum{Month: name, Amount: row.Income}
		}
		if row.Expense.GreaterThan(result.MaxExpense.Amount) {
			result.MaxExpense = models.Extremum{Month: name, Amount: row.Expense}
		}
		if row.Expense.LessThan(result.MinExpense.Amount) {
			result.MinExpense = models.Extremum{Month: name, Amount: row.Expense}
		}
	}

	return result
}

// BucketByBillingCycle splits credit entries of a billing year into twelve
// rows. Each entry lands in the first cycle containing it; entries outside
// the billing year are dropped. Rows keep their entries, newest first.
func BucketByBillingCycle(yearCE int, loc *time.Location, txs []models.Transaction) []models.MonthlySummary {
	cycles := calendar.BillingCycles(yearCE, loc)
	buckets := make([][]models.Transaction, len(cycles))

	// Cycle ends widen to the end of day, the bound FilterByRange queries with.
	var bounds [12]calendar.DateRange
	for i, cycle := range cycles {
		bounds[i] = calendar.DateRange{Start: cycle.Start, End: calendar.EndOfDay(cycle.End)}
	}

	for _, tx := range txs {
		for i, bound := range bounds {
			if bound.Contains(tx.Date) {
				buckets[i] = append(buckets[i], tx)
				break
			}
		}
	}

	rows := make([]models.MonthlySummary, 0, len(cycles))
	for i, cycle := range cycles {
		period := models.ResolvedPeriod{Month: calendar.Month(i), Range: cycle}
		row := SummarizeMonth(models.KindCredit, period, buckets[i])
		sortByDate(buckets[i], models.SortDescending)
		row.Transactions = buckets[i]
		if row.Transactions == nil {
			row.Transactions = []models.Transaction{}
		}
		rows = append(rows, row)
	}
	return rows
}

// sortByDate orders entries in place. Equal dates keep their relative order.
func sortByDate(txs []models.Transaction, order models.SortOrder) {
	sort.SliceStable(txs, func(i, j int) bool {
		if order == models.SortDescending {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].Date.Before(txs[j].Date)
	})
}
