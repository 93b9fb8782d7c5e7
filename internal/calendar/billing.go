package calendar

import (
	"time"
)

const billingCycleStartDay = 13

// BillingCycle returns the credit-card statement window that closes in the
// given month: the 13th of the previous month through the 12th at 23:59:59.
// January rolls back into December of the previous year.
func BillingCycle(month Month, yearCE int) DateRange {
	return BillingCycleIn(month, yearCE, time.Local)
}

func BillingCycleIn(month Month, yearCE int, loc *time.Location) DateRange {
	start := time.Date(yearCE, time.Month(month.Number()-1), billingCycleStartDay, 0, 0, 0, 0, loc)
	end := time.Date(yearCE, time.Month(month.Number()), billingCycleStartDay-1, 23, 59, 59, 0, loc)
	return DateRange{Start: start, End: end}
}

// BillingYear spans all twelve cycles that close within yearCE.
func BillingYear(yearCE int) DateRange {
	return BillingYearIn(yearCE, time.Local)
}

func BillingYearIn(yearCE int, loc *time.Location) DateRange {
	return DateRange{
		Start: BillingCycleIn(January, yearCE, loc).Start,
		End:   BillingCycleIn(December, yearCE, loc).End,
	}
}

// BillingCycles returns the twelve cycles of yearCE in month order.
func BillingCycles(yearCE int, loc *time.Location) [12]DateRange {
	var cycles [12]DateRange
	for _, m := range Months() {
		cycles[m] = BillingCycleIn(m, yearCE, loc)
	}
	return cycles
}
