package calendar

import "time"

// BEOffset is the difference between a Buddhist Era year and its Gregorian year.
const BEOffset = 543

func ToBE(yearCE int) int {
	return yearCE + BEOffset
}

func ToCE(yearBE int) int {
	return yearBE - BEOffset
}

// CurrentYearBE returns the Buddhist Era year of now.
func CurrentYearBE(now time.Time) int {
	return ToBE(now.Year())
}

// YearRange lists n BE years in descending order starting at fromBE.
// A non-positive n yields an empty list.
func YearRange(n, fromBE int) []int {
	if n <= 0 {
		return []int{}
	}

	years := make([]int, n)
	for i := 0; i < n; i++ {
		years[i] = fromBE - i
	}
	return years
}
