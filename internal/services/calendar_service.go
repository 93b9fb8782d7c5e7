package services

import (
	"time"

	"household-ledger/internal/calendar"
)

type calendarService struct {
	yearRangeSize int
	loc           *time.Location
	now           func() time.Time
}

// NewCalendarService creates the calendar helper. yearRangeSize is the
// number of years offered when the client does not ask for a count.
func NewCalendarService(yearRangeSize int, loc *time.Location) CalendarServiceInterface {
	if loc == nil {
		loc = time.Local
	}
	return &calendarService{
		yearRangeSize: yearRangeSize,
		loc:           loc,
		now:           time.Now,
	}
}

func (s *calendarService) CurrentYearBE() int {
	return calendar.CurrentYearBE(s.now().In(s.loc))
}

func (s *calendarService) DefaultYearCount() int {
	return s.yearRangeSize
}

// YearRange lists n BE years counting back from the current one. n <= 0
// yields an empty list.
func (s *calendarService) YearRange(n int) []int {
	return calendar.YearRange(n, s.CurrentYearBE())
}

func (s *calendarService) BillingCycle(month calendar.Month, yearBE int) calendar.DateRange {
	return calendar.BillingCycleIn(month, calendar.ToCE(yearBE), s.loc)
}

func (s *calendarService) BillingYear(yearBE int) calendar.DateRange {
	return calendar.BillingYearIn(calendar.ToCE(yearBE), s.loc)
}

func (s *calendarService) Location() *time.Location {
	return s.loc
}
