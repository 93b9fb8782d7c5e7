package calendar

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange builds an inclusive range whose end covers the whole calendar day.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: StartOfDay(start), End: EndOfDay(end)}
	if r.Start.After(r.End) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}
