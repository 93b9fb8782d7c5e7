package calendar

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMonth = errors.New("invalid month")

// Month is a calendar month with a zero-based index (January = 0).
type Month int

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var thaiMonthNames = [12]string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

var englishMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months returns all twelve months in calendar order.
func Months() []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = Month(i)
	}
	return months
}

func (m Month) IsValid() bool {
	return m >= January && m <= December
}

func (m Month) Index() int {
	return int(m)
}

// Number returns the 1-based month number used by time.Month.
func (m Month) Number() int {
	return int(m) + 1
}

func (m Month) ThaiName() string {
	if !m.IsValid() {
		return ""
	}
	return thaiMonthNames[m]
}

func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return englishMonthNames[m]
}

// MonthFromIndex converts a zero-based index into a Month.
func MonthFromIndex(index int) (Month, error) {
	m := Month(index)
	if !m.IsValid() {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidMonth, index)
	}
	return m, nil
}

// ParseMonth accepts a Thai month name or an English month name (case-insensitive).
func ParseMonth(name string) (Month, error) {
	name = strings.TrimSpace(name)
	for i, thai := range thaiMonthNames {
		if name == thai {
			return Month(i), nil
		}
	}
	for i, english := range englishMonthNames {
		if strings.EqualFold(name, english) {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
}

func (m Month) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidMonth, int(m))
	}
	return json.Marshal(m.ThaiName())
}

// UnmarshalJSON accepts either a month name or a zero-based index.
func (m *Month) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseMonth(name)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMonth, string(data))
	}
	parsed, err := MonthFromIndex(index)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores the month as its Thai display name.
func (m Month) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidMonth, int(m))
	}
	return m.ThaiName(), nil
}

func (m *Month) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case int64:
		parsed, err := MonthFromIndex(int(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidMonth, value)
	}

	if index, err := strconv.Atoi(raw); err == nil {
		parsed, err := MonthFromIndex(index)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	parsed, err := ParseMonth(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
