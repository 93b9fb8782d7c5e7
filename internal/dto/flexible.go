package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// FlexibleAmount accepts a JSON number, a numeric string or null. Values
// that cannot be read as a number become zero.
type FlexibleAmount struct {
	decimal.Decimal
}

func NewFlexibleAmount(d decimal.Decimal) FlexibleAmount {
	return FlexibleAmount{Decimal: d}
}

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = models.ParseAmount(raw)
	return nil
}

func (a FlexibleAmount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}

// storeTimestamp is the {seconds, nanoseconds} shape exported by document stores.
type storeTimestamp struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

// FlexibleDate unifies the date encodings found in stored and submitted
// records: RFC 3339 strings, plain YYYY-MM-DD dates, and
// {seconds, nanoseconds} timestamps. Plain dates are read in Location.
type FlexibleDate struct {
	time.Time
}

// Location is used for plain YYYY-MM-DD dates. It is set once at startup.
var Location = time.UTC

func NewFlexibleDate(t time.Time) FlexibleDate {
	return FlexibleDate{Time: t}
}

func (d *FlexibleDate) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var ts storeTimestamp
		if err := json.Unmarshal(trimmed, &ts); err != nil || ts.Seconds == nil {
			return fmt.Errorf("%w: %s", ErrInvalidDate, string(trimmed))
		}
		d.Time = time.Unix(*ts.Seconds, ts.Nanoseconds)
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(trimmed))
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time)
}

// ParseDate reads an RFC 3339 timestamp or a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, Location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
