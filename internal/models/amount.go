package models

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount coerces a loosely typed amount into a decimal. Strings are
// read up to the first character that cannot continue a number, so "12.5 baht"
// yields 12.5. Anything that cannot be read as a number yields zero.
func ParseAmount(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	case []byte:
		return parseAmountString(string(v))
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseAmountString(s string) decimal.Decimal {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
