package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "nil", input: nil, expected: "0"},
		{name: "float", input: 1250.75, expected: "1250.75"},
		{name: "int", input: 400, expected: "400"},
		{name: "int64", input: int64(7), expected: "7"},
		{name: "decimal", input: decimal.RequireFromString("99.99"), expected: "99.99"},
		{name: "numeric string", input: "1000", expected: "1000"},
		{name: "string with spaces", input: "  42.5 ", expected: "42.5"},
		{name: "leading number with suffix", input: "12.5 baht", expected: "12.5"},
		{name: "trailing dot", input: "15.", expected: "15"},
		{name: "leading dot", input: ".5", expected: "0.5"},
		{name: "exponent", input: "1e3", expected: "1000"},
		{name: "thousands separator stops parsing", input: "1,200", expected: "1"},
		{name: "non numeric string", input: "abc", expected: "0"},
		{name: "empty string", input: "", expected: "0"},
		{name: "json number", input: json.Number("3.25"), expected: "3.25"},
		{name: "bytes", input: []byte("8"), expected: "8"},
		{name: "NaN", input: math.NaN(), expected: "0"},
		{name: "infinity", input: math.Inf(1), expected: "0"},
		{name: "bool", input: true, expected: "0"},
		{name: "map", input: map[string]int{"a": 1}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got.String())
		})
	}
}
