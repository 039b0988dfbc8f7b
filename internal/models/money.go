package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw monetary cell to a decimal amount.
// Parsing failures and empty input degrade to zero rather than erroring,
// matching the lenient behavior expected from bulk tabular input.
// A decimal comma is accepted alongside the decimal point.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders an amount with two decimal places for display.
// All intermediate arithmetic stays unrounded; rounding happens only here.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
