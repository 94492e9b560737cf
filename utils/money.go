package utils

import (
	"github.com/shopspring/decimal"
)

// Monetary values are kept as exact decimals internally and rendered as
// fixed 2-decimal strings at the API boundary.

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount converts a client-supplied amount into a decimal, rejecting
// negatives and unparseable input.
func ParseAmount(raw string, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ValidationError("invalid %s: %q", field, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, ValidationError("%s must not be negative", field)
	}
	return d, nil
}

// AmountFromFloat is for JSON numeric payloads; it round-trips through the
// float's shortest decimal representation so 12.30 stays 12.3, not 12.2999...
func AmountFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
