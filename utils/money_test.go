package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "1200.00", FormatAmount(decimal.NewFromInt(1200)))
	assert.Equal(t, "99.50", FormatAmount(decimal.RequireFromString("99.5")))
	assert.Equal(t, "10.56", FormatAmount(decimal.RequireFromString("10.555")))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("150.75", "amount")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("150.75")))

	_, err = ParseAmount("-1", "amount")
	require.Error(t, err)
	assert.Equal(t, 400, HTTPStatus(err))
	assert.Contains(t, err.Error(), "must not be negative")

	_, err = ParseAmount("twelve", "rent")
	require.Error(t, err)
	assert.Equal(t, 400, HTTPStatus(err))
}

func TestAmountFromFloat_KeepsShortDecimal(t *testing.T) {
	assert.Equal(t, "12.30", FormatAmount(AmountFromFloat(12.3)))
	assert.Equal(t, "0.10", FormatAmount(AmountFromFloat(0.1)))
}
