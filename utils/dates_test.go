package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", FormatDate(d))

	_, err = ParseDate("14/03/2025")
	require.Error(t, err)
	assert.Equal(t, 400, HTTPStatus(err))
}

func TestDaysBetween(t *testing.T) {
	day := func(raw string) datatypes.Date {
		d, err := ParseDate(raw)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 0, DaysBetween(day("2025-01-10"), day("2025-01-10")))
	assert.Equal(t, 1, DaysBetween(day("2025-01-10"), day("2025-01-11")))
	assert.Equal(t, 31, DaysBetween(day("2025-01-01"), day("2025-02-01")))
	// crosses a DST change without gaining or losing a day
	assert.Equal(t, 2, DaysBetween(day("2025-03-29"), day("2025-03-31")))
	assert.Equal(t, -1, DaysBetween(day("2025-01-11"), day("2025-01-10")))
}

func TestDateBefore(t *testing.T) {
	a, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	b, err := ParseDate("2025-06-02")
	require.NoError(t, err)

	assert.True(t, DateBefore(a, b))
	assert.False(t, DateBefore(b, a))
	assert.False(t, DateBefore(a, a))
}
