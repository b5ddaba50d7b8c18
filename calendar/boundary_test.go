package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBoundaries(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	base := time.Date(2025, 6, 11, 14, 45, 30, 123456789, time.UTC)

	start := StartOfDay(base)
	assert.Equal(t, "2025-06-11 00:00:00.000", start.Format("2006-01-02 15:04:05.000"))

	end := EndOfDay(base)
	assert.Equal(t, "2025-06-11 23:59:59.999", end.Format("2006-01-02 15:04:05.000"))
}

func TestWeekBoundaries(t *testing.T) {
	base := time.Date(2025, 6, 11, 14, 45, 0, 0, time.UTC) // Wednesday

	t.Run("DefaultSundayStart", func(t *testing.T) {
		start := StartOfWeek(base)
		assert.Equal(t, "2025-06-08", start.Format("2006-01-02"))
		assert.Equal(t, time.Sunday, start.Weekday())

		end := EndOfWeek(base)
		assert.Equal(t, "2025-06-14 23:59:59.999", end.Format("2006-01-02 15:04:05.000"))
		assert.Equal(t, time.Saturday, end.Weekday())
	})

	t.Run("MondayStart", func(t *testing.T) {
		start := StartOfWeek(base, time.Monday)
		assert.Equal(t, "2025-06-09", start.Format("2006-01-02"))

		end := EndOfWeek(base, time.Monday)
		assert.Equal(t, "2025-06-15", end.Format("2006-01-02"))
	})

	t.Run("WeekStartOnSameDay", func(t *testing.T) {
		// The boundary is the configured weekday at or before the input date.
		start := StartOfWeek(base, time.Wednesday)
		assert.Equal(t, "2025-06-11", start.Format("2006-01-02"))
	})
}

func TestMonthBoundaries(t *testing.T) {
	base := time.Date(2025, 6, 11, 14, 45, 0, 0, time.UTC)

	start := StartOfMonth(base)
	assert.Equal(t, "2025-06-01 00:00:00.000", start.Format("2006-01-02 15:04:05.000"))

	end := EndOfMonth(base)
	assert.Equal(t, "2025-06-30 23:59:59.999", end.Format("2006-01-02 15:04:05.000"))
}

// February of a leap year spans exactly 29 days.
func TestMonthBoundaries_LeapFebruary(t *testing.T) {
	base := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	start := StartOfMonth(base)
	end := EndOfMonth(base)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, 29, end.Day())

	days, err := DifferenceIn(StartOfDay(end), start, Day)
	require.NoError(t, err)
	assert.Equal(t, 28, days) // 29 inclusive days, 28 whole day steps
}

func TestYearBoundaries(t *testing.T) {
	base := time.Date(2025, 6, 11, 14, 45, 0, 0, time.UTC)

	start := StartOfYear(base)
	assert.Equal(t, "2025-01-01 00:00:00.000", start.Format("2006-01-02 15:04:05.000"))

	end := EndOfYear(base)
	assert.Equal(t, "2025-12-31 23:59:59.999", end.Format("2006-01-02 15:04:05.000"))
}

func TestBoundariesPreserveLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	base := time.Date(2025, 6, 11, 14, 45, 0, 0, loc)

	assert.Equal(t, loc, StartOfDay(base).Location())
	assert.Equal(t, loc, EndOfMonth(base).Location())
	assert.Equal(t, loc, StartOfYear(base).Location())
}
