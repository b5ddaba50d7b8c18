package calendar

import "time"

// Day boundaries sit at millisecond resolution: 00:00:00.000 and 23:59:59.999.
const endOfDayNanos = int(999 * time.Millisecond)

// StartOfDay returns 00:00:00.000 on t's date, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 on t's date, in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, endOfDayNanos, t.Location())
}

// StartOfWeek returns the start of the configured weekday at or before t.
// The week starts on Sunday unless weekStart is given.
func StartOfWeek(t time.Time, weekStart ...time.Weekday) time.Time {
	ws := time.Sunday
	if len(weekStart) > 0 {
		ws = weekStart[0]
	}
	delta := (int(t.Weekday()) - int(ws) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -delta)
}

// EndOfWeek returns the end of the sixth day after the week start.
func EndOfWeek(t time.Time, weekStart ...time.Weekday) time.Time {
	return EndOfDay(StartOfWeek(t, weekStart...).AddDate(0, 0, 6))
}

// StartOfMonth returns 00:00:00.000 on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns 23:59:59.999 on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// StartOfYear returns 00:00:00.000 on January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns 23:59:59.999 on December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, endOfDayNanos, t.Location())
}
