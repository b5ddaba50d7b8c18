// Package format renders resolved instants for display. It is a convenience
// layer for CLI and log output and carries no resolution logic.
package format

import (
	"fmt"
	"time"

	"github.com/hrygo/timesense/calendar"
)

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02 15:04:05.000"
)

// Date renders the calendar date of t.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Instant renders t at millisecond resolution.
func Instant(t time.Time) string {
	return t.Format(instantLayout)
}

// Relative renders a coarse human description of t against the reference
// instant, e.g. "in 3 days", "2 hours ago", "tomorrow".
func Relative(t, ref time.Time) string {
	days, _ := calendar.DifferenceIn(calendar.StartOfDay(t), calendar.StartOfDay(ref), calendar.Day)

	switch {
	case days == 0:
		hours, _ := calendar.DifferenceIn(t, ref, calendar.Hour)
		switch {
		case hours > 0:
			return fmt.Sprintf("in %s", pluralize(hours, "hour"))
		case hours < 0:
			return fmt.Sprintf("%s ago", pluralize(-hours, "hour"))
		default:
			return "today"
		}
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
