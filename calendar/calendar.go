// Package calendar provides mutation-free calendar arithmetic over time.Time values.
//
// All functions return fresh values and never modify their inputs. Month and year
// arithmetic follows Go's native field-overflow semantics: adding one month to
// January 31 rolls into early March rather than clamping to the last day of
// February.
package calendar

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Errors reported for unrecognized units.
var (
	// ErrInvalidUnit is returned by Add and Subtract.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrUnknownUnit is returned by DifferenceIn and ParseUnit.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Unit is a clock or calendar unit of time.
type Unit string

// The eight recognized units.
const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Week        Unit = "week"
	Month       Unit = "month"
	Year        Unit = "year"
)

// fixedDurations maps the fixed-length units to their durations. Month and year
// are calendar-aware and handled separately.
var fixedDurations = map[Unit]time.Duration{
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         24 * time.Hour,
	Week:        7 * 24 * time.Hour,
}

// ParseUnit parses a lowercase unit name, singular or plural.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	switch u {
	case Millisecond, Second, Minute, Hour, Day, Week, Month, Year:
		return u, nil
	}
	return "", errors.Wrapf(ErrUnknownUnit, "%q", s)
}

// Add returns t shifted by a signed amount of unit.
//
// Millisecond through week use fixed-duration addition (week = 7 days). Month and
// year shift the calendar field directly, preserving day-of-month and clock time
// where valid and rolling over on overflow, e.g. 2025-01-31 + 1 month = 2025-03-03.
func Add(t time.Time, amount int, unit Unit) (time.Time, error) {
	switch unit {
	case Month:
		return t.AddDate(0, amount, 0), nil
	case Year:
		return t.AddDate(amount, 0, 0), nil
	}
	if d, ok := fixedDurations[unit]; ok {
		return t.Add(time.Duration(amount) * d), nil
	}
	return time.Time{}, errors.Wrapf(ErrInvalidUnit, "%q", unit)
}

// Subtract returns t shifted backward by a signed amount of unit.
func Subtract(t time.Time, amount int, unit Unit) (time.Time, error) {
	return Add(t, -amount, unit)
}

// DifferenceIn returns the signed difference a − b expressed in whole units.
//
// Fixed-length units divide the elapsed duration, truncating toward zero. Month
// and year subtract calendar fields directly and ignore any day or clock
// remainder.
func DifferenceIn(a, b time.Time, unit Unit) (int, error) {
	switch unit {
	case Month:
		return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month()), nil
	case Year:
		return a.Year() - b.Year(), nil
	}
	if d, ok := fixedDurations[unit]; ok {
		return int(a.Sub(b) / d), nil
	}
	return 0, errors.Wrapf(ErrUnknownUnit, "%q", unit)
}
