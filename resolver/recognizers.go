package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hrygo/timesense/calendar"
)

// Pre-compiled phrase-family patterns. All are anchored at the start of the
// normalized input; trailing text becomes the remaining span.
var (
	keywordPattern = regexp.MustCompile(`^(today|now|tomorrow|yesterday)\b`)

	agoPattern   = regexp.MustCompile(`^(\d+)\s+(millisecond|second|minute|hour|day|week|month|year)s?\s+ago\b`)
	aheadPattern = regexp.MustCompile(`^(?:in\s+)?(\d+)\s+(millisecond|second|minute|hour|day|week|month|year)s?(?:\s+(?:from\s+now|ahead))?\b`)

	weekdayPattern = regexp.MustCompile(`^(next|last|this)\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	periodPattern = regexp.MustCompile(`^(beginning|start|end)\s+of\s+(?:the\s+)?(week|month)\b`)

	clockPattern = regexp.MustCompile(`^(noon|midnight)\b`)
)

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// spanResult splits input into matched/remaining spans around the pattern match
// and pairs them with the resolved instant.
func spanResult(input string, end int, instant time.Time, confidence float64) Result {
	return Result{
		Instant:    instant,
		Confidence: confidence,
		Matched:    strings.TrimSpace(input[:end]),
		Remaining:  strings.TrimSpace(input[end:]),
	}
}

// recognizeKeyword handles today, now, tomorrow and yesterday.
// All four resolve to start of day.
func recognizeKeyword(input string, ref time.Time) Result {
	m := keywordPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return Result{}
	}

	var t time.Time
	switch input[m[2]:m[3]] {
	case "today", "now":
		t = calendar.StartOfDay(ref)
	case "tomorrow":
		t = calendar.StartOfDay(ref.AddDate(0, 0, 1))
	case "yesterday":
		t = calendar.StartOfDay(ref.AddDate(0, 0, -1))
	}
	return spanResult(input, m[1], t, ConfidenceKeyword)
}

// recognizeOffset handles "N <unit>s ago" and "[in ]N <unit>s[ from now|ahead]".
// The past form is tried first so that "3 days ago" is not claimed by the
// future pattern with "ago" left over.
func recognizeOffset(input string, ref time.Time) Result {
	if m := agoPattern.FindStringSubmatchIndex(input); m != nil {
		n, err := strconv.Atoi(input[m[2]:m[3]])
		if err != nil {
			// Amount overflows int; not a claimable offset.
			return Result{}
		}
		t, err := calendar.Subtract(ref, n, calendar.Unit(input[m[4]:m[5]]))
		if err != nil {
			return Result{}
		}
		return spanResult(input, m[1], t, ConfidenceOffset)
	}

	if m := aheadPattern.FindStringSubmatchIndex(input); m != nil {
		n, err := strconv.Atoi(input[m[2]:m[3]])
		if err != nil {
			return Result{}
		}
		t, err := calendar.Add(ref, n, calendar.Unit(input[m[4]:m[5]]))
		if err != nil {
			return Result{}
		}
		return spanResult(input, m[1], t, ConfidenceOffset)
	}

	return Result{}
}

// recognizeWeekday handles "(next|last|this) <weekday>".
//
// With delta = target − current weekday (0 = Sunday): "next" is strictly
// future (delta ≤ 0 adds 7), "last" strictly past (delta ≥ 0 subtracts 7), and
// "this" is the nearest occurrence at or after the reference, which may be the
// reference day itself.
func recognizeWeekday(input string, ref time.Time) Result {
	m := weekdayPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return Result{}
	}

	target := weekdayIndex[input[m[4]:m[5]]]
	delta := int(target) - int(ref.Weekday())

	switch input[m[2]:m[3]] {
	case "next":
		if delta <= 0 {
			delta += 7
		}
	case "last":
		if delta >= 0 {
			delta -= 7
		}
	case "this":
		if delta < 0 {
			delta += 7
		}
	}

	t := calendar.StartOfDay(ref.AddDate(0, 0, delta))
	return spanResult(input, m[1], t, ConfidenceWeekday)
}

// recognizePeriod handles "(beginning|start|end) of [the ](week|month)",
// delegating to the calendar boundary functions.
func recognizePeriod(input string, ref time.Time) Result {
	m := periodPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return Result{}
	}

	isEnd := input[m[2]:m[3]] == "end"

	var t time.Time
	switch input[m[4]:m[5]] {
	case "week":
		if isEnd {
			t = calendar.EndOfWeek(ref)
		} else {
			t = calendar.StartOfWeek(ref)
		}
	case "month":
		if isEnd {
			t = calendar.EndOfMonth(ref)
		} else {
			t = calendar.StartOfMonth(ref)
		}
	}
	return spanResult(input, m[1], t, ConfidencePeriod)
}

// recognizeClock handles "noon" and "midnight" on the reference date.
func recognizeClock(input string, ref time.Time) Result {
	m := clockPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return Result{}
	}

	hour := 0
	if input[m[2]:m[3]] == "noon" {
		hour = 12
	}
	t := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, 0, 0, 0, ref.Location())
	return spanResult(input, m[1], t, ConfidenceClock)
}
