// Package resolver maps informal English date phrases to concrete instants.
//
// A fixed chain of recognizers is tried in priority order; the first match wins
// and carries its family's confidence tier. Inputs that no recognizer claims fall
// back to generic date-literal parsing at the lowest non-zero confidence. The
// resolver is stateless and safe for concurrent use.
package resolver

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// Confidence tiers, one per recognizer family. The ordering is total and fixed:
// a keyword match always outranks an offset match, and so on down to the
// fallback tier.
const (
	ConfidenceKeyword  = 0.95
	ConfidenceOffset   = 0.90
	ConfidenceWeekday  = 0.85
	ConfidencePeriod   = 0.80
	ConfidenceClock    = 0.75
	ConfidenceFallback = 0.50
)

// ErrInvalidTimestamp is returned by ParseInstant for unparseable values.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Result is the outcome of a single resolution attempt.
// Instant is the zero value exactly when Confidence is 0.
type Result struct {
	Instant    time.Time
	Confidence float64
	// Matched is the substring consumed by the winning recognizer, and
	// Remaining is the rest of the normalized input, both trimmed.
	Matched   string
	Remaining string
}

// Resolved reports whether the attempt produced an instant.
func (r Result) Resolved() bool {
	return r.Confidence > 0
}

// Options configure a resolution attempt.
type Options struct {
	// Reference is the "now" baseline for relative phrases.
	// The zero value means the current time at the call.
	Reference time.Time

	// Strict disables the generic date-literal fallback tier.
	Strict bool
}

// Recognizer matches one phrase family against a normalized (trimmed,
// lowercased) input. Recognizers are pure functions; ordering lives entirely in
// the chain.
type Recognizer func(input string, ref time.Time) Result

// chain is the fixed priority order. The first non-empty match short-circuits.
var chain = []Recognizer{
	recognizeKeyword,
	recognizeOffset,
	recognizeWeekday,
	recognizePeriod,
	recognizeClock,
}

// ResolveNatural resolves a free-text phrase against the reference instant.
// It never fails: malformed input yields a Result with Confidence 0.
func ResolveNatural(input string, opts *Options) Result {
	var o Options
	if opts != nil {
		o = *opts
	}
	ref := o.Reference
	if ref.IsZero() {
		ref = time.Now()
	}

	normalized := normalize(input)

	for _, recognize := range chain {
		if r := recognize(normalized, ref); r.Resolved() {
			return r
		}
	}

	if !o.Strict {
		// The fallback parses the original input: date literals such as
		// "Dec 25, 2025" are case-sensitive in some layouts.
		trimmed := strings.TrimSpace(input)
		// A year-one literal parses to the zero time; reject it so that a zero
		// Instant always means confidence 0.
		if t, err := dateparse.ParseIn(trimmed, ref.Location()); err == nil && !t.IsZero() {
			return Result{
				Instant:    t,
				Confidence: ConfidenceFallback,
				Matched:    trimmed,
			}
		}
	}

	return Result{Remaining: normalized}
}

// normalize trims whitespace and case-folds before any recognizer runs.
func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Resolve returns only the resolved instant, with ok false when nothing
// matched.
func Resolve(input string, opts *Options) (time.Time, bool) {
	r := ResolveNatural(input, opts)
	return r.Instant, r.Resolved()
}

// CanResolve reports whether input resolves above the fallback tier. Fallback
// matches are deliberately excluded: they are low-trust by construction.
func CanResolve(input string, opts *Options) bool {
	return ResolveNatural(input, opts).Confidence > ConfidenceFallback
}

// ParseInstant parses a concrete absolute timestamp, for callers that need a
// reference instant rather than a phrase. Unlike ResolveNatural it fails
// loudly on garbage.
func ParseInstant(value string) (time.Time, error) {
	t, err := dateparse.ParseLocal(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "%q", value)
	}
	return t, nil
}
