package resolver

import (
	"context"
	"time"

	"github.com/hrygo/timesense/calendar"
)

// MockPhraseService is a minimal implementation of PhraseService for
// consumers' tests. It understands only the day keywords and reports
// everything else as unresolved.
type MockPhraseService struct {
	// FixedNow can be set to use a fixed "now" for testing
	FixedNow *time.Time
}

// NewMockPhraseService creates a new MockPhraseService.
func NewMockPhraseService() *MockPhraseService {
	return &MockPhraseService{}
}

// ResolveNatural resolves today/tomorrow/yesterday; anything else yields an
// empty result.
func (m *MockPhraseService) ResolveNatural(_ context.Context, input string, reference time.Time) Result {
	if reference.IsZero() {
		reference = m.clock()
	}

	offsets := map[string]int{
		"today":     0,
		"now":       0,
		"tomorrow":  1,
		"yesterday": -1,
	}

	normalized := normalize(input)
	offset, ok := offsets[normalized]
	if !ok {
		return Result{Remaining: normalized}
	}

	return Result{
		Instant:    calendar.StartOfDay(reference.AddDate(0, 0, offset)),
		Confidence: ConfidenceKeyword,
		Matched:    normalized,
	}
}

// Resolve returns only the resolved instant.
func (m *MockPhraseService) Resolve(ctx context.Context, input string, reference time.Time) (time.Time, bool) {
	r := m.ResolveNatural(ctx, input, reference)
	return r.Instant, r.Resolved()
}

// CanResolve reports whether input resolves above the fallback tier.
func (m *MockPhraseService) CanResolve(ctx context.Context, input string, reference time.Time) bool {
	return m.ResolveNatural(ctx, input, reference).Confidence > ConfidenceFallback
}

// clock returns the current time (or fixed time for testing).
func (m *MockPhraseService) clock() time.Time {
	if m.FixedNow != nil {
		return *m.FixedNow
	}
	return time.Now()
}

// Ensure MockPhraseService implements PhraseService
var _ PhraseService = (*MockPhraseService)(nil)
