package resolver

import (
	"context"
	"time"
)

// Service implements PhraseService with rule-based resolution.
type Service struct {
	strict bool
	now    func() time.Time
}

// NewService creates a new phrase resolution service.
func NewService() *Service {
	return &Service{now: time.Now}
}

// NewStrictService creates a service with the fallback tier disabled.
func NewStrictService() *Service {
	return &Service{strict: true, now: time.Now}
}

// WithClock returns a copy of the service using a fixed clock. Intended for
// tests that need a deterministic "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{strict: s.strict, now: now}
}

func (s *Service) options(reference time.Time) *Options {
	if reference.IsZero() {
		reference = s.now()
	}
	return &Options{Reference: reference, Strict: s.strict}
}

// ResolveNatural resolves a phrase against the reference instant.
func (s *Service) ResolveNatural(_ context.Context, input string, reference time.Time) Result {
	return ResolveNatural(input, s.options(reference))
}

// Resolve returns only the resolved instant.
func (s *Service) Resolve(_ context.Context, input string, reference time.Time) (time.Time, bool) {
	return Resolve(input, s.options(reference))
}

// CanResolve reports whether input resolves above the fallback tier.
func (s *Service) CanResolve(_ context.Context, input string, reference time.Time) bool {
	return CanResolve(input, s.options(reference))
}

// Ensure Service implements PhraseService
var _ PhraseService = (*Service)(nil)
