package resolver

import (
	"context"
	"time"
)

// PhraseService defines the phrase resolution service interface.
type PhraseService interface {
	// ResolveNatural resolves a phrase against the reference instant.
	// A zero reference means the current time at the call.
	ResolveNatural(ctx context.Context, input string, reference time.Time) Result

	// Resolve returns only the resolved instant.
	Resolve(ctx context.Context, input string, reference time.Time) (time.Time, bool)

	// CanResolve reports whether input resolves above the fallback tier.
	CanResolve(ctx context.Context, input string, reference time.Time) bool
}
