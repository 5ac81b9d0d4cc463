package userreg

import "context"

// AvailabilityChecker reports whether a username is still free to claim.
// Implementations may call out to external systems and must be safe for
// concurrent use.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, username string) bool
}

// ProfanityFilter reports whether a word is objectionable.
type ProfanityFilter interface {
	IsProfane(ctx context.Context, word string) bool
}
