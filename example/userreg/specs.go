package userreg

import (
	"context"
	"strings"
	"unicode"

	"github.com/go-leo/specification"
)

// HasValidPassword is satisfied by passwords longer than 8 characters that
// contain at least one digit.
func HasValidPassword() specification.Specification[User] {
	return specification.New[User](func(ctx context.Context, user User) bool {
		if len(user.Password) <= 8 {
			return false
		}
		return strings.IndexFunc(user.Password, unicode.IsDigit) >= 0
	})
}

// HasAvailableUsername is satisfied by non-empty usernames the checker
// reports available. An empty username fails without consulting the checker.
func HasAvailableUsername(checker AvailabilityChecker) specification.Specification[User] {
	return specification.New[User](func(ctx context.Context, user User) bool {
		if user.Username == "" {
			return false
		}
		return checker.IsAvailable(ctx, user.Username)
	})
}

// HasCleanUsername is satisfied by usernames the filter does not flag.
func HasCleanUsername(filter ProfanityFilter) specification.Specification[User] {
	return specification.New[User](func(ctx context.Context, user User) bool {
		return !filter.IsProfane(ctx, user.Username)
	})
}

// CanRegister combines the registration rules into a single specification.
func CanRegister(checker AvailabilityChecker, filter ProfanityFilter) specification.Specification[User] {
	return HasValidPassword().
		And(HasAvailableUsername(checker)).
		And(HasCleanUsername(filter))
}
