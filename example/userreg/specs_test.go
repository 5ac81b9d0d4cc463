package userreg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	available bool
}

func (s stubChecker) IsAvailable(ctx context.Context, username string) bool {
	return s.available
}

type stubFilter struct {
	profane bool
}

func (s stubFilter) IsProfane(ctx context.Context, word string) bool {
	return s.profane
}

func TestHasValidPassword(t *testing.T) {
	ctx := context.Background()
	hasValidPassword := HasValidPassword()

	assert.True(t, hasValidPassword.IsSatisfiedBy(ctx, User{Username: "alice", Password: "longenough1"}))
	assert.False(t, hasValidPassword.IsSatisfiedBy(ctx, User{Username: "alice", Password: "short"}))
	assert.False(t, hasValidPassword.IsSatisfiedBy(ctx, User{Username: "alice", Password: "nodigitsatall"}))
	assert.False(t, hasValidPassword.IsSatisfiedBy(ctx, User{Username: "alice", Password: "short1"}))
}

func TestHasAvailableUsername(t *testing.T) {
	ctx := context.Background()
	hasAvailableUsername := HasAvailableUsername(stubChecker{available: true})

	assert.True(t, hasAvailableUsername.IsSatisfiedBy(ctx, User{Username: "alice"}))
	// empty username fails even when the checker would say yes
	assert.False(t, hasAvailableUsername.IsSatisfiedBy(ctx, User{Username: ""}))

	taken := HasAvailableUsername(stubChecker{available: false})
	assert.False(t, taken.IsSatisfiedBy(ctx, User{Username: "alice"}))
}

func TestRegistrationComposite(t *testing.T) {
	ctx := context.Background()
	hasValidPassword := HasValidPassword()
	hasAvailableUsername := HasAvailableUsername(stubChecker{available: true})
	composite := hasValidPassword.And(hasAvailableUsername)

	assert.False(t, composite.IsSatisfiedBy(ctx, User{Username: "", Password: "longenough1"}))
	assert.False(t, composite.IsSatisfiedBy(ctx, User{Username: "alice", Password: "short"}))
	assert.True(t, composite.IsSatisfiedBy(ctx, User{Username: "alice", Password: "longenough1"}))
}

func TestCanRegister(t *testing.T) {
	ctx := context.Background()
	filter := NewWordListFilter("heck")
	canRegister := CanRegister(stubChecker{available: true}, filter)

	assert.True(t, canRegister.IsSatisfiedBy(ctx, User{Username: "alice", Password: "longenough1"}))
	assert.False(t, canRegister.IsSatisfiedBy(ctx, User{Username: "heck", Password: "longenough1"}))
	assert.False(t, canRegister.IsSatisfiedBy(ctx, User{Username: "alice", Password: "short"}))

	unavailable := CanRegister(stubChecker{available: false}, filter)
	assert.False(t, unavailable.IsSatisfiedBy(ctx, User{Username: "alice", Password: "longenough1"}))
}

func TestHasCleanUsername(t *testing.T) {
	ctx := context.Background()
	assert.True(t, HasCleanUsername(stubFilter{profane: false}).IsSatisfiedBy(ctx, User{Username: "alice"}))
	assert.False(t, HasCleanUsername(stubFilter{profane: true}).IsSatisfiedBy(ctx, User{Username: "alice"}))
}
