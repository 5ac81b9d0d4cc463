// Package userreg demonstrates composing user-registration rules with the
// specification package. It is illustrative usage, not part of the reusable
// core.
package userreg

// User is a registration candidate.
type User struct {
	Username string
	Password string
	Email    string
}
