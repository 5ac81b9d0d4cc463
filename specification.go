// Package specification implements the specification pattern: a boolean
// condition over values of type T encapsulated as an object that can be
// combined with other conditions through logical AND, OR and NOT.
package specification

import "context"

// Specification interface.
// Use New to wrap a predicate function as a leaf specification; composites are
// created with And, Or, Not, Conjunction and Disjunction, or with the methods
// of the same names.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current
	// specification and another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current
	// specification and another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current
	// specification.
	Not() Specification[T]

	// Conjunction create a new specification that is the AND operation of the
	// current specification and all the others.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification that is the OR operation of the
	// current specification and all the others.
	Disjunction(others ...Specification[T]) Specification[T]
}

var (
	_ Specification[any] = (*base[any])(nil)
	_ Specification[any] = (*and[any])(nil)
	_ Specification[any] = (*or[any])(nil)
	_ Specification[any] = (*not[any])(nil)
	_ Specification[any] = (*conjunction[any])(nil)
	_ Specification[any] = (*disjunction[any])(nil)
)

// New wraps predicate into a leaf specification. The predicate is invoked
// directly on every evaluation, with no caching.
// New panics with ErrNilPredicate if predicate is nil.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	if predicate == nil {
		panic(ErrNilPredicate)
	}
	spec := &base[T]{predicate: predicate}
	spec.composite.self = spec
	return spec
}
