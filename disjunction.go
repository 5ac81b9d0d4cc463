package specification

import "context"

// disjunction used to create a new specification that is the OR of any
// number of other specifications.
type disjunction[T any] struct {
	composite[T]
	specs []Specification[T]
}

// Disjunction create a new specification that is satisfied when at least one
// spec is satisfied. An empty disjunction is not satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &disjunction[T]{specs: specs}
	spec.composite.self = spec
	return spec
}

// IsSatisfiedBy evaluates every sub-specification, no short-circuit;
// predicates may carry side effects.
func (spec *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	satisfied := false
	for _, sub := range spec.specs {
		if sub.IsSatisfiedBy(ctx, t) {
			satisfied = true
		}
	}
	return satisfied
}
