package specification

import "context"

// conjunction used to create a new specification that is the AND of any
// number of other specifications.
type conjunction[T any] struct {
	composite[T]
	specs []Specification[T]
}

// Conjunction create a new specification that is satisfied only when every
// spec is satisfied. An empty conjunction is satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &conjunction[T]{specs: specs}
	spec.composite.self = spec
	return spec
}

// IsSatisfiedBy evaluates every sub-specification, no short-circuit;
// predicates may carry side effects.
func (spec *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	satisfied := true
	for _, sub := range spec.specs {
		if !sub.IsSatisfiedBy(ctx, t) {
			satisfied = false
		}
	}
	return satisfied
}
