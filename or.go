package specification

import "context"

// or used to create a new specification that is the OR of two other specifications.
type or[T any] struct {
	composite[T]
	left  Specification[T]
	right Specification[T]
}

// Or create a new specification that is satisfied when either left or right
// is satisfied.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &or[T]{left: left, right: right}
	spec.composite.self = spec
	return spec
}

// IsSatisfiedBy evaluates both sides unconditionally, no short-circuit;
// predicates may carry side effects.
func (spec *or[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	left := spec.left.IsSatisfiedBy(ctx, t)
	right := spec.right.IsSatisfiedBy(ctx, t)
	return left || right
}
