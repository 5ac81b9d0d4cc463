package specification

import "context"

// and used to create a new specification that is the AND of two other specifications.
type and[T any] struct {
	composite[T]
	left  Specification[T]
	right Specification[T]
}

// And create a new specification that is satisfied only when both left and
// right are satisfied.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &and[T]{left: left, right: right}
	spec.composite.self = spec
	return spec
}

// IsSatisfiedBy evaluates both sides unconditionally, no short-circuit;
// predicates may carry side effects.
func (spec *and[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	left := spec.left.IsSatisfiedBy(ctx, t)
	right := spec.right.IsSatisfiedBy(ctx, t)
	return left && right
}
