package specification

import "context"

// not used to create a new specification that is the inverse (NOT) of the given spec.
type not[T any] struct {
	composite[T]
	spec Specification[T]
}

// Not create a new specification that is satisfied when spec is not satisfied.
func Not[T any](spec Specification[T]) Specification[T] {
	notSpec := &not[T]{spec: spec}
	notSpec.composite.self = notSpec
	return notSpec
}

func (spec *not[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return !spec.spec.IsSatisfiedBy(ctx, t)
}
