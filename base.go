package specification

import "context"

// base is the expression leaf: a specification backed by a single predicate
// function captured at construction.
type base[T any] struct {
	composite[T]
	predicate func(ctx context.Context, t T) bool
}

func (spec *base[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.predicate(ctx, t)
}
