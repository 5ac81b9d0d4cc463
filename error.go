package specification

import "errors"

var (
	// ErrNilPredicate New was given a nil predicate function.
	ErrNilPredicate = errors.New("predicate is nil")
)
