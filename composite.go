package specification

// composite supplies the combinator methods shared by every concrete
// specification. self is the outermost specification, set by the constructor
// of each concrete type, so that a chained call combines the whole value and
// not the embedded struct.
type composite[T any] struct {
	self Specification[T]
}

func (spec *composite[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec.self, another)
}

func (spec *composite[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec.self, another)
}

func (spec *composite[T]) Not() Specification[T] {
	return Not[T](spec.self)
}

func (spec *composite[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction[T](append([]Specification[T]{spec.self}, others...)...)
}

func (spec *composite[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction[T](append([]Specification[T]{spec.self}, others...)...)
}
