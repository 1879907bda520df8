package enums

import "golang.org/x/exp/constraints"

// Array is a dense table of values indexed by an enum whose members are
// the contiguous range [0, Len).
type Array[E constraints.Integer, V any] struct {
	vals []V
}

// ArrayOf returns an array holding the given values, indexed in order by
// the enum members 0, 1, 2, ...
func ArrayOf[E constraints.Integer, V any](vals ...V) Array[E, V] {
	return Array[E, V]{vals: vals}
}

// NewArray returns a zero-valued array for n enum members.
func NewArray[E constraints.Integer, V any](n E) Array[E, V] {
	return Array[E, V]{vals: make([]V, n)}
}

// At returns the value for member e.
func (a Array[E, V]) At(e E) V {
	return a.vals[e]
}

// Set sets the value for member e.
func (a *Array[E, V]) Set(e E, v V) {
	a.vals[e] = v
}

// Len returns the number of members covered.
func (a Array[E, V]) Len() int { return len(a.vals) }

// Values returns the backing value slice, indexed by member.
func (a Array[E, V]) Values() []V { return a.vals }
