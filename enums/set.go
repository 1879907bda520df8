// Package enums provides typed containers indexed by enum values: a
// value-type bitset [Set] and a dense lookup table [Array]. They replace
// ad-hoc uint masks and raw slices wherever an enum is the natural key,
// such as GL constant tables and marching-cubes corner masks.
package enums

import (
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Set is a value-type set of enum members backed by a uint64 bitmask.
// Enums used with Set must have fewer than 64 members. The zero value is
// the empty set; all operations return new sets.
type Set[E constraints.Integer] struct {
	bits uint64
}

// SetOf returns the set containing the given members.
func SetOf[E constraints.Integer](members ...E) Set[E] {
	var s Set[E]
	for _, m := range members {
		s.bits |= 1 << uint64(m)
	}
	return s
}

// SetFromMask returns the set with the given raw bitmask.
func SetFromMask[E constraints.Integer](mask uint64) Set[E] {
	return Set[E]{bits: mask}
}

// All returns the set of every member in [0, n).
func All[E constraints.Integer](n E) Set[E] {
	return Set[E]{bits: (1 << uint64(n)) - 1}
}

// With returns this set with m added.
func (s Set[E]) With(m E) Set[E] {
	return Set[E]{bits: s.bits | 1<<uint64(m)}
}

// Without returns this set with m removed.
func (s Set[E]) Without(m E) Set[E] {
	return Set[E]{bits: s.bits &^ (1 << uint64(m))}
}

// Has reports whether m is in the set.
func (s Set[E]) Has(m E) bool {
	return s.bits&(1<<uint64(m)) != 0
}

// Union returns the members in either set.
func (s Set[E]) Union(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits | other.bits}
}

// Intersect returns the members in both sets.
func (s Set[E]) Intersect(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits & other.bits}
}

// Diff returns the members of this set not in other.
func (s Set[E]) Diff(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits &^ other.bits}
}

// Complement returns the members of [0, n) not in this set.
func (s Set[E]) Complement(n E) Set[E] {
	return All(n).Diff(s)
}

// Count returns the number of members.
func (s Set[E]) Count() int {
	return bits.OnesCount64(s.bits)
}

// Empty reports whether the set has no members.
func (s Set[E]) Empty() bool { return s.bits == 0 }

// Mask returns the raw bitmask, usable as a dense table index when the
// enum members are the low bits.
func (s Set[E]) Mask() uint64 { return s.bits }

// Members iterates the members in ascending order.
func (s Set[E]) Members() iter.Seq[E] {
	return func(yield func(E) bool) {
		rest := s.bits
		for rest != 0 {
			i := bits.TrailingZeros64(rest)
			if !yield(E(i)) {
				return
			}
			rest &^= 1 << i
		}
	}
}
