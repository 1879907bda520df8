package math32

import "iter"

// Bounds2 is an axis-aligned half-open integer interval [Low, High) in
// two dimensions, matching array-indexing semantics. Low <= High is not
// enforced automatically; call [Bounds2.Normalize] when construction
// order is unknown.
type Bounds2 struct {
	Low  Vector2i
	High Vector2i
}

// B2 returns a new [Bounds2] with the given low and high corners.
func B2(low, high Vector2i) Bounds2 {
	return Bounds2{Low: low, High: high}
}

// B2Size returns a new [Bounds2] from low spanning size.
func B2Size(low, size Vector2i) Bounds2 {
	return Bounds2{Low: low, High: low.Add(size)}
}

// Normalize returns these bounds with Low and High swapped per component
// where needed so that Low <= High holds.
func (b Bounds2) Normalize() Bounds2 {
	return Bounds2{Low: b.Low.Min(b.High), High: b.Low.Max(b.High)}
}

// Size returns High - Low.
func (b Bounds2) Size() Vector2i { return b.High.Sub(b.Low) }

// Count returns the number of lattice points in [Low, High).
func (b Bounds2) Count() int {
	s := b.Size()
	if s.X <= 0 || s.Y <= 0 {
		return 0
	}
	return int(s.X) * int(s.Y)
}

// Empty reports whether the bounds contain no lattice points.
func (b Bounds2) Empty() bool { return b.Count() == 0 }

// Contains reports whether p is inside these bounds: low-inclusive,
// high-exclusive per component.
func (b Bounds2) Contains(p Vector2i) bool {
	return p.AllGreaterEqual(b.Low) && p.AllLess(b.High)
}

// ContainsBounds reports whether other lies entirely inside these bounds.
func (b Bounds2) ContainsBounds(other Bounds2) bool {
	return other.Low.AllGreaterEqual(b.Low) && other.High.AllLessEqual(b.High)
}

// Clamp limits p to the valid index range [Low, High-1] per component.
func (b Bounds2) Clamp(p Vector2i) Vector2i {
	return p.Clamp(b.Low, b.High.SubScalar(1))
}

// Offset returns these bounds translated by v.
func (b Bounds2) Offset(v Vector2i) Bounds2 {
	return Bounds2{Low: b.Low.Add(v), High: b.High.Add(v)}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds2) Union(other Bounds2) Bounds2 {
	return Bounds2{Low: b.Low.Min(other.Low), High: b.High.Max(other.High)}
}

// Intersect returns the overlap of b and other, possibly empty.
func (b Bounds2) Intersect(other Bounds2) Bounds2 {
	return Bounds2{Low: b.Low.Max(other.Low), High: b.High.Min(other.High)}
}

// Points iterates every lattice point in [Low, High) with X varying
// fastest: (0,0), (1,0), (0,1), (1,1) for a 2x2 box at the origin.
func (b Bounds2) Points() iter.Seq[Vector2i] {
	return func(yield func(Vector2i) bool) {
		for y := b.Low.Y; y < b.High.Y; y++ {
			for x := b.Low.X; x < b.High.X; x++ {
				if !yield(Vector2i{x, y}) {
					return
				}
			}
		}
	}
}

// PointsYFirst iterates every lattice point in [Low, High) with Y varying
// fastest, the cache-friendly order for array[x][y] indexing.
func (b Bounds2) PointsYFirst() iter.Seq[Vector2i] {
	return func(yield func(Vector2i) bool) {
		for x := b.Low.X; x < b.High.X; x++ {
			for y := b.Low.Y; y < b.High.Y; y++ {
				if !yield(Vector2i{x, y}) {
					return
				}
			}
		}
	}
}

// Bounds3 is an axis-aligned half-open integer box [Low, High) in three
// dimensions. See [Bounds2] for the conventions.
type Bounds3 struct {
	Low  Vector3i
	High Vector3i
}

// B3 returns a new [Bounds3] with the given low and high corners.
func B3(low, high Vector3i) Bounds3 {
	return Bounds3{Low: low, High: high}
}

// B3Size returns a new [Bounds3] from low spanning size.
func B3Size(low, size Vector3i) Bounds3 {
	return Bounds3{Low: low, High: low.Add(size)}
}

// Normalize returns these bounds with Low and High swapped per component
// where needed so that Low <= High holds.
func (b Bounds3) Normalize() Bounds3 {
	return Bounds3{Low: b.Low.Min(b.High), High: b.Low.Max(b.High)}
}

// Size returns High - Low.
func (b Bounds3) Size() Vector3i { return b.High.Sub(b.Low) }

// Count returns the number of lattice points in [Low, High).
func (b Bounds3) Count() int {
	s := b.Size()
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		return 0
	}
	return int(s.X) * int(s.Y) * int(s.Z)
}

// Empty reports whether the bounds contain no lattice points.
func (b Bounds3) Empty() bool { return b.Count() == 0 }

// Contains reports whether p is inside these bounds: low-inclusive,
// high-exclusive per component.
func (b Bounds3) Contains(p Vector3i) bool {
	return p.AllGreaterEqual(b.Low) && p.AllLess(b.High)
}

// ContainsBounds reports whether other lies entirely inside these bounds.
func (b Bounds3) ContainsBounds(other Bounds3) bool {
	return other.Low.AllGreaterEqual(b.Low) && other.High.AllLessEqual(b.High)
}

// Clamp limits p to the valid index range [Low, High-1] per component.
func (b Bounds3) Clamp(p Vector3i) Vector3i {
	return p.Clamp(b.Low, b.High.SubScalar(1))
}

// Offset returns these bounds translated by v.
func (b Bounds3) Offset(v Vector3i) Bounds3 {
	return Bounds3{Low: b.Low.Add(v), High: b.High.Add(v)}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds3) Union(other Bounds3) Bounds3 {
	return Bounds3{Low: b.Low.Min(other.Low), High: b.High.Max(other.High)}
}

// Intersect returns the overlap of b and other, possibly empty.
func (b Bounds3) Intersect(other Bounds3) Bounds3 {
	return Bounds3{Low: b.Low.Max(other.Low), High: b.High.Min(other.High)}
}

// Points iterates every lattice point in [Low, High) with X varying
// fastest, then Y, then Z.
func (b Bounds3) Points() iter.Seq[Vector3i] {
	return func(yield func(Vector3i) bool) {
		for z := b.Low.Z; z < b.High.Z; z++ {
			for y := b.Low.Y; y < b.High.Y; y++ {
				for x := b.Low.X; x < b.High.X; x++ {
					if !yield(Vector3i{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// PointsZFirst iterates every lattice point in [Low, High) with Z varying
// fastest, then Y, then X: the cache-friendly order for array[x][y][z]
// indexing.
func (b Bounds3) PointsZFirst() iter.Seq[Vector3i] {
	return func(yield func(Vector3i) bool) {
		for x := b.Low.X; x < b.High.X; x++ {
			for y := b.Low.Y; y < b.High.Y; y++ {
				for z := b.Low.Z; z < b.High.Z; z++ {
					if !yield(Vector3i{x, y, z}) {
						return
					}
				}
			}
		}
	}
}
