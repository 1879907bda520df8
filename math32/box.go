package math32

// Box2 is an axis-aligned float32 box with inclusive Min and Max corners,
// for geometric containment rather than array indexing. The integer
// [Bounds2]/[Bounds3] types keep their half-open convention; the two are
// deliberately not unified.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2Empty returns a new empty [Box2], ready for ExpandByPoint.
func B2Empty() Box2 {
	b := Box2{}
	b.SetEmpty()
	return b
}

// NewBox2 returns a new [Box2] with the given min and max corners.
func NewBox2(min, max Vector2) Box2 {
	return Box2{Min: min, Max: max}
}

// SetEmpty sets this box to the canonical empty state (Min at +Inf,
// Max at -Inf) so that expanding by any point makes it that point.
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty reports whether this box contains no points.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint grows this box as needed to include p.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Center returns the center of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns Max - Min.
func (b Box2) Size() Vector2 { return b.Max.Sub(b.Min) }

// ContainsPoint reports whether p is inside this box, inclusive on both
// ends (geometric containment).
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.AllGreaterEqual(b.Min) && p.AllLessEqual(b.Max)
}

// ContainsPointExclusive reports whether p is inside this box with an
// exclusive upper boundary (min-inclusive, max-exclusive).
func (b Box2) ContainsPointExclusive(p Vector2) bool {
	return p.AllGreaterEqual(b.Min) && p.AllLess(b.Max)
}

// ContainsBox reports whether other lies entirely inside this box.
func (b Box2) ContainsBox(other Box2) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Union returns the smallest box containing both b and other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersect returns the overlap of b and other, possibly empty.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
}

// Translate returns this box moved by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// ClampPoint limits p to lie inside this box.
func (b Box2) ClampPoint(p Vector2) Vector2 {
	return p.Clamp(b.Min, b.Max)
}

// Box3 is an axis-aligned float32 box with inclusive Min and Max corners.
// See [Box2] for the conventions.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3Empty returns a new empty [Box3], ready for ExpandByPoint.
func B3Empty() Box3 {
	b := Box3{}
	b.SetEmpty()
	return b
}

// NewBox3 returns a new [Box3] with the given min and max corners.
func NewBox3(min, max Vector3) Box3 {
	return Box3{Min: min, Max: max}
}

// SetEmpty sets this box to the canonical empty state.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty reports whether this box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows this box as needed to include p.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByPoints grows this box as needed to include all given points.
func (b *Box3) ExpandByPoints(pts []Vector3) {
	for _, p := range pts {
		b.ExpandByPoint(p)
	}
}

// Center returns the center of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns Max - Min.
func (b Box3) Size() Vector3 { return b.Max.Sub(b.Min) }

// ContainsPoint reports whether p is inside this box, inclusive on both
// ends (geometric containment).
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.AllGreaterEqual(b.Min) && p.AllLessEqual(b.Max)
}

// ContainsPointExclusive reports whether p is inside this box with an
// exclusive upper boundary (min-inclusive, max-exclusive).
func (b Box3) ContainsPointExclusive(p Vector3) bool {
	return p.AllGreaterEqual(b.Min) && p.AllLess(b.Max)
}

// ContainsBox reports whether other lies entirely inside this box.
func (b Box3) ContainsBox(other Box3) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Union returns the smallest box containing both b and other.
func (b Box3) Union(other Box3) Box3 {
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersect returns the overlap of b and other, possibly empty.
func (b Box3) Intersect(other Box3) Box3 {
	return Box3{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
}

// Translate returns this box moved by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// ClampPoint limits p to lie inside this box.
func (b Box3) ClampPoint(p Vector3) Vector3 {
	return p.Clamp(b.Min, b.Max)
}

// MulMatrix4 returns the axis-aligned box containing this box transformed
// by m.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	out := B3Empty()
	for i := 0; i < 8; i++ {
		corner := Vector3{b.Min.X, b.Min.Y, b.Min.Z}
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		out.ExpandByPoint(m.MulPoint3(corner))
	}
	return out
}
