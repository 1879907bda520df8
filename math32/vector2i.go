package math32

// Vector2i is a 2D vector/point with X and Y int32 components.
// The int vector types deliberately have no Dot/Cross/Length/Normal;
// those operations exist only on the float types.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2iScalar returns a new [Vector2i] with all components set to scalar.
func Vector2iScalar(s int32) Vector2i {
	return Vector2i{X: s, Y: s}
}

// Set sets this vector's X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// SetFromVector2 sets from a [Vector2] (float32) vector, truncating.
func (v *Vector2i) SetFromVector2(vf Vector2) {
	v.X = int32(vf.X)
	v.Y = int32(vf.Y)
}

// Dim returns the component for the given dimension index.
func (v Vector2i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

// SetDim sets the component for the given dimension index.
func (v *Vector2i) SetDim(dim Dims, value int32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		panic("dim is out of range")
	}
}

// YX returns the swizzle vector (Y, X).
func (v Vector2i) YX() Vector2i { return Vector2i{v.Y, v.X} }

// Add adds other to this vector, returning a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component, returning a new vector.
func (v Vector2i) AddScalar(s int32) Vector2i {
	return Vector2i{v.X + s, v.Y + s}
}

// Sub subtracts other from this vector, returning a new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component, returning a new vector.
func (v Vector2i) SubScalar(s int32) Vector2i {
	return Vector2i{v.X - s, v.Y - s}
}

// Mul multiplies component-wise by other, returning a new vector.
func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vector2i{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component by scalar s, returning a new vector.
func (v Vector2i) MulScalar(s int32) Vector2i {
	return Vector2i{v.X * s, v.Y * s}
}

// Div divides component-wise by other, returning a new vector.
func (v Vector2i) Div(other Vector2i) Vector2i {
	return Vector2i{v.X / other.X, v.Y / other.Y}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// Clamp returns this vector with each component limited to [lo, hi].
func (v Vector2i) Clamp(lo, hi Vector2i) Vector2i {
	return v.Max(lo).Min(hi)
}

// Negate returns this vector with each component negated.
func (v Vector2i) Negate() Vector2i { return Vector2i{-v.X, -v.Y} }

// AllLess reports whether every component is < other's. A single failing
// component fails the whole comparison.
func (v Vector2i) AllLess(other Vector2i) bool {
	return v.X < other.X && v.Y < other.Y
}

// AllLessEqual reports whether every component is <= other's.
func (v Vector2i) AllLessEqual(other Vector2i) bool {
	return v.X <= other.X && v.Y <= other.Y
}

// AllGreater reports whether every component is > other's.
func (v Vector2i) AllGreater(other Vector2i) bool {
	return v.X > other.X && v.Y > other.Y
}

// AllGreaterEqual reports whether every component is >= other's.
func (v Vector2i) AllGreaterEqual(other Vector2i) bool {
	return v.X >= other.X && v.Y >= other.Y
}

// ToVector2 returns this vector converted to float32 components.
func (v Vector2i) ToVector2() Vector2 {
	return Vector2{float32(v.X), float32(v.Y)}
}
