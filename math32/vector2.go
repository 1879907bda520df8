package math32

// Vector2 is a 2D vector/point with X and Y float32 components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to scalar.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{X: s, Y: s}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all components to the same scalar value.
func (v *Vector2) SetScalar(s float32) {
	v.X = s
	v.Y = s
}

// SetFromVector2i sets from a [Vector2i] vector.
func (v *Vector2) SetFromVector2i(vi Vector2i) {
	v.X = float32(vi.X)
	v.Y = float32(vi.Y)
}

// SetZero sets all components to zero.
func (v *Vector2) SetZero() {
	v.SetScalar(0)
}

// Dim returns the component for the given dimension index.
func (v Vector2) Dim(dim Dims) float32 {
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
func (v *Vector2) SetDim(dim Dims, value float32) {
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
func (v Vector2) YX() Vector2 { return Vector2{v.Y, v.X} }

// Add adds other to this vector and returns the result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component, returning a new vector.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

// SetAdd sets this vector to itself plus other.
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other from this vector, returning a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component, returning a new vector.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{v.X - s, v.Y - s}
}

// SetSub sets this vector to itself minus other.
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies component-wise by other, returning a new vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component by scalar s, returning a new vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// SetMul sets this vector to itself multiplied component-wise by other.
func (v *Vector2) SetMul(other Vector2) {
	v.X *= other.X
	v.Y *= other.Y
}

// Div divides component-wise by other, returning a new vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component by scalar s, returning a new vector.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Clamp returns this vector with each component limited to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// Floor returns this vector with Floor applied to each component.
func (v Vector2) Floor() Vector2 { return Vector2{Floor(v.X), Floor(v.Y)} }

// Ceil returns this vector with Ceil applied to each component.
func (v Vector2) Ceil() Vector2 { return Vector2{Ceil(v.X), Ceil(v.Y)} }

// Round returns this vector with Round applied to each component.
func (v Vector2) Round() Vector2 { return Vector2{Round(v.X), Round(v.Y)} }

// Negate returns this vector with each component negated.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Abs returns this vector with Abs applied to each component.
func (v Vector2) Abs() Vector2 { return Vector2{Abs(v.X), Abs(v.Y)} }

// AllLess reports whether every component of this vector is less than the
// corresponding component of other. A single failing component fails the
// whole comparison; this is the right semantics for bounds clamping.
func (v Vector2) AllLess(other Vector2) bool {
	return v.X < other.X && v.Y < other.Y
}

// AllLessEqual reports whether every component is <= other's.
func (v Vector2) AllLessEqual(other Vector2) bool {
	return v.X <= other.X && v.Y <= other.Y
}

// AllGreater reports whether every component is > other's.
func (v Vector2) AllGreater(other Vector2) bool {
	return v.X > other.X && v.Y > other.Y
}

// AllGreaterEqual reports whether every component is >= other's.
func (v Vector2) AllGreaterEqual(other Vector2) bool {
	return v.X >= other.X && v.Y >= other.Y
}

// Dot returns the dot product of this vector with other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product (perp-dot product) of this
// vector with other.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// LengthSquared returns the squared length of this vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns this vector divided by its length (the unit vector).
// Returns the zero vector if the length is zero.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.DivScalar(l)
}

// DistanceTo returns the distance from this point to other.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// Lerp returns the linear interpolation from this vector to other by t.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vector2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// AlmostEqual reports whether this vector and other are component-wise
// within [Epsilon] of each other.
func (v Vector2) AlmostEqual(other Vector2) bool {
	return AlmostEqual(v.X, other.X) && AlmostEqual(v.Y, other.Y)
}

// ToVector2i returns this vector with components truncated to int32.
func (v Vector2) ToVector2i() Vector2i {
	return Vector2i{int32(v.X), int32(v.Y)}
}
