package math32

// Vector4 is a 4D vector/point with X, Y, Z and W float32 components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to scalar.
func Vector4Scalar(s float32) Vector4 {
	return Vector4{X: s, Y: s, Z: s, W: s}
}

// Vector4FromVector3 returns a new [Vector4] from v with the given w.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Set sets this vector's components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all components to the same scalar value.
func (v *Vector4) SetScalar(s float32) {
	v.X = s
	v.Y = s
	v.Z = s
	v.W = s
}

// SetZero sets all components to zero.
func (v *Vector4) SetZero() {
	v.SetScalar(0)
}

// Dim returns the component for the given dimension index.
func (v Vector4) Dim(dim Dims) float32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	case W:
		return v.W
	default:
		panic("dim is out of range")
	}
}

// SetDim sets the component for the given dimension index.
func (v *Vector4) SetDim(dim Dims, value float32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	case W:
		v.W = value
	default:
		panic("dim is out of range")
	}
}

// XY returns the swizzle vector (X, Y).
func (v Vector4) XY() Vector2 { return Vector2{v.X, v.Y} }

// XYZ returns the swizzle vector (X, Y, Z).
func (v Vector4) XYZ() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// WZYX returns the swizzle vector (W, Z, Y, X).
func (v Vector4) WZYX() Vector4 { return Vector4{v.W, v.Z, v.Y, v.X} }

// SetXYZ sets the X, Y and Z components from the given [Vector3].
func (v *Vector4) SetXYZ(xyz Vector3) {
	v.X = xyz.X
	v.Y = xyz.Y
	v.Z = xyz.Z
}

// Add adds other to this vector and returns the result in a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds scalar s to each component, returning a new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// Sub subtracts other from this vector, returning a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts scalar s from each component, returning a new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Mul multiplies component-wise by other, returning a new vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component by scalar s, returning a new vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div divides component-wise by other, returning a new vector.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component by scalar s, returning a new vector.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z), Min(v.W, other.W)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z), Max(v.W, other.W)}
}

// Negate returns this vector with each component negated.
func (v Vector4) Negate() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

// AllLessEqual reports whether every component is <= other's. A single
// failing component fails the whole comparison.
func (v Vector4) AllLessEqual(other Vector4) bool {
	return v.X <= other.X && v.Y <= other.Y && v.Z <= other.Z && v.W <= other.W
}

// AllGreaterEqual reports whether every component is >= other's.
func (v Vector4) AllGreaterEqual(other Vector4) bool {
	return v.X >= other.X && v.Y >= other.Y && v.Z >= other.Z && v.W >= other.W
}

// Dot returns the dot product of this vector with other.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared length of this vector.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the length of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns this vector divided by its length (the unit vector).
// Returns the zero vector if the length is zero.
func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{}
	}
	return v.DivScalar(l)
}

// Lerp returns the linear interpolation from this vector to other by t.
func (v Vector4) Lerp(other Vector4, t float32) Vector4 {
	return Vector4{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t), Lerp(v.W, other.W, t)}
}

// AlmostEqual reports whether this vector and other are component-wise
// within [Epsilon] of each other.
func (v Vector4) AlmostEqual(other Vector4) bool {
	return AlmostEqual(v.X, other.X) && AlmostEqual(v.Y, other.Y) &&
		AlmostEqual(v.Z, other.Z) && AlmostEqual(v.W, other.W)
}
