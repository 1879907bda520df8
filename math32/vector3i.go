package math32

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and z components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Vector3iScalar returns a new [Vector3i] with all components set to scalar.
func Vector3iScalar(s int32) Vector3i {
	return Vector3i{X: s, Y: s, Z: s}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3i) Set(x, y, z int32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetFromVector3 sets from a [Vector3] (float32) vector, truncating.
func (v *Vector3i) SetFromVector3(vf Vector3) {
	v.X = int32(vf.X)
	v.Y = int32(vf.Y)
	v.Z = int32(vf.Z)
}

// Dim returns the component for the given dimension index.
func (v Vector3i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// SetDim sets the component for the given dimension index.
func (v *Vector3i) SetDim(dim Dims, value int32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// XY returns the swizzle vector (X, Y).
func (v Vector3i) XY() Vector2i { return Vector2i{v.X, v.Y} }

// XZ returns the swizzle vector (X, Z).
func (v Vector3i) XZ() Vector2i { return Vector2i{v.X, v.Z} }

// ZYX returns the swizzle vector (Z, Y, X).
func (v Vector3i) ZYX() Vector3i { return Vector3i{v.Z, v.Y, v.X} }

// Add adds other to this vector, returning a new vector.
func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component, returning a new vector.
func (v Vector3i) AddScalar(s int32) Vector3i {
	return Vector3i{v.X + s, v.Y + s, v.Z + s}
}

// Sub subtracts other from this vector, returning a new vector.
func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component, returning a new vector.
func (v Vector3i) SubScalar(s int32) Vector3i {
	return Vector3i{v.X - s, v.Y - s, v.Z - s}
}

// Mul multiplies component-wise by other, returning a new vector.
func (v Vector3i) Mul(other Vector3i) Vector3i {
	return Vector3i{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component by scalar s, returning a new vector.
func (v Vector3i) MulScalar(s int32) Vector3i {
	return Vector3i{v.X * s, v.Y * s, v.Z * s}
}

// Div divides component-wise by other, returning a new vector.
func (v Vector3i) Div(other Vector3i) Vector3i {
	return Vector3i{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector3i) Min(other Vector3i) Vector3i {
	return Vector3i{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector3i) Max(other Vector3i) Vector3i {
	return Vector3i{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Clamp returns this vector with each component limited to [lo, hi].
func (v Vector3i) Clamp(lo, hi Vector3i) Vector3i {
	return v.Max(lo).Min(hi)
}

// Negate returns this vector with each component negated.
func (v Vector3i) Negate() Vector3i { return Vector3i{-v.X, -v.Y, -v.Z} }

// AllLess reports whether every component is < other's. A single failing
// component fails the whole comparison.
func (v Vector3i) AllLess(other Vector3i) bool {
	return v.X < other.X && v.Y < other.Y && v.Z < other.Z
}

// AllLessEqual reports whether every component is <= other's.
func (v Vector3i) AllLessEqual(other Vector3i) bool {
	return v.X <= other.X && v.Y <= other.Y && v.Z <= other.Z
}

// AllGreater reports whether every component is > other's.
func (v Vector3i) AllGreater(other Vector3i) bool {
	return v.X > other.X && v.Y > other.Y && v.Z > other.Z
}

// AllGreaterEqual reports whether every component is >= other's.
func (v Vector3i) AllGreaterEqual(other Vector3i) bool {
	return v.X >= other.X && v.Y >= other.Y && v.Z >= other.Z
}

// ToVector3 returns this vector converted to float32 components.
func (v Vector3i) ToVector3() Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}
