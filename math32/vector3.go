package math32

// Vector3 is a 3D vector/point with X, Y and Z float32 components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to scalar.
func Vector3Scalar(s float32) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// Vector3FromVector2 returns a new [Vector3] from v with the given z.
func Vector3FromVector2(v Vector2, z float32) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all components to the same scalar value.
func (v *Vector3) SetScalar(s float32) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetFromVector3i sets from a [Vector3i] vector.
func (v *Vector3) SetFromVector3i(vi Vector3i) {
	v.X = float32(vi.X)
	v.Y = float32(vi.Y)
	v.Z = float32(vi.Z)
}

// SetZero sets all components to zero.
func (v *Vector3) SetZero() {
	v.SetScalar(0)
}

// Dim returns the component for the given dimension index.
func (v Vector3) Dim(dim Dims) float32 {
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
func (v *Vector3) SetDim(dim Dims, value float32) {
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

// Swizzles. Component i of the result is the source component named at
// position i of the method name.

// XY returns the swizzle vector (X, Y).
func (v Vector3) XY() Vector2 { return Vector2{v.X, v.Y} }

// XZ returns the swizzle vector (X, Z).
func (v Vector3) XZ() Vector2 { return Vector2{v.X, v.Z} }

// YZ returns the swizzle vector (Y, Z).
func (v Vector3) YZ() Vector2 { return Vector2{v.Y, v.Z} }

// ZYX returns the swizzle vector (Z, Y, X).
func (v Vector3) ZYX() Vector3 { return Vector3{v.Z, v.Y, v.X} }

// YZX returns the swizzle vector (Y, Z, X).
func (v Vector3) YZX() Vector3 { return Vector3{v.Y, v.Z, v.X} }

// ZXY returns the swizzle vector (Z, X, Y).
func (v Vector3) ZXY() Vector3 { return Vector3{v.Z, v.X, v.Y} }

// SetXY sets the X and Y components from the given [Vector2].
func (v *Vector3) SetXY(xy Vector2) {
	v.X = xy.X
	v.Y = xy.Y
}

// SetXZ sets the X and Z components from the given [Vector2].
func (v *Vector3) SetXZ(xz Vector2) {
	v.X = xz.X
	v.Z = xz.Y
}

// Add adds other to this vector and returns the result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component, returning a new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this vector to itself plus other.
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts other from this vector, returning a new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component, returning a new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this vector to itself minus other.
func (v *Vector3) SetSub(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Mul multiplies component-wise by other, returning a new vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component by scalar s, returning a new vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// SetMul sets this vector to itself multiplied component-wise by other.
func (v *Vector3) SetMul(other Vector3) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// Div divides component-wise by other, returning a new vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component by scalar s, returning a new vector.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// Clamp returns this vector with each component limited to [lo, hi].
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y), Clamp(v.Z, lo.Z, hi.Z)}
}

// Floor returns this vector with Floor applied to each component.
func (v Vector3) Floor() Vector3 { return Vector3{Floor(v.X), Floor(v.Y), Floor(v.Z)} }

// Ceil returns this vector with Ceil applied to each component.
func (v Vector3) Ceil() Vector3 { return Vector3{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)} }

// Round returns this vector with Round applied to each component.
func (v Vector3) Round() Vector3 { return Vector3{Round(v.X), Round(v.Y), Round(v.Z)} }

// Negate returns this vector with each component negated.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Abs returns this vector with Abs applied to each component.
func (v Vector3) Abs() Vector3 { return Vector3{Abs(v.X), Abs(v.Y), Abs(v.Z)} }

// AllLess reports whether every component of this vector is less than the
// corresponding component of other. A single failing component fails the
// whole comparison.
func (v Vector3) AllLess(other Vector3) bool {
	return v.X < other.X && v.Y < other.Y && v.Z < other.Z
}

// AllLessEqual reports whether every component is <= other's.
func (v Vector3) AllLessEqual(other Vector3) bool {
	return v.X <= other.X && v.Y <= other.Y && v.Z <= other.Z
}

// AllGreater reports whether every component is > other's.
func (v Vector3) AllGreater(other Vector3) bool {
	return v.X > other.X && v.Y > other.Y && v.Z > other.Z
}

// AllGreaterEqual reports whether every component is >= other's.
func (v Vector3) AllGreaterEqual(other Vector3) bool {
	return v.X >= other.X && v.Y >= other.Y && v.Z >= other.Z
}

// Dot returns the dot product of this vector with other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared length of this vector.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns this vector divided by its length (the unit vector).
// Returns the zero vector if the length is zero.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.DivScalar(l)
}

// DistanceTo returns the distance from this point to other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Length()
}

// Lerp returns the linear interpolation from this vector to other by t.
func (v Vector3) Lerp(other Vector3, t float32) Vector3 {
	return Vector3{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

// AlmostEqual reports whether this vector and other are component-wise
// within [Epsilon] of each other.
func (v Vector3) AlmostEqual(other Vector3) bool {
	return AlmostEqual(v.X, other.X) && AlmostEqual(v.Y, other.Y) && AlmostEqual(v.Z, other.Z)
}

// ToVector3i returns this vector with components truncated to int32.
func (v Vector3) ToVector3i() Vector3i {
	return Vector3i{int32(v.X), int32(v.Y), int32(v.Z)}
}
