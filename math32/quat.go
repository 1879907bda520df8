package math32

// Quat is a rotation quaternion with X, Y, Z and W float32 components.
// W is the scalar (real) component.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns the rotation of angle radians about the given
// axis. The axis must be a unit vector.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	s := Sin(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, Cos(angle / 2)}
}

// NewQuatEuler returns the rotation given by the Euler angles (radians)
// about the X, Y and Z axes, applied in that order.
func NewQuatEuler(angles Vector3) Quat {
	qx := NewQuatAxisAngle(Vec3(1, 0, 0), angles.X)
	qy := NewQuatAxisAngle(Vec3(0, 1, 0), angles.Y)
	qz := NewQuatAxisAngle(Vec3(0, 0, 1), angles.Z)
	return qz.Mul(qy).Mul(qx)
}

// NewQuatFromUnitVectors returns the shortest rotation taking the unit
// vector from onto the unit vector to.
func NewQuatFromUnitVectors(from, to Vector3) Quat {
	w := 1 + from.Dot(to)
	if w < 1e-6 {
		// Opposite vectors: rotate half a turn about any perpendicular axis.
		axis := Vec3(1, 0, 0).Cross(from)
		if axis.LengthSquared() < 1e-6 {
			axis = Vec3(0, 1, 0).Cross(from)
		}
		return NewQuatAxisAngle(axis.Normal(), Pi)
	}
	c := from.Cross(to)
	return Quat{c.X, c.Y, c.Z, w}.Normal()
}

// NewQuatFromRotationMatrix returns the rotation of a pure rotation
// matrix (orthonormal columns, determinant 1).
func NewQuatFromRotationMatrix(m Matrix3) Quat {
	trace := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	switch {
	case trace > 0:
		s := Sqrt(trace+1) * 2
		return Quat{
			(m.At(1, 2) - m.At(2, 1)) / s,
			(m.At(2, 0) - m.At(0, 2)) / s,
			(m.At(0, 1) - m.At(1, 0)) / s,
			s / 4,
		}
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2)) * 2
		return Quat{
			s / 4,
			(m.At(1, 0) + m.At(0, 1)) / s,
			(m.At(2, 0) + m.At(0, 2)) / s,
			(m.At(1, 2) - m.At(2, 1)) / s,
		}
	case m.At(1, 1) > m.At(2, 2):
		s := Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2)) * 2
		return Quat{
			(m.At(1, 0) + m.At(0, 1)) / s,
			s / 4,
			(m.At(2, 1) + m.At(1, 2)) / s,
			(m.At(2, 0) - m.At(0, 2)) / s,
		}
	default:
		s := Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1)) * 2
		return Quat{
			(m.At(2, 0) + m.At(0, 2)) / s,
			(m.At(2, 1) + m.At(1, 2)) / s,
			s / 4,
			(m.At(0, 1) - m.At(1, 0)) / s,
		}
	}
}

// Vec returns the vector (imaginary) part.
func (q Quat) Vec() Vector3 { return Vector3{q.X, q.Y, q.Z} }

// Add returns the component-wise sum q + other.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Scale returns this quaternion with each component multiplied by s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul returns the Hamilton product q * other: the rotation that applies
// other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the quaternion conjugate (negated vector part).
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the 4D dot product of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns the squared length.
func (q Quat) LengthSquared() float32 { return q.Dot(q) }

// Length returns the length.
func (q Quat) Length() float32 { return Sqrt(q.LengthSquared()) }

// Inverse returns the multiplicative inverse: conjugate over squared
// length. For a unit quaternion this equals the conjugate.
func (q Quat) Inverse() Quat {
	return q.Conjugate().Scale(1 / q.LengthSquared())
}

// Normal returns the unit quaternion. Returns the identity if the length
// is zero.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return QuatIdentity()
	}
	return q.Scale(1 / l)
}

// NormalFast renormalizes a quaternion that is already close to unit
// length with a single Newton-Raphson step, avoiding the square root.
func (q Quat) NormalFast() Quat {
	return q.Scale((3 - q.LengthSquared()) / 2)
}

// RotateVec rotates v by this rotation.
func (q Quat) RotateVec(v Vector3) Vector3 {
	t := q.Vec().Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(q.Vec().Cross(t))
}

// Slerp returns the spherical linear interpolation from this rotation to
// other by t, always along the shorter arc.
func (q Quat) Slerp(other Quat, t float32) Quat {
	cosTheta := q.Dot(other)
	if cosTheta < 0 {
		other = other.Scale(-1)
		cosTheta = -cosTheta
	}
	if cosTheta > 1-Epsilon {
		// Nearly identical rotations: lerp and renormalize.
		return q.Scale(1 - t).Add(other.Scale(t)).Normal()
	}
	theta := Acos(cosTheta)
	sinTheta := Sin(theta)
	return q.Scale(Sin((1-t)*theta) / sinTheta).Add(other.Scale(Sin(t*theta) / sinTheta))
}

// ToMatrix3 returns the equivalent rotation matrix. The quaternion must
// be unit length.
func (q Quat) ToMatrix3() Matrix3 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return Matrix3{
		1 - yy - zz, xy + wz, xz - wy,
		xy - wz, 1 - xx - zz, yz + wx,
		xz + wy, yz - wx, 1 - xx - yy,
	}
}

// ToMatrix4 returns the equivalent rotation matrix with no translation.
func (q Quat) ToMatrix4() Matrix4 {
	m3 := q.ToMatrix3()
	return Matrix4{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// AlmostEqual reports whether this quaternion and other are
// component-wise within [Epsilon] of each other.
func (q Quat) AlmostEqual(other Quat) bool {
	return AlmostEqual(q.X, other.X) && AlmostEqual(q.Y, other.Y) &&
		AlmostEqual(q.Z, other.Z) && AlmostEqual(q.W, other.W)
}
