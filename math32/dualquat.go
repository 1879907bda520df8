package math32

// DualQuat is a rigid transform (rotation plus translation) represented
// as a dual quaternion: Real carries the rotation, Dual encodes the
// translation as 0.5 * t * Real. Rigid transforms are closed under
// multiplication.
type DualQuat struct {
	Real Quat
	Dual Quat
}

// DualQuatIdentity returns the identity transform.
func DualQuatIdentity() DualQuat {
	return DualQuat{Real: QuatIdentity()}
}

// NewDualQuat returns the transform rotating by rot and then translating
// by trans. rot must be a unit quaternion.
func NewDualQuat(rot Quat, trans Vector3) DualQuat {
	t := Quat{trans.X, trans.Y, trans.Z, 0}
	return DualQuat{Real: rot, Dual: t.Mul(rot).Scale(0.5)}
}

// DualQuatFromTranslation returns a pure translation transform.
func DualQuatFromTranslation(trans Vector3) DualQuat {
	return NewDualQuat(QuatIdentity(), trans)
}

// DualQuatFromRotation returns a pure rotation transform.
func DualQuatFromRotation(rot Quat) DualQuat {
	return DualQuat{Real: rot}
}

// Mul returns the composition d * other: the transform that applies
// other first, then d.
func (d DualQuat) Mul(other DualQuat) DualQuat {
	return DualQuat{
		Real: d.Real.Mul(other.Real),
		Dual: d.Real.Mul(other.Dual).Add(d.Dual.Mul(other.Real)),
	}
}

// Conjugate returns the quaternion conjugate of both parts.
func (d DualQuat) Conjugate() DualQuat {
	return DualQuat{Real: d.Real.Conjugate(), Dual: d.Dual.Conjugate()}
}

// Inverse returns the inverse transform. The dual quaternion must be
// unit (Real of unit length), which holds for any composition of
// rotations and translations; for unit dual quaternions the inverse is
// the conjugate.
func (d DualQuat) Inverse() DualQuat {
	return d.Conjugate()
}

// Rotation returns the rotation part.
func (d DualQuat) Rotation() Quat { return d.Real }

// Translation returns the translation part.
func (d DualQuat) Translation() Vector3 {
	t := d.Dual.Scale(2).Mul(d.Real.Conjugate())
	return t.Vec()
}

// TransformPoint applies this rigid transform to the point p.
func (d DualQuat) TransformPoint(p Vector3) Vector3 {
	return d.Real.RotateVec(p).Add(d.Translation())
}

// TransformDirection applies only the rotation part to the direction v.
func (d DualQuat) TransformDirection(v Vector3) Vector3 {
	return d.Real.RotateVec(v)
}

// ToMatrix4 returns the equivalent homogeneous transform matrix.
func (d DualQuat) ToMatrix4() Matrix4 {
	m := d.Real.ToMatrix4()
	t := d.Translation()
	m[12] = t.X
	m[13] = t.Y
	m[14] = t.Z
	return m
}

// Normal renormalizes the transform so the real part is unit length,
// countering drift from long multiplication chains. Returns the identity
// if the real part has zero length.
func (d DualQuat) Normal() DualQuat {
	l := d.Real.Length()
	if l == 0 {
		return DualQuatIdentity()
	}
	inv := 1 / l
	return DualQuat{Real: d.Real.Scale(inv), Dual: d.Dual.Scale(inv)}
}

// Lerp returns the normalized linear interpolation from this transform
// to other by t, taking the shorter rotation arc.
func (d DualQuat) Lerp(other DualQuat, t float32) DualQuat {
	if d.Real.Dot(other.Real) < 0 {
		other = DualQuat{Real: other.Real.Scale(-1), Dual: other.Dual.Scale(-1)}
	}
	return DualQuat{
		Real: d.Real.Scale(1 - t).Add(other.Real.Scale(t)),
		Dual: d.Dual.Scale(1 - t).Add(other.Dual.Scale(t)),
	}.Normal()
}

// AlmostEqual reports whether this transform and other are
// component-wise within [Epsilon] of each other.
func (d DualQuat) AlmostEqual(other DualQuat) bool {
	return d.Real.AlmostEqual(other.Real) && d.Dual.AlmostEqual(other.Dual)
}
