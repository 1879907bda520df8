package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVector3InDelta(t *testing.T, want, got Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta)
	assert.InDelta(t, want.Y, got.Y, delta)
	assert.InDelta(t, want.Z, got.Z, delta)
}

func TestQuatAxisAngle(t *testing.T) {
	// Quarter turn about Z takes X onto Y.
	q := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	assertVector3InDelta(t, Vec3(0, 1, 0), q.RotateVec(Vec3(1, 0, 0)), 1e-6)

	// Identity rotates nothing.
	assert.Equal(t, Vec3(1, 2, 3), QuatIdentity().RotateVec(Vec3(1, 2, 3)))

	// Full turn is the identity rotation (up to sign).
	full := NewQuatAxisAngle(Vec3(0, 1, 0), 2*Pi)
	assertVector3InDelta(t, Vec3(1, 2, 3), full.RotateVec(Vec3(1, 2, 3)), 1e-5)
}

func TestQuatMul(t *testing.T) {
	qx := NewQuatAxisAngle(Vec3(1, 0, 0), Pi/2)
	qz := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	// qz*qx applies qx first: Y -> Z (by qx), Z -> Z (by qz).
	got := qz.Mul(qx).RotateVec(Vec3(0, 1, 0))
	assertVector3InDelta(t, Vec3(0, 0, 1), got, 1e-6)
	// qx*qz applies qz first: Y -> -X, -X -> -X.
	got = qx.Mul(qz).RotateVec(Vec3(0, 1, 0))
	assertVector3InDelta(t, Vec3(-1, 0, 0), got, 1e-6)
}

func TestQuatInverse(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 1, 0).Normal(), 1.1)
	assert.True(t, q.Mul(q.Inverse()).AlmostEqual(QuatIdentity()))

	v := Vec3(3, -1, 2)
	assertVector3InDelta(t, v, q.Inverse().RotateVec(q.RotateVec(v)), 1e-5)
}

func TestQuatNormal(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	assert.InDelta(t, 1, q.Normal().Length(), 1e-6)
	// NormalFast only applies near unit length.
	near := QuatIdentity().Scale(1.001)
	assert.InDelta(t, 1, near.NormalFast().Length(), 1e-4)
	assert.Equal(t, QuatIdentity(), Quat{}.Normal())
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity()
	b := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	assert.True(t, a.Slerp(b, 0).AlmostEqual(a))
	assert.True(t, a.Slerp(b, 1).AlmostEqual(b))
	// The midpoint is the quarter-turn's half.
	mid := a.Slerp(b, 0.5)
	want := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/4)
	assert.True(t, mid.AlmostEqual(want))
	// Slerp output stays unit length.
	assert.InDelta(t, 1, mid.Length(), 1e-6)
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	qs := []Quat{
		QuatIdentity(),
		NewQuatAxisAngle(Vec3(1, 0, 0), 0.4),
		NewQuatAxisAngle(Vec3(0, 1, 0), 2.5),
		NewQuatAxisAngle(Vec3(1, 1, 1).Normal(), -1.3),
	}
	for _, q := range qs {
		m := q.ToMatrix3()
		back := NewQuatFromRotationMatrix(m)
		// q and -q are the same rotation.
		if back.Dot(q) < 0 {
			back = back.Scale(-1)
		}
		assert.True(t, back.AlmostEqual(q), "quat %v", q)

		// Matrix and quaternion rotate identically.
		v := Vec3(0.3, -2, 1.7)
		assertVector3InDelta(t, q.RotateVec(v), m.MulVector3(v), 1e-5)
	}
}

func TestQuatFromUnitVectors(t *testing.T) {
	q := NewQuatFromUnitVectors(Vec3(1, 0, 0), Vec3(0, 1, 0))
	assertVector3InDelta(t, Vec3(0, 1, 0), q.RotateVec(Vec3(1, 0, 0)), 1e-5)

	// Opposite vectors still produce a valid half turn.
	q = NewQuatFromUnitVectors(Vec3(0, 0, 1), Vec3(0, 0, -1))
	assertVector3InDelta(t, Vec3(0, 0, -1), q.RotateVec(Vec3(0, 0, 1)), 1e-5)
}

func TestDualQuatIdentity(t *testing.T) {
	id := DualQuatIdentity()
	p := Vec3(1, 2, 3)
	assert.Equal(t, p, id.TransformPoint(p))
	assert.Equal(t, Vector3{}, id.Translation())
}

func TestDualQuatTransformPoint(t *testing.T) {
	rot := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	trans := Vec3(10, 0, 0)
	d := NewDualQuat(rot, trans)

	assertVector3InDelta(t, trans, d.Translation(), 1e-5)
	assert.True(t, d.Rotation().AlmostEqual(rot))

	// Rotate first, then translate: (1,0,0) -> (0,1,0) -> (10,1,0).
	got := d.TransformPoint(Vec3(1, 0, 0))
	assertVector3InDelta(t, Vec3(10, 1, 0), got, 1e-5)

	// Matches the matrix form.
	assertVector3InDelta(t, got, d.ToMatrix4().MulPoint3(Vec3(1, 0, 0)), 1e-5)
}

func TestDualQuatCompose(t *testing.T) {
	a := NewDualQuat(NewQuatAxisAngle(Vec3(0, 1, 0), 0.7), Vec3(1, 2, 3))
	b := NewDualQuat(NewQuatAxisAngle(Vec3(1, 0, 0), -1.2), Vec3(-4, 0, 5))
	p := Vec3(0.5, -1, 2)

	// a.Mul(b) applies b first.
	want := a.TransformPoint(b.TransformPoint(p))
	assertVector3InDelta(t, want, a.Mul(b).TransformPoint(p), 1e-4)
}

func TestDualQuatInverse(t *testing.T) {
	d := NewDualQuat(NewQuatAxisAngle(Vec3(1, 2, 0).Normal(), 0.9), Vec3(3, -2, 1))
	p := Vec3(4, 5, 6)
	assertVector3InDelta(t, p, d.Inverse().TransformPoint(d.TransformPoint(p)), 1e-4)
	assert.True(t, d.Mul(d.Inverse()).AlmostEqual(DualQuatIdentity()))
}

func TestDualQuatLerp(t *testing.T) {
	a := DualQuatIdentity()
	b := NewDualQuat(NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2), Vec3(2, 0, 0))
	assert.True(t, a.Lerp(b, 0).AlmostEqual(a))
	assert.True(t, a.Lerp(b, 1).AlmostEqual(b))
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 1, mid.Real.Length(), 1e-5)
}
