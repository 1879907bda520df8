package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMatrix4InDelta(t *testing.T, want, got Matrix4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestMatrix2(t *testing.T) {
	id := Identity2()
	m := Matrix2{1, 2, 3, 4}
	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, float32(-2), m.Determinant())
	assert.Equal(t, Vector2{7, 10}, m.MulVector2(Vec2(1, 2)))
	assert.Equal(t, Matrix2{1, 3, 2, 4}, m.Transpose())

	inv, ok := m.Inverse()
	assert.True(t, ok)
	prod := m.Mul(inv)
	for i := range id {
		assert.InDelta(t, id[i], prod[i], 1e-5)
	}

	_, ok = Matrix2{1, 2, 2, 4}.Inverse()
	assert.False(t, ok)
}

func TestMatrix3(t *testing.T) {
	id := Identity3()
	m := Matrix3{2, 0, 1, 0, 3, 0, 1, 0, 2}
	assert.Equal(t, float32(9), m.Determinant())

	inv, ok := m.Inverse()
	assert.True(t, ok)
	prod := m.Mul(inv)
	for i := range id {
		assert.InDelta(t, id[i], prod[i], 1e-5)
	}

	// Rank-deficient: second column is twice the first.
	_, ok = Matrix3{1, 2, 3, 2, 4, 6, 0, 0, 1}.Inverse()
	assert.False(t, ok)

	assert.Equal(t, Vec3(1, 2, 3), id.MulVector3(Vec3(1, 2, 3)))
}

func TestMatrix3Columns(t *testing.T) {
	m := Matrix3FromColumns(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, Vec3(4, 5, 6), m.Col(1))
	assert.Equal(t, float32(8), m.At(2, 1))
	m.SetCol(0, Vec3(0, 0, 0))
	assert.Equal(t, Vec3(0, 0, 0), m.Col(0))
}

func TestMatrix4Determinant(t *testing.T) {
	assert.Equal(t, float32(1), Identity4().Determinant())
	assert.Equal(t, float32(8), Scale3D(Vec3(2, 2, 2)).Determinant())
	// Translation does not change the determinant.
	assert.Equal(t, float32(1), Translate3D(Vec3(5, -3, 2)).Determinant())
	// Rotations have determinant 1.
	assert.InDelta(t, 1, RotateY3D(0.7).Determinant(), 1e-5)
}

func TestMatrix4Inverse(t *testing.T) {
	id := Identity4()
	mats := []Matrix4{
		Translate3D(Vec3(1, 2, 3)),
		Scale3D(Vec3(2, 0.5, 4)),
		RotateX3D(0.3).Mul(RotateZ3D(1.2)),
		Translate3D(Vec3(-4, 0, 9)).Mul(RotateY3D(2.1)).Mul(Scale3D(Vec3(3, 3, 3))),
	}
	for _, m := range mats {
		inv, ok := m.Inverse()
		assert.True(t, ok)
		assertMatrix4InDelta(t, id, m.Mul(inv), 1e-4)
		assertMatrix4InDelta(t, id, inv.Mul(m), 1e-4)
	}

	_, ok := Scale3D(Vec3(1, 0, 1)).Inverse()
	assert.False(t, ok)
	_, ok = Matrix4{}.Inverse()
	assert.False(t, ok)
}

func TestMatrix4Transforms(t *testing.T) {
	p := Vec3(1, 0, 0)
	assert.Equal(t, Vec3(2, 3, 4), Translate3D(Vec3(1, 3, 4)).MulPoint3(p))
	assert.Equal(t, Vec3(2, 0, 0), Scale3D(Vec3(2, 1, 1)).MulPoint3(p))

	rot := RotateZ3D(Pi / 2).MulPoint3(p)
	assert.InDelta(t, 0, rot.X, 1e-6)
	assert.InDelta(t, 1, rot.Y, 1e-6)

	// Directions ignore translation.
	assert.Equal(t, p, Translate3D(Vec3(9, 9, 9)).MulDirection3(p))
}

func TestMatrix4MulOrder(t *testing.T) {
	// Column-vector convention: T*S scales first, then translates.
	ts := Translate3D(Vec3(10, 0, 0)).Mul(Scale3D(Vec3(2, 2, 2)))
	assert.Equal(t, Vec3(12, 0, 0), ts.MulPoint3(Vec3(1, 0, 0)))
	st := Scale3D(Vec3(2, 2, 2)).Mul(Translate3D(Vec3(10, 0, 0)))
	assert.Equal(t, Vec3(22, 0, 0), st.MulPoint3(Vec3(1, 0, 0)))
}

func TestLookAt(t *testing.T) {
	view := LookAt(Vec3(0, 0, 5), Vec3(0, 0, 0), Vec3(0, 1, 0))
	// The target maps onto the negative Z axis in view space.
	got := view.MulPoint3(Vec3(0, 0, 0))
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 0, got.Y, 1e-6)
	assert.InDelta(t, -5, got.Z, 1e-6)
	// The eye maps to the origin.
	eye := view.MulPoint3(Vec3(0, 0, 5))
	assert.InDelta(t, 0, eye.Length(), 1e-6)
}

func TestProjections(t *testing.T) {
	ortho := Orthographic(-2, 2, -1, 1, 0, 10)
	corner := ortho.MulPoint3(Vec3(2, 1, 0))
	assert.InDelta(t, 1, corner.X, 1e-6)
	assert.InDelta(t, 1, corner.Y, 1e-6)

	persp := Perspective(DegToRad(90), 1, 1, 100)
	// A point on the near plane maps to clip z = -1.
	near := persp.MulPoint3(Vec3(0, 0, -1))
	assert.InDelta(t, -1, near.Z, 1e-5)
	far := persp.MulPoint3(Vec3(0, 0, -100))
	assert.InDelta(t, 1, far.Z, 1e-4)
}
