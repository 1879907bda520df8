package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Basic(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)
	v.SetFromVector2i(Vec2i(8, 9))
	assert.Equal(t, Vector2{8, 9}, v)

	assert.Equal(t, Vector2{3, 5}, Vec2(1, 2).Add(Vec2(2, 3)))
	assert.Equal(t, Vector2{-1, -1}, Vec2(1, 2).Sub(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 6}, Vec2(1, 2).Mul(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 4}, Vec2(1, 2).MulScalar(2))
	assert.Equal(t, Vector2{0.5, 1}, Vec2(1, 2).DivScalar(2))
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 2).Negate())
	assert.Equal(t, Vector2{1, 2}, Vec2(-1, 2).Abs())

	assert.Equal(t, float32(11), Vec2(1, 2).Dot(Vec2(3, 4)))
	assert.Equal(t, float32(-2), Vec2(1, 2).Cross(Vec2(3, 4)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
}

func TestVector2Dim(t *testing.T) {
	v := Vec2(1, 2)
	assert.Equal(t, float32(1), v.Dim(X))
	assert.Equal(t, float32(2), v.Dim(Y))
	v.SetDim(Y, 9)
	assert.Equal(t, Vector2{1, 9}, v)
	assert.Panics(t, func() { v.Dim(Z) })
}

func TestVector3Basic(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{4, 4, 4}, Vector3Scalar(4))
	assert.Equal(t, Vector3{1, 2, 5}, Vector3FromVector2(Vec2(1, 2), 5))

	assert.Equal(t, Vector3{5, 7, 9}, Vec3(1, 2, 3).Add(Vec3(4, 5, 6)))
	assert.Equal(t, Vector3{4, 10, 18}, Vec3(1, 2, 3).Mul(Vec3(4, 5, 6)))
	assert.Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))

	assert.Equal(t, Vector3{1, 2, 3}, Vec3(0.6, 2.4, 3.1).Round())
	assert.Equal(t, Vector3{2, 2, 3}, Vec3(1, 2, 5).Clamp(Vec3(2, 0, 0), Vec3(4, 4, 3)))
}

func TestVector3Cross(t *testing.T) {
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(0, 0, -1), Vec3(0, 1, 0).Cross(Vec3(1, 0, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))
	// Cross of parallel vectors is zero.
	assert.Equal(t, Vector3{}, Vec3(2, 4, 6).Cross(Vec3(1, 2, 3)))
}

func TestNormalLength(t *testing.T) {
	vecs := []Vector3{
		Vec3(1, 0, 0),
		Vec3(3, 4, 0),
		Vec3(-2.5, 7, 0.01),
		Vec3(1e-3, 1e-3, 1e-3),
		Vec3(100, -200, 300),
	}
	for _, v := range vecs {
		assert.InDelta(t, 1, v.Normal().Length(), 1e-5, "vector %v", v)
	}
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
}

func TestSwizzle(t *testing.T) {
	v3 := Vec3(1, 2, 3)
	assert.Equal(t, Vec2(1, 2), v3.XY())
	assert.Equal(t, Vec2(1, 3), v3.XZ())
	assert.Equal(t, Vec2(2, 3), v3.YZ())
	assert.Equal(t, Vec3(3, 2, 1), v3.ZYX())
	assert.Equal(t, Vec3(2, 3, 1), v3.YZX())
	assert.Equal(t, Vec3(3, 1, 2), v3.ZXY())

	v4 := Vec4(1, 2, 3, 4)
	assert.Equal(t, Vec3(1, 2, 3), v4.XYZ())
	assert.Equal(t, Vec4(4, 3, 2, 1), v4.WZYX())
	assert.Equal(t, Vec2(2, 1), Vec2(1, 2).YX())

	// Swizzle then swizzle back round-trips.
	assert.Equal(t, v3, v3.ZYX().ZYX())
	assert.Equal(t, v4, v4.WZYX().WZYX())

	v3.SetXY(Vec2(7, 8))
	assert.Equal(t, Vec3(7, 8, 3), v3)
	v3.SetXZ(Vec2(0, 9))
	assert.Equal(t, Vec3(0, 8, 9), v3)
}

func TestAllComparisons(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(2, 3, 4)
	assert.True(t, a.AllLess(b))
	assert.True(t, a.AllLessEqual(b))
	assert.True(t, b.AllGreater(a))
	assert.True(t, b.AllGreaterEqual(a))

	// A single failing component fails the whole comparison.
	c := Vec3(2, 3, 3)
	assert.False(t, a.AllLess(c))
	assert.True(t, a.AllLessEqual(c))
	assert.False(t, c.AllGreater(a))

	assert.True(t, Vec2i(1, 1).AllLess(Vec2i(2, 2)))
	assert.False(t, Vec2i(1, 2).AllLess(Vec2i(2, 2)))
	assert.True(t, Vec3i(1, 1, 1).AllLessEqual(Vec3i(1, 1, 1)))
	assert.False(t, Vec3i(1, 1, 2).AllLess(Vec3i(2, 2, 2)))
}

func TestVectorLerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(2, 4, 6)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3(1, 2, 3), a.Lerp(b, 0.5))
}

func TestVectorIntOps(t *testing.T) {
	assert.Equal(t, Vec3i(5, 7, 9), Vec3i(1, 2, 3).Add(Vec3i(4, 5, 6)))
	assert.Equal(t, Vec3i(2, 4, 6), Vec3i(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vec2i(1, 2), Vec3i(1, 2, 3).XY())
	assert.Equal(t, Vec3i(3, 2, 1), Vec3i(1, 2, 3).ZYX())
	assert.Equal(t, Vec2i(2, 2), Vec2i(1, 5).Clamp(Vec2i(2, 0), Vec2i(4, 2)))
	assert.Equal(t, Vector3{1, 2, 3}, Vec3i(1, 2, 3).ToVector3())
}
