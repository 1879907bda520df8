package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine2(t *testing.T) {
	l := Line2{Support: Vec2(0, 0), Dir: Vec2(1, 0)}
	assert.Equal(t, Vec2(3, 0), l.PointAt(3))
	assert.Positive(t, l.SideOf(Vec2(1, 1)))
	assert.Negative(t, l.SideOf(Vec2(1, -1)))
	assert.Zero(t, l.SideOf(Vec2(5, 0)))
	assert.Equal(t, float32(4), l.ClosestParam(Vec2(4, 7)))
}

func TestLine2Intersect(t *testing.T) {
	a := Line2{Support: Vec2(0, 0), Dir: Vec2(1, 1)}
	b := Line2{Support: Vec2(2, 0), Dir: Vec2(0, 1)}
	tp, ok := a.IntersectLine(b)
	assert.True(t, ok)
	assert.Equal(t, Vec2(2, 2), a.PointAt(tp))

	// Parallel lines do not intersect.
	c := Line2{Support: Vec2(0, 1), Dir: Vec2(1, 1)}
	_, ok = a.IntersectLine(c)
	assert.False(t, ok)
}

func TestLine3(t *testing.T) {
	l := Line3{Support: Vec3(0, 0, 0), Dir: Vec3(0, 0, 1)}
	assert.Equal(t, float32(5), l.ClosestParam(Vec3(3, 4, 5)))
	assert.InDelta(t, 5, l.DistanceTo(Vec3(3, 4, 7)), 1e-5)
}

func TestPlane3Normal(t *testing.T) {
	p := Plane3{Support: Vec3(0, 0, 1), DirX: Vec3(1, 0, 0), DirY: Vec3(0, 1, 0)}
	assert.Equal(t, Vec3(0, 0, 1), p.Normal())
	assert.InDelta(t, 2, p.SignedDistance(Vec3(5, 5, 3)), 1e-5)
	assert.InDelta(t, -1, p.SignedDistance(Vec3(0, 0, 0)), 1e-5)
}

func TestPlane3IntersectLine(t *testing.T) {
	p := Plane3{Support: Vec3(0, 0, 2), DirX: Vec3(1, 0, 0), DirY: Vec3(0, 1, 0)}
	l := Line3{Support: Vec3(1, 1, 0), Dir: Vec3(0, 0, 1)}
	got, ok := p.IntersectLine(l)
	assert.True(t, ok)
	assertVector3InDelta(t, Vec3(1, 1, 2), got, 1e-5)

	// A line inside the plane's direction span is parallel: singular.
	par := Line3{Support: Vec3(0, 0, 0), Dir: Vec3(1, 1, 0)}
	_, ok = p.IntersectLine(par)
	assert.False(t, ok)
}

func TestPlane3IntersectPlane(t *testing.T) {
	// The XY plane at z=0 and the XZ plane at y=0 meet along the X axis.
	a := Plane3{Support: Vec3(0, 0, 0), DirX: Vec3(1, 0, 0), DirY: Vec3(0, 1, 0)}
	b := Plane3{Support: Vec3(0, 0, 0), DirX: Vec3(1, 0, 0), DirY: Vec3(0, 0, 1)}
	l, ok := a.IntersectPlane(b)
	assert.True(t, ok)
	assert.InDelta(t, 0, Abs(l.Dir.Dot(Vec3(0, 1, 0))), 1e-5)
	assert.InDelta(t, 0, Abs(l.Dir.Dot(Vec3(0, 0, 1))), 1e-5)
	// The support lies on both planes.
	assert.InDelta(t, 0, a.SignedDistance(l.Support), 1e-4)
	assert.InDelta(t, 0, b.SignedDistance(l.Support), 1e-4)

	// Parallel planes do not intersect.
	c := Plane3{Support: Vec3(0, 0, 5), DirX: Vec3(1, 0, 0), DirY: Vec3(0, 1, 0)}
	_, ok = a.IntersectPlane(c)
	assert.False(t, ok)
}

func TestSpat3(t *testing.T) {
	s := Spat3{
		Support: Vec3(1, 1, 1),
		DirX:    Vec3(2, 0, 0),
		DirY:    Vec3(0, 3, 0),
		DirZ:    Vec3(0, 0, 4),
	}
	assert.Equal(t, float32(24), s.Volume())

	local, ok := s.ToLocal(Vec3(2, 2.5, 3))
	assert.True(t, ok)
	assertVector3InDelta(t, Vec3(0.5, 0.5, 0.5), local, 1e-5)

	assert.True(t, s.Contains(Vec3(1, 1, 1)))
	assert.True(t, s.Contains(Vec3(3, 4, 5)))
	assert.False(t, s.Contains(Vec3(0, 0, 0)))

	// Degenerate system: directions linearly dependent.
	flat := Spat3{DirX: Vec3(1, 0, 0), DirY: Vec3(2, 0, 0), DirZ: Vec3(0, 0, 1)}
	_, ok = flat.ToLocal(Vec3(0, 0, 0))
	assert.False(t, ok)
	assert.Zero(t, flat.Volume())
}
