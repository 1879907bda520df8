package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds2Contains(t *testing.T) {
	b := B2(Vec2i(0, 0), Vec2i(2, 2))
	// Low-inclusive, high-exclusive, per component.
	for p := range B2(Vec2i(-1, -1), Vec2i(3, 3)).Points() {
		want := p.AllGreaterEqual(b.Low) && p.AllLess(b.High)
		assert.Equal(t, want, b.Contains(p), "point %v", p)
	}
	assert.True(t, b.Contains(Vec2i(0, 0)))
	assert.True(t, b.Contains(Vec2i(1, 1)))
	assert.False(t, b.Contains(Vec2i(2, 0)))
	assert.False(t, b.Contains(Vec2i(0, 2)))
	assert.False(t, b.Contains(Vec2i(-1, 0)))
}

func TestBounds2Iteration(t *testing.T) {
	b := B2(Vec2i(0, 0), Vec2i(2, 2))
	var got []Vector2i
	for p := range b.Points() {
		got = append(got, p)
	}
	// X varies fastest.
	assert.Equal(t, []Vector2i{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)

	got = got[:0]
	for p := range b.PointsYFirst() {
		got = append(got, p)
	}
	assert.Equal(t, []Vector2i{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)
}

func TestBounds3Iteration(t *testing.T) {
	b := B3(Vec3i(-1, 0, 2), Vec3i(2, 3, 4))
	seen := map[Vector3i]int{}
	n := 0
	for p := range b.Points() {
		seen[p]++
		n++
	}
	// Every lattice point exactly once.
	assert.Equal(t, b.Count(), n)
	assert.Equal(t, 3*3*2, n)
	for p, c := range seen {
		assert.Equal(t, 1, c, "point %v", p)
		assert.True(t, b.Contains(p))
	}

	// First point is Low, X varying fastest.
	for p := range b.Points() {
		assert.Equal(t, b.Low, p)
		break
	}
}

func TestBoundsEmpty(t *testing.T) {
	assert.True(t, B2(Vec2i(0, 0), Vec2i(0, 5)).Empty())
	assert.True(t, B3(Vec3i(2, 0, 0), Vec3i(1, 5, 5)).Empty())
	n := 0
	for range B3(Vec3i(0, 0, 0), Vec3i(0, 0, 0)).Points() {
		n++
	}
	assert.Equal(t, 0, n)
}

func TestBoundsNormalize(t *testing.T) {
	// Not auto-normalized: construction keeps what it is given.
	b := B2(Vec2i(3, 0), Vec2i(0, 3))
	assert.Equal(t, Vec2i(3, 0), b.Low)
	nb := b.Normalize()
	assert.Equal(t, Vec2i(0, 0), nb.Low)
	assert.Equal(t, Vec2i(3, 3), nb.High)
	assert.Equal(t, 9, nb.Count())
}

func TestBoundsSetOps(t *testing.T) {
	a := B2(Vec2i(0, 0), Vec2i(4, 4))
	b := B2(Vec2i(2, 2), Vec2i(6, 6))
	assert.Equal(t, B2(Vec2i(0, 0), Vec2i(6, 6)), a.Union(b))
	assert.Equal(t, B2(Vec2i(2, 2), Vec2i(4, 4)), a.Intersect(b))
	assert.True(t, a.ContainsBounds(B2(Vec2i(1, 1), Vec2i(3, 3))))
	assert.False(t, a.ContainsBounds(b))
	assert.Equal(t, Vec2i(3, 3), a.Clamp(Vec2i(9, 9)))
	assert.Equal(t, B2(Vec2i(1, 1), Vec2i(5, 5)), a.Offset(Vec2i(1, 1)))
}

func TestBox3Contains(t *testing.T) {
	b := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	// Inclusive on both ends.
	assert.True(t, b.ContainsPoint(Vec3(0, 0, 0)))
	assert.True(t, b.ContainsPoint(Vec3(1, 1, 1)))
	assert.True(t, b.ContainsPoint(Vec3(0.5, 0.5, 0.5)))
	assert.False(t, b.ContainsPoint(Vec3(1.001, 0.5, 0.5)))

	// The exclusive variant rejects the upper boundary.
	assert.True(t, b.ContainsPointExclusive(Vec3(0, 0, 0)))
	assert.False(t, b.ContainsPointExclusive(Vec3(1, 1, 1)))
	assert.False(t, b.ContainsPointExclusive(Vec3(0.5, 1, 0.5)))
}

func TestBox3Expand(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(1, 2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(1, 2, 3), b.Min)
	assert.Equal(t, Vec3(1, 2, 3), b.Max)
	b.ExpandByPoint(Vec3(-1, 5, 0))
	assert.Equal(t, Vec3(-1, 2, 0), b.Min)
	assert.Equal(t, Vec3(1, 5, 3), b.Max)
	assert.Equal(t, Vec3(0, 3.5, 1.5), b.Center())
}

func TestBox2Ops(t *testing.T) {
	a := NewBox2(Vec2(0, 0), Vec2(2, 2))
	b := NewBox2(Vec2(1, 1), Vec2(3, 3))
	assert.Equal(t, NewBox2(Vec2(0, 0), Vec2(3, 3)), a.Union(b))
	assert.Equal(t, NewBox2(Vec2(1, 1), Vec2(2, 2)), a.Intersect(b))
	assert.True(t, a.Intersect(NewBox2(Vec2(5, 5), Vec2(6, 6))).IsEmpty())
	assert.Equal(t, Vec2(2, 2), a.Size())
	assert.Equal(t, Vec2(2, 1), a.ClampPoint(Vec2(5, 1)))
}

func TestBox3MulMatrix4(t *testing.T) {
	b := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	moved := b.MulMatrix4(Translate3D(Vec3(2, 0, 0)))
	assert.Equal(t, Vec3(2, 0, 0), moved.Min)
	assert.Equal(t, Vec3(3, 1, 1), moved.Max)
}
