package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplex(42)
	b := NewSimplex(42)
	c := NewSimplex(7)
	differs := false
	for i := 0; i < 50; i++ {
		x := float32(i) * 0.37
		y := float32(i) * 0.91
		z := float32(i) * 0.13
		assert.Equal(t, a.Noise2(x, y), b.Noise2(x, y))
		assert.Equal(t, a.Noise3(x, y, z), b.Noise3(x, y, z))
		if a.Noise2(x, y) != c.Noise2(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should produce different noise")
}

func TestSimplexRange(t *testing.T) {
	s := NewSimplex(1)
	var lo, hi float32
	for i := 0; i < 500; i++ {
		x := float32(i)*0.217 - 30
		y := float32(i)*0.533 + 11
		z := float32(i) * 0.111
		for _, v := range []float32{s.Noise2(x, y), s.Noise3(x, y, z)} {
			assert.GreaterOrEqual(t, v, float32(-1))
			assert.LessOrEqual(t, v, float32(1))
			lo = Min(lo, v)
			hi = Max(hi, v)
		}
	}
	// Not degenerate: the samples actually spread out.
	assert.Less(t, lo, float32(-0.1))
	assert.Greater(t, hi, float32(0.1))
}

func TestSimplexVaries(t *testing.T) {
	s := NewSimplex(3)
	seen := map[float32]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Noise3(float32(i)*0.29, 0.5, -float32(i)*0.41)] = true
	}
	assert.Greater(t, len(seen), 50)
}

func TestFractal(t *testing.T) {
	s := NewSimplex(9)
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.173
		y := -float32(i) * 0.311
		v := s.Fractal2(x, y, 4, 2, 0.5)
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
		v = s.Fractal3(x, y, x+y, 4, 2, 0.5)
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}
	// One octave equals plain noise.
	assert.Equal(t, s.Noise2(1.5, 2.5), s.Fractal2(1.5, 2.5, 1, 2, 0.5))
	assert.Zero(t, s.Fractal2(1, 1, 0, 2, 0.5))
}
