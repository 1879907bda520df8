package math32

import "math/rand"

// Simplex is a seeded gradient-noise generator. Output is deterministic
// per seed and lies in [-1, 1].
type Simplex struct {
	perm [512]uint8
}

// NewSimplex returns a generator whose permutation table is shuffled by
// the given seed.
func NewSimplex(seed int64) *Simplex {
	s := &Simplex{}
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})
	for i := 0; i < 512; i++ {
		s.perm[i] = base[i&255]
	}
	return s
}

var grad3 = [12]Vector3{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Skewing factors for 2D and 3D simplex grids.
const (
	skew2   = 0.36602542 // (sqrt(3)-1)/2
	unskew2 = 0.21132487 // (3-sqrt(3))/6
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

func fastFloor(x float32) int32 {
	i := int32(x)
	if x < float32(i) {
		return i - 1
	}
	return i
}

// Noise2 returns 2D simplex noise at (x, y), in [-1, 1].
func (s *Simplex) Noise2(x, y float32) float32 {
	f := (x + y) * skew2
	i := fastFloor(x + f)
	j := fastFloor(y + f)
	g := float32(i+j) * unskew2
	x0 := x - (float32(i) - g)
	y0 := y - (float32(j) - g)

	// Offsets of the middle simplex corner.
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float32(i1) + unskew2
	y1 := y0 - float32(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := uint8(i)
	jj := uint8(j)
	var total float32
	corner := func(cx, cy float32, gi uint8) {
		t := 0.5 - cx*cx - cy*cy
		if t <= 0 {
			return
		}
		t *= t
		grad := grad3[gi%12]
		total += t * t * (grad.X*cx + grad.Y*cy)
	}
	corner(x0, y0, s.perm[int(ii)+int(s.perm[jj])])
	corner(x1, y1, s.perm[int(ii)+int(i1)+int(s.perm[int(jj)+int(j1)])])
	corner(x2, y2, s.perm[int(ii)+1+int(s.perm[int(jj)+1])])

	return 70 * total
}

// Noise3 returns 3D simplex noise at (x, y, z), in [-1, 1].
func (s *Simplex) Noise3(x, y, z float32) float32 {
	f := (x + y + z) * skew3
	i := fastFloor(x + f)
	j := fastFloor(y + f)
	k := fastFloor(z + f)
	g := float32(i+j+k) * unskew3
	x0 := x - (float32(i) - g)
	y0 := y - (float32(j) - g)
	z0 := z - (float32(k) - g)

	// Rank the coordinates to pick the simplex traversal order.
	var i1, j1, k1, i2, j2, k2 int32
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= z0 && z0 > y0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case z0 > x0 && x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case z0 > y0 && y0 > x0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case y0 > x0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	}

	x1 := x0 - float32(i1) + unskew3
	y1 := y0 - float32(j1) + unskew3
	z1 := z0 - float32(k1) + unskew3
	x2 := x0 - float32(i2) + 2*unskew3
	y2 := y0 - float32(j2) + 2*unskew3
	z2 := z0 - float32(k2) + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	ii := uint8(i)
	jj := uint8(j)
	kk := uint8(k)
	var total float32
	corner := func(cx, cy, cz float32, gi uint8) {
		t := 0.6 - cx*cx - cy*cy - cz*cz
		if t <= 0 {
			return
		}
		t *= t
		grad := grad3[gi%12]
		total += t * t * (grad.X*cx + grad.Y*cy + grad.Z*cz)
	}
	at := func(di, dj, dk int32) uint8 {
		return s.perm[int(ii)+int(di)+int(s.perm[int(jj)+int(dj)+int(s.perm[int(kk)+int(dk)])])]
	}
	corner(x0, y0, z0, at(0, 0, 0))
	corner(x1, y1, z1, at(i1, j1, k1))
	corner(x2, y2, z2, at(i2, j2, k2))
	corner(x3, y3, z3, at(1, 1, 1))

	return 32 * total
}

// Fractal2 sums octaves of 2D noise, each octave scaled in frequency by
// lacunarity and in amplitude by persistence, renormalized to [-1, 1].
func (s *Simplex) Fractal2(x, y float32, octaves int, lacunarity, persistence float32) float32 {
	var total, amp, norm float32
	amp = 1
	freq := float32(1)
	for o := 0; o < octaves; o++ {
		total += amp * s.Noise2(x*freq, y*freq)
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// Fractal3 sums octaves of 3D noise; see [Simplex.Fractal2].
func (s *Simplex) Fractal3(x, y, z float32, octaves int, lacunarity, persistence float32) float32 {
	var total, amp, norm float32
	amp = 1
	freq := float32(1)
	for o := 0; o < octaves; o++ {
		total += amp * s.Noise3(x*freq, y*freq, z*freq)
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}
