package main

import (
	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/march"
	"github.com/mirefox/glint/math32"
)

// vertexFloats is position + normal per vertex.
const vertexFloats = 6

// buildTerrainVertices samples a fractal simplex field on an n³ lattice
// and polygonizes the threshold surface with marching cubes. The mesh is
// centered on the origin; vertices are interleaved x,y,z,nx,ny,nz.
func buildTerrainVertices(cfg demoConfig) []float32 {
	noise := math32.NewSimplex(cfg.Seed)
	n := cfg.GridSize

	lattice := math32.B3(math32.Vector3i{}, math32.Vec3i(n+1, n+1, n+1))
	samples := make([]float32, lattice.Count())
	idx := func(p math32.Vector3i) int {
		return int((p.Z*(n+1)+p.Y)*(n+1) + p.X)
	}
	for p := range lattice.Points() {
		f := p.ToVector3().MulScalar(cfg.Frequency)
		samples[idx(p)] = noise.Fractal3(f.X, f.Y, f.Z, cfg.Octaves, cfg.Lacunarity, cfg.Persistence)
	}

	center := math32.Vec3(float32(n)/2, float32(n)/2, float32(n)/2)
	var verts []float32
	for cell := range math32.B3(math32.Vector3i{}, math32.Vec3i(n, n, n)).Points() {
		var mask enums.Set[march.Corner]
		for c := march.Corner(0); c < march.CornerCount; c++ {
			if samples[idx(cell.Add(c.Pos()))] > cfg.Threshold {
				mask = mask.With(c)
			}
		}
		for _, tri := range march.Triangles(mask) {
			normal := tri.Normal().Normal()
			for _, pt := range tri.Points() {
				pos := cell.ToVector3().Add(pt).Sub(center)
				verts = append(verts, pos.X, pos.Y, pos.Z, normal.X, normal.Y, normal.Z)
			}
		}
	}
	return verts
}
