package march

import (
	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/math32"
)

// Corner identifies a corner of the unit cube. The enum value is the bit
// position in a corner mask: bit 0 is the x-axis, bit 1 the y-axis,
// bit 2 the z-axis.
type Corner uint8

const (
	Corner000 Corner = iota
	Corner100
	Corner010
	Corner110
	Corner001
	Corner101
	Corner011
	Corner111
	CornerCount
)

// Pos returns the corner position in the unit cube.
func (c Corner) Pos() math32.Vector3i {
	return math32.Vec3i(int32(c)&1, int32(c)>>1&1, int32(c)>>2&1)
}

// CornerAt returns the corner for a 0/1 lattice position.
func CornerAt(p math32.Vector3i) Corner {
	return Corner(p.X | p.Y<<1 | p.Z<<2)
}

// Edge identifies an edge of the unit cube: four edges per axis, indexed
// by the two fixed coordinates of the other axes.
type Edge uint8

const EdgeCount Edge = 12

// Midpoint returns the edge midpoint in the unit cube.
func (e Edge) Midpoint() math32.Vector3 {
	j := float32(e & 1)
	k := float32(e >> 1 & 1)
	switch e / 4 {
	case 0: // along x
		return math32.Vec3(0.5, j, k)
	case 1: // along y
		return math32.Vec3(j, 0.5, k)
	default: // along z
		return math32.Vec3(j, k, 0.5)
	}
}

// edgeAt returns the edge whose midpoint is p (one coordinate 0.5, the
// others 0 or 1).
func edgeAt(p math32.Vector3) Edge {
	switch {
	case p.X == 0.5:
		return Edge(int32(p.Y) + 2*int32(p.Z))
	case p.Y == 0.5:
		return 4 + Edge(int32(p.X)+2*int32(p.Z))
	default:
		return 8 + Edge(int32(p.X)+2*int32(p.Y))
	}
}

// Face identifies a face of the unit cube.
type Face uint8

const (
	FaceLeft   Face = iota // x = 0
	FaceRight              // x = 1
	FaceBottom             // y = 0
	FaceTop                // y = 1
	FaceBack               // z = 0
	FaceFront              // z = 1
	FaceCount
)

// faceFrame embeds a face's 2D square frame into the cube. The u and v
// axes are chosen so that u x v points into the cube; combined with the
// inside-on-the-left segment rule this makes stitched loops wind so that
// triangle normals point out of the inside region.
type faceFrame struct {
	origin math32.Vector3
	u, v   math32.Vector3
}

var faceFrames = enums.ArrayOf[Face](
	faceFrame{math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)}, // left
	faceFrame{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)}, // right
	faceFrame{math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0)}, // bottom
	faceFrame{math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)}, // top
	faceFrame{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}, // back
	faceFrame{math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0)}, // front
)

// embed maps a point in the face's unit square into the cube.
func (f faceFrame) embed(p math32.Vector2) math32.Vector3 {
	return f.origin.Add(f.u.MulScalar(p.X)).Add(f.v.MulScalar(p.Y))
}

// faceCorners and faceEdges map each face's square corners and edges to
// cube corners and edges; derived from the frames at init.
var (
	faceCorners enums.Array[Face, enums.Array[SquareCorner, Corner]]
	faceEdges   enums.Array[Face, enums.Array[SquareEdge, Edge]]
)

// Triangle is a planar boundary triangle whose vertices are cube-edge
// midpoints.
type Triangle [3]Edge

// Points returns the triangle's vertices in the unit cube.
func (t Triangle) Points() [3]math32.Vector3 {
	return [3]math32.Vector3{t[0].Midpoint(), t[1].Midpoint(), t[2].Midpoint()}
}

// Normal returns the (unnormalized) triangle normal, pointing from the
// inside region toward the outside.
func (t Triangle) Normal() math32.Vector3 {
	p := t.Points()
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
}

// cubeTable maps every 8-bit corner mask to its boundary triangles.
var cubeTable [256][]Triangle

func init() {
	faceCorners = enums.NewArray[Face, enums.Array[SquareCorner, Corner]](FaceCount)
	faceEdges = enums.NewArray[Face, enums.Array[SquareEdge, Edge]](FaceCount)
	for f := FaceLeft; f < FaceCount; f++ {
		frame := faceFrames.At(f)
		corners := enums.NewArray[SquareCorner, Corner](SquareCornerCount)
		for sc := SquareCorner00; sc < SquareCornerCount; sc++ {
			p := frame.embed(sc.Pos().ToVector2())
			corners.Set(sc, CornerAt(p.ToVector3i()))
		}
		faceCorners.Set(f, corners)

		edges := enums.NewArray[SquareEdge, Edge](SquareEdgeCount)
		for se := SquareEdgeBottom; se < SquareEdgeCount; se++ {
			edges.Set(se, edgeAt(frame.embed(se.Midpoint())))
		}
		faceEdges.Set(f, edges)
	}

	for mask := uint64(0); mask < 256; mask++ {
		cubeTable[mask] = buildTriangles(enums.SetFromMask[Corner](mask))
	}
}

// buildTriangles derives the boundary triangulation for a corner mask:
// collect each face's boundary segments mapped onto cube edges, stitch
// segments sharing endpoints into closed loops, and fan-triangulate each
// loop from its first vertex.
func buildTriangles(mask enums.Set[Corner]) []Triangle {
	var segs [][2]Edge
	for f := FaceLeft; f < FaceCount; f++ {
		var smask enums.Set[SquareCorner]
		for sc := SquareCorner00; sc < SquareCornerCount; sc++ {
			if mask.Has(faceCorners.At(f).At(sc)) {
				smask = smask.With(sc)
			}
		}
		for _, seg := range SquareSegments(smask) {
			segs = append(segs, [2]Edge{
				faceEdges.At(f).At(seg[0]),
				faceEdges.At(f).At(seg[1]),
			})
		}
	}
	if len(segs) == 0 {
		return nil
	}

	var tris []Triangle
	for _, loop := range stitchLoops(segs) {
		for i := 1; i+1 < len(loop); i++ {
			tris = append(tris, Triangle{loop[0], loop[i], loop[i+1]})
		}
	}
	return tris
}

// stitchLoops chains directed segments end-to-start into closed loops.
// Every boundary vertex has exactly one incoming and one outgoing
// segment, so following the successor map until a repeat closes a loop.
func stitchLoops(segs [][2]Edge) [][]Edge {
	next := make(map[Edge]Edge, len(segs))
	for _, s := range segs {
		next[s[0]] = s[1]
	}
	visited := make(map[Edge]bool, len(segs))
	var loops [][]Edge
	for _, s := range segs {
		if visited[s[0]] {
			continue
		}
		var loop []Edge
		for cur := s[0]; !visited[cur]; cur = next[cur] {
			visited[cur] = true
			loop = append(loop, cur)
		}
		loops = append(loops, loop)
	}
	return loops
}

// Triangles returns the boundary triangulation for the given mask of
// inside corners: an empty list for masks 0 and 255, consistently
// outward-wound triangles otherwise. The returned slice is shared
// lookup-table data and must not be modified.
func Triangles(mask enums.Set[Corner]) []Triangle {
	return cubeTable[mask.Mask()]
}
