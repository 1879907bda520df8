// Package march builds marching squares/cubes lookup tables: given a
// mask of which square/cube corners lie inside a surface, it produces
// the boundary as directed segments (2D) or triangles (3D) with
// consistent winding. Both tables are built once at package init;
// lookups are plain array indexing.
package march

import (
	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/math32"
)

// SquareCorner identifies a corner of the unit square. The enum value is
// the bit position in a corner mask: bit 0 is the a-axis, bit 1 the
// b-axis.
type SquareCorner uint8

const (
	SquareCorner00 SquareCorner = iota
	SquareCorner10
	SquareCorner01
	SquareCorner11
	SquareCornerCount
)

// Pos returns the corner position in the unit square.
func (c SquareCorner) Pos() math32.Vector2i {
	return math32.Vec2i(int32(c)&1, int32(c)>>1)
}

// SquareEdge identifies an edge of the unit square.
type SquareEdge uint8

const (
	SquareEdgeBottom SquareEdge = iota
	SquareEdgeTop
	SquareEdgeLeft
	SquareEdgeRight
	SquareEdgeCount
)

// Midpoint returns the edge midpoint in the unit square.
func (e SquareEdge) Midpoint() math32.Vector2 {
	switch e {
	case SquareEdgeBottom:
		return math32.Vec2(0.5, 0)
	case SquareEdgeTop:
		return math32.Vec2(0.5, 1)
	case SquareEdgeLeft:
		return math32.Vec2(0, 0.5)
	default:
		return math32.Vec2(1, 0.5)
	}
}

// Segment is a directed boundary cut from one edge midpoint to another.
// Inside corners lie on the left of the travel direction, which is what
// keeps stitched loops consistently wound.
type Segment [2]SquareEdge

// Reverse returns the segment traveled the other way.
func (s Segment) Reverse() Segment { return Segment{s[1], s[0]} }

// cornerCuts holds, per corner, the L-shaped cut that separates exactly
// that corner, directed with the corner on the left.
var cornerCuts = enums.ArrayOf[SquareCorner](
	Segment{SquareEdgeBottom, SquareEdgeLeft},  // 00
	Segment{SquareEdgeRight, SquareEdgeBottom}, // 10
	Segment{SquareEdgeLeft, SquareEdgeTop},     // 01
	Segment{SquareEdgeTop, SquareEdgeRight},    // 11
)

// squareTable maps every 4-bit corner mask to its boundary segments.
var squareTable [16][]Segment

func init() {
	for mask := uint64(0); mask < 16; mask++ {
		squareTable[mask] = buildSegments(enums.SetFromMask[SquareCorner](mask))
	}
}

// buildSegments derives the 0-2 boundary segments for a corner mask by
// case analysis on the number of inside corners.
func buildSegments(mask enums.Set[SquareCorner]) []Segment {
	switch mask.Count() {
	case 0, 4:
		return nil
	case 1:
		for c := range mask.Members() {
			return []Segment{cornerCuts.At(c)}
		}
	case 3:
		// Inverted single-corner cut around the one outside corner.
		for c := range mask.Complement(SquareCornerCount).Members() {
			return []Segment{cornerCuts.At(c).Reverse()}
		}
	case 2:
		switch mask.Mask() {
		case 0b0011: // bottom row
			return []Segment{{SquareEdgeRight, SquareEdgeLeft}}
		case 0b1100: // top row
			return []Segment{{SquareEdgeLeft, SquareEdgeRight}}
		case 0b0101: // left column
			return []Segment{{SquareEdgeBottom, SquareEdgeTop}}
		case 0b1010: // right column
			return []Segment{{SquareEdgeTop, SquareEdgeBottom}}
		case 0b1001: // opposite corners: two independent L cuts
			return []Segment{cornerCuts.At(SquareCorner00), cornerCuts.At(SquareCorner11)}
		case 0b0110:
			return []Segment{cornerCuts.At(SquareCorner10), cornerCuts.At(SquareCorner01)}
		}
	}
	return nil
}

// SquareSegments returns the boundary segments for the given mask of
// inside corners. The returned slice is shared lookup-table data and
// must not be modified.
func SquareSegments(mask enums.Set[SquareCorner]) []Segment {
	return squareTable[mask.Mask()]
}
