package math32

// Geometric primitives as axis systems: a support point plus direction
// vectors. Intersection tests solve small linear systems through the
// matrix layer and report "no intersection" as ok=false.

// Line2 is a 2D line through Support along Dir.
type Line2 struct {
	Support Vector2
	Dir     Vector2
}

// PointAt returns Support + t*Dir.
func (l Line2) PointAt(t float32) Vector2 {
	return l.Support.Add(l.Dir.MulScalar(t))
}

// SideOf returns the perp-dot of Dir with p-Support: positive when p is
// on the left of the line, negative on the right, zero on the line.
func (l Line2) SideOf(p Vector2) float32 {
	return l.Dir.Cross(p.Sub(l.Support))
}

// ClosestParam returns the parameter t of the point on the line closest
// to p. Returns 0 for a degenerate (zero-direction) line.
func (l Line2) ClosestParam(p Vector2) float32 {
	d := l.Dir.LengthSquared()
	if d == 0 {
		return 0
	}
	return p.Sub(l.Support).Dot(l.Dir) / d
}

// IntersectLine returns the parameter t on this line where it crosses
// other, or ok=false for parallel (or degenerate) lines.
func (l Line2) IntersectLine(other Line2) (float32, bool) {
	// [Dir -other.Dir] (t,u)^T = other.Support - Support
	m := Matrix2FromColumns(l.Dir, other.Dir.Negate())
	inv, ok := m.Inverse()
	if !ok {
		return 0, false
	}
	tu := inv.MulVector2(other.Support.Sub(l.Support))
	return tu.X, true
}

// Line3 is a 3D line through Support along Dir.
type Line3 struct {
	Support Vector3
	Dir     Vector3
}

// PointAt returns Support + t*Dir.
func (l Line3) PointAt(t float32) Vector3 {
	return l.Support.Add(l.Dir.MulScalar(t))
}

// ClosestParam returns the parameter t of the point on the line closest
// to p. Returns 0 for a degenerate (zero-direction) line.
func (l Line3) ClosestParam(p Vector3) float32 {
	d := l.Dir.LengthSquared()
	if d == 0 {
		return 0
	}
	return p.Sub(l.Support).Dot(l.Dir) / d
}

// DistanceTo returns the distance from p to the line.
func (l Line3) DistanceTo(p Vector3) float32 {
	return p.Sub(l.PointAt(l.ClosestParam(p))).Length()
}

// Plane3 is a 3D plane through Support spanned by DirX and DirY.
type Plane3 struct {
	Support Vector3
	DirX    Vector3
	DirY    Vector3
}

// PointAt returns Support + a*DirX + b*DirY.
func (p Plane3) PointAt(a, b float32) Vector3 {
	return p.Support.Add(p.DirX.MulScalar(a)).Add(p.DirY.MulScalar(b))
}

// Normal returns the unit normal DirX x DirY.
func (p Plane3) Normal() Vector3 {
	return p.DirX.Cross(p.DirY).Normal()
}

// SignedDistance returns the signed distance of q from the plane along
// the normal.
func (p Plane3) SignedDistance(q Vector3) float32 {
	return p.Normal().Dot(q.Sub(p.Support))
}

// IntersectLine returns the point where line crosses this plane, or
// ok=false when the line is parallel to the plane (the 3x3 system is
// singular).
func (p Plane3) IntersectLine(line Line3) (Vector3, bool) {
	a, b, _, ok := p.IntersectLineParams(line)
	if !ok {
		return Vector3{}, false
	}
	return p.PointAt(a, b), true
}

// IntersectLineParams returns the plane parameters (a, b) and the line
// parameter t of the intersection, solving
//
//	Support + a*DirX + b*DirY = line.Support + t*line.Dir
//
// as a 3x3 system. ok=false when the system is singular.
func (p Plane3) IntersectLineParams(line Line3) (a, b, t float32, ok bool) {
	m := Matrix3FromColumns(p.DirX, p.DirY, line.Dir.Negate())
	inv, ok := m.Inverse()
	if !ok {
		return 0, 0, 0, false
	}
	abt := inv.MulVector3(line.Support.Sub(p.Support))
	return abt.X, abt.Y, abt.Z, true
}

// IntersectPlane returns the line where this plane crosses other, or
// ok=false for parallel planes. The line support is the point on the
// intersection closest to the origin-projection constraint dir.p = 0,
// found by solving the augmented system through [MatrixN.Solve].
func (p Plane3) IntersectPlane(other Plane3) (Line3, bool) {
	n1 := p.Normal()
	n2 := other.Normal()
	dir := n1.Cross(n2)
	if dir.LengthSquared() < Epsilon*Epsilon {
		return Line3{}, false
	}
	// Rows: n1.q = n1.s1, n2.q = n2.s2, dir.q = 0.
	aug := MatrixNOf(4, 3,
		n1.X, n2.X, dir.X,
		n1.Y, n2.Y, dir.Y,
		n1.Z, n2.Z, dir.Z,
		n1.Dot(p.Support), n2.Dot(other.Support), 0,
	)
	q, ok := aug.Solve()
	if !ok {
		return Line3{}, false
	}
	return Line3{Support: Vec3(q[0], q[1], q[2]), Dir: dir.Normal()}, true
}

// Spat3 is a 3D parallelepiped axis system: a support point with three
// spanning directions.
type Spat3 struct {
	Support Vector3
	DirX    Vector3
	DirY    Vector3
	DirZ    Vector3
}

// PointAt returns Support + a*DirX + b*DirY + c*DirZ.
func (s Spat3) PointAt(a, b, c float32) Vector3 {
	return s.Support.
		Add(s.DirX.MulScalar(a)).
		Add(s.DirY.MulScalar(b)).
		Add(s.DirZ.MulScalar(c))
}

// Volume returns the signed volume spanned by the three directions (the
// triple product).
func (s Spat3) Volume() float32 {
	return Matrix3FromColumns(s.DirX, s.DirY, s.DirZ).Determinant()
}

// ToLocal returns the (a, b, c) coordinates of p in this axis system, or
// ok=false when the directions are linearly dependent.
func (s Spat3) ToLocal(p Vector3) (Vector3, bool) {
	inv, ok := Matrix3FromColumns(s.DirX, s.DirY, s.DirZ).Inverse()
	if !ok {
		return Vector3{}, false
	}
	return inv.MulVector3(p.Sub(s.Support)), true
}

// Contains reports whether p lies inside the parallelepiped (local
// coordinates all in [0, 1]). Returns false for a degenerate system.
func (s Spat3) Contains(p Vector3) bool {
	local, ok := s.ToLocal(p)
	if !ok {
		return false
	}
	return local.AllGreaterEqual(Vector3{}) && local.AllLessEqual(Vector3Scalar(1))
}
