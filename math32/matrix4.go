package math32

// Matrix4 is a 4x4 matrix stored as a column-major flat array, matching
// the OpenGL convention for column-vector math (transform = M * v).
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3D returns a translation matrix by v.
func Translate3D(v Vector3) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scale3D returns a scale matrix by v.
func Scale3D(v Vector3) Matrix4 {
	return Matrix4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX3D returns a rotation matrix about the X axis by angle radians.
func RotateX3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY3D returns a rotation matrix about the Y axis by angle radians.
func RotateY3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ3D returns a rotation matrix about the Z axis by angle radians.
func RotateZ3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Orthographic returns an orthographic projection matrix mapping the given
// box to clip space.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)
	return Matrix4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// Perspective returns a perspective projection matrix for the given
// vertical field of view (radians), aspect ratio, and near/far planes.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(fovy/2)
	fn := 1 / (far - near)
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -(far + near) * fn, -1,
		0, 0, -2 * far * near * fn, 0,
	}
}

// LookAt returns a view matrix for a camera at eye looking at target with
// the given up direction.
func LookAt(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)
	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// At returns the element at the given column and row.
func (m Matrix4) At(col, row int) float32 { return m[col*4+row] }

// Col returns the given column as a vector.
func (m Matrix4) Col(col int) Vector4 {
	return Vector4{m[col*4], m[col*4+1], m[col*4+2], m[col*4+3]}
}

// SetCol sets the given column from a vector.
func (m *Matrix4) SetCol(col int, v Vector4) {
	m[col*4] = v.X
	m[col*4+1] = v.Y
	m[col*4+2] = v.Z
	m[col*4+3] = v.W
}

// Mul returns the matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m[r]*other[c*4] +
				m[4+r]*other[c*4+1] +
				m[8+r]*other[c*4+2] +
				m[12+r]*other[c*4+3]
		}
	}
	return out
}

// MulVector4 returns the matrix-vector product m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint3 transforms a point (w = 1), dividing by the resulting w.
func (m Matrix4) MulPoint3(v Vector3) Vector3 {
	out := m.MulVector4(Vector4FromVector3(v, 1))
	if out.W != 0 && out.W != 1 {
		return out.XYZ().DivScalar(out.W)
	}
	return out.XYZ()
}

// MulDirection3 transforms a direction (w = 0); translation is ignored.
func (m Matrix4) MulDirection3(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 0)).XYZ()
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// minor returns the 3x3 matrix left after removing the given column and row.
func (m Matrix4) minor(col, row int) Matrix3 {
	var out Matrix3
	oc := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		or := 0
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			out[oc*3+or] = m[c*4+r]
			or++
		}
		oc++
	}
	return out
}

// Determinant returns the determinant via cofactor expansion along the
// first column.
func (m Matrix4) Determinant() float32 {
	var det, sign float32
	sign = 1
	for r := 0; r < 4; r++ {
		det += sign * m[r] * m.minor(0, r).Determinant()
		sign = -sign
	}
	return det
}

// Inverse returns the inverse via Cramer's rule (adjugate over
// determinant). Returns ok=false if the determinant is exactly zero;
// never panics.
func (m Matrix4) Inverse() (Matrix4, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, false
	}
	inv := 1 / det
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			// Adjugate: transposed cofactor, so the (c,r) minor lands at (r,c).
			cof := m.minor(c, r).Determinant()
			if (c+r)%2 != 0 {
				cof = -cof
			}
			out[r*4+c] = cof * inv
		}
	}
	return out, true
}
