package math32

// Matrix3 is a 3x3 matrix stored as a column-major flat array.
type Matrix3 [9]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromColumns returns a new [Matrix3] with the given column vectors.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// At returns the element at the given column and row.
func (m Matrix3) At(col, row int) float32 { return m[col*3+row] }

// Col returns the given column as a vector.
func (m Matrix3) Col(col int) Vector3 {
	return Vector3{m[col*3], m[col*3+1], m[col*3+2]}
}

// SetCol sets the given column from a vector.
func (m *Matrix3) SetCol(col int, v Vector3) {
	m[col*3] = v.X
	m[col*3+1] = v.Y
	m[col*3+2] = v.Z
}

// Mul returns the matrix product m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = m[r]*other[c*3] + m[3+r]*other[c*3+1] + m[6+r]*other[c*3+2]
		}
	}
	return out
}

// MulVector3 returns the matrix-vector product m * v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant, using the 3x3 closed form.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse via Cramer's rule (adjugate over
// determinant). Returns ok=false if the determinant is exactly zero;
// never panics.
func (m Matrix3) Inverse() (Matrix3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, false
	}
	inv := 1 / det
	return Matrix3{
		(m[4]*m[8] - m[7]*m[5]) * inv,
		(m[7]*m[2] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,
		(m[6]*m[5] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[6]*m[2]) * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[6]*m[4]) * inv,
		(m[6]*m[1] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[3]*m[1]) * inv,
	}, true
}
