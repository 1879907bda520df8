package math32

// Matrix2 is a 2x2 matrix stored as a column-major flat array.
type Matrix2 [4]float32

// Identity2 returns the 2x2 identity matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
	}
}

// Matrix2FromColumns returns a new [Matrix2] with the given column vectors.
func Matrix2FromColumns(c0, c1 Vector2) Matrix2 {
	return Matrix2{c0.X, c0.Y, c1.X, c1.Y}
}

// At returns the element at the given column and row.
func (m Matrix2) At(col, row int) float32 { return m[col*2+row] }

// Col returns the given column as a vector.
func (m Matrix2) Col(col int) Vector2 {
	return Vector2{m[col*2], m[col*2+1]}
}

// SetCol sets the given column from a vector.
func (m *Matrix2) SetCol(col int, v Vector2) {
	m[col*2] = v.X
	m[col*2+1] = v.Y
}

// Mul returns the matrix product m * other.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	var out Matrix2
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[c*2+r] = m[r]*other[c*2] + m[2+r]*other[c*2+1]
		}
	}
	return out
}

// MulVector2 returns the matrix-vector product m * v.
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return Vector2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// Determinant returns the determinant, using the 2x2 closed form.
func (m Matrix2) Determinant() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// Inverse returns the inverse via Cramer's rule (adjugate over
// determinant). Returns ok=false if the determinant is exactly zero;
// never panics.
func (m Matrix2) Inverse() (Matrix2, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2{}, false
	}
	inv := 1 / det
	return Matrix2{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, true
}
