package math32

// MatrixN is a runtime-dimensioned column-major matrix. The fixed-size
// Matrix2/3/4 types cover the common graphics cases; MatrixN carries the
// general-N algorithms: first-column cofactor determinants, recursive
// block inversion, and augmented-system solving.
type MatrixN struct {
	Cols int
	Rows int
	data []float32 // data[col*Rows+row]
}

// NewMatrixN returns a zero cols x rows matrix.
func NewMatrixN(cols, rows int) MatrixN {
	return MatrixN{Cols: cols, Rows: rows, data: make([]float32, cols*rows)}
}

// MatrixNOf returns a cols x rows matrix from the given values in
// column-major order. Panics if the value count does not match.
func MatrixNOf(cols, rows int, vals ...float32) MatrixN {
	if len(vals) != cols*rows {
		panic("math32: MatrixNOf value count does not match dimensions")
	}
	m := NewMatrixN(cols, rows)
	copy(m.data, vals)
	return m
}

// IdentityN returns the n x n identity matrix.
func IdentityN(n int) MatrixN {
	m := NewMatrixN(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// At returns the element at the given column and row.
func (m MatrixN) At(col, row int) float32 { return m.data[col*m.Rows+row] }

// Set sets the element at the given column and row.
func (m MatrixN) Set(col, row int, v float32) { m.data[col*m.Rows+row] = v }

// Col returns a copy of the given column.
func (m MatrixN) Col(col int) []float32 {
	out := make([]float32, m.Rows)
	copy(out, m.data[col*m.Rows:(col+1)*m.Rows])
	return out
}

// SetColVals sets the given column from a slice.
func (m MatrixN) SetColVals(col int, vals []float32) {
	copy(m.data[col*m.Rows:(col+1)*m.Rows], vals)
}

// Clone returns a deep copy of this matrix.
func (m MatrixN) Clone() MatrixN {
	out := NewMatrixN(m.Cols, m.Rows)
	copy(out.data, m.data)
	return out
}

// Sub returns a copy of the cols x rows block starting at (col, row).
func (m MatrixN) Sub(col, row, cols, rows int) MatrixN {
	out := NewMatrixN(cols, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out.data[c*rows+r] = m.At(col+c, row+r)
		}
	}
	return out
}

// SetSub copies sub into this matrix starting at (col, row).
func (m MatrixN) SetSub(col, row int, sub MatrixN) {
	for c := 0; c < sub.Cols; c++ {
		for r := 0; r < sub.Rows; r++ {
			m.Set(col+c, row+r, sub.At(c, r))
		}
	}
}

// Mul returns the matrix product m * other. Panics on a dimension
// mismatch.
func (m MatrixN) Mul(other MatrixN) MatrixN {
	if m.Cols != other.Rows {
		panic("math32: MatrixN dimension mismatch in Mul")
	}
	out := NewMatrixN(other.Cols, m.Rows)
	for c := 0; c < other.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			var sum float32
			for k := 0; k < m.Cols; k++ {
				sum += m.At(k, r) * other.At(c, k)
			}
			out.Set(c, r, sum)
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m MatrixN) MulVec(v []float32) []float32 {
	if m.Cols != len(v) {
		panic("math32: MatrixN dimension mismatch in MulVec")
	}
	out := make([]float32, m.Rows)
	for r := 0; r < m.Rows; r++ {
		var sum float32
		for c := 0; c < m.Cols; c++ {
			sum += m.At(c, r) * v[c]
		}
		out[r] = sum
	}
	return out
}

// Add returns the element-wise sum m + other.
func (m MatrixN) Add(other MatrixN) MatrixN {
	out := m.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out
}

// SubMatrix returns the element-wise difference m - other.
func (m MatrixN) SubMatrix(other MatrixN) MatrixN {
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= other.data[i]
	}
	return out
}

// Neg returns this matrix with every element negated.
func (m MatrixN) Neg() MatrixN {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}
	return out
}

// Transpose returns the transposed matrix.
func (m MatrixN) Transpose() MatrixN {
	out := NewMatrixN(m.Rows, m.Cols)
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			out.Set(r, c, m.At(c, r))
		}
	}
	return out
}

// withoutColRow returns the minor matrix with the given column and row
// removed.
func (m MatrixN) withoutColRow(col, row int) MatrixN {
	out := NewMatrixN(m.Cols-1, m.Rows-1)
	oc := 0
	for c := 0; c < m.Cols; c++ {
		if c == col {
			continue
		}
		or := 0
		for r := 0; r < m.Rows; r++ {
			if r == row {
				continue
			}
			out.Set(oc, or, m.At(c, r))
			or++
		}
		oc++
	}
	return out
}

// Determinant returns the determinant of a square matrix: closed forms up
// to 3x3 (for speed and numeric stability), cofactor expansion along the
// first column above that. Panics if the matrix is not square.
func (m MatrixN) Determinant() float32 {
	if m.Cols != m.Rows {
		panic("math32: determinant of non-square MatrixN")
	}
	switch m.Cols {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	case 3:
		return m.data[0]*(m.data[4]*m.data[8]-m.data[7]*m.data[5]) -
			m.data[3]*(m.data[1]*m.data[8]-m.data[7]*m.data[2]) +
			m.data[6]*(m.data[1]*m.data[5]-m.data[4]*m.data[2])
	}
	var det, sign float32
	sign = 1
	for r := 0; r < m.Rows; r++ {
		if v := m.At(0, r); v != 0 {
			det += sign * v * m.withoutColRow(0, r).Determinant()
		}
		sign = -sign
	}
	return det
}

// Inverse returns the inverse of a square matrix, or ok=false for a
// singular matrix; never panics on singularity. Dimensions up to 4 use
// Cramer's rule (adjugate over determinant); larger matrices use
// recursive 2x2 block inversion via the Schur complement, falling back to
// the adjugate when a leading block is itself singular.
func (m MatrixN) Inverse() (MatrixN, bool) {
	if m.Cols != m.Rows {
		panic("math32: inverse of non-square MatrixN")
	}
	n := m.Cols
	if n <= 4 {
		return m.inverseAdjugate()
	}
	if m.Determinant() == 0 {
		return MatrixN{}, false
	}
	return m.inverseBlock()
}

// inverseAdjugate implements Cramer's rule directly.
func (m MatrixN) inverseAdjugate() (MatrixN, bool) {
	n := m.Cols
	det := m.Determinant()
	if det == 0 {
		return MatrixN{}, false
	}
	inv := 1 / det
	out := NewMatrixN(n, n)
	if n == 1 {
		out.data[0] = inv
		return out, true
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			cof := m.withoutColRow(c, r).Determinant()
			if (c+r)%2 != 0 {
				cof = -cof
			}
			// Adjugate transposes: the (c,r) cofactor lands at (r,c).
			out.Set(r, c, cof*inv)
		}
	}
	return out, true
}

// inverseBlock inverts via the partition
//
//	A = | P Q |      A^-1 = | P^-1 + P^-1 Q S'^-1 R P^-1   -P^-1 Q S'^-1 |
//	    | R S |             | -S'^-1 R P^-1                 S'^-1        |
//
// with the Schur complement S' = S - R P^-1 Q. The caller has already
// established that A is nonsingular; if P or S' happens to be singular
// the adjugate path is used instead.
func (m MatrixN) inverseBlock() (MatrixN, bool) {
	n := m.Cols
	k := n / 2
	p := m.Sub(0, 0, k, k)
	q := m.Sub(k, 0, n-k, k)
	r := m.Sub(0, k, k, n-k)
	s := m.Sub(k, k, n-k, n-k)

	pInv, ok := p.Inverse()
	if !ok {
		return m.inverseAdjugate()
	}
	schur := s.SubMatrix(r.Mul(pInv).Mul(q))
	schurInv, ok := schur.Inverse()
	if !ok {
		return m.inverseAdjugate()
	}

	piq := pInv.Mul(q)    // P^-1 Q
	rpi := r.Mul(pInv)    // R P^-1
	topRight := piq.Mul(schurInv).Neg()
	bottomLeft := schurInv.Mul(rpi).Neg()
	topLeft := pInv.Add(piq.Mul(schurInv).Mul(rpi))

	out := NewMatrixN(n, n)
	out.SetSub(0, 0, topLeft)
	out.SetSub(k, 0, topRight)
	out.SetSub(0, k, bottomLeft)
	out.SetSub(k, k, schurInv)
	return out, true
}

// solveCrossover is the unknown count at which Solve switches from
// column-swap Cramer determinants to inverse-based solving; below it the
// determinant ratios are cheaper, at and above it the full inverse is.
const solveCrossover = 5

// Solve solves the linear system held in an augmented matrix whose last
// column is the right-hand side (Cols == Rows+1). Returns the unknowns in
// order, or ok=false for a singular system. Panics on a dimension
// mismatch.
func (m MatrixN) Solve() ([]float32, bool) {
	n := m.Rows
	if m.Cols != n+1 {
		panic("math32: Solve requires an augmented matrix (Cols == Rows+1)")
	}
	a := m.Sub(0, 0, n, n)
	b := m.Col(n)
	if n >= solveCrossover {
		aInv, ok := a.Inverse()
		if !ok {
			return nil, false
		}
		return aInv.MulVec(b), true
	}
	det := a.Determinant()
	if det == 0 {
		return nil, false
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		ai := a.Clone()
		ai.SetColVals(i, b)
		out[i] = ai.Determinant() / det
	}
	return out, true
}

// SolveCol solves the augmented system for the single unknown at index
// col, using the same crossover strategy as [MatrixN.Solve].
func (m MatrixN) SolveCol(col int) (float32, bool) {
	n := m.Rows
	if m.Cols != n+1 {
		panic("math32: SolveCol requires an augmented matrix (Cols == Rows+1)")
	}
	a := m.Sub(0, 0, n, n)
	b := m.Col(n)
	if n >= solveCrossover {
		aInv, ok := a.Inverse()
		if !ok {
			return 0, false
		}
		var sum float32
		for c := 0; c < n; c++ {
			sum += aInv.At(c, col) * b[c]
		}
		return sum, true
	}
	det := a.Determinant()
	if det == 0 {
		return 0, false
	}
	ai := a.Clone()
	ai.SetColVals(col, b)
	return ai.Determinant() / det, true
}
