package math32

// Dims is an axis dimension index used for Dim/SetDim component access.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	}
	return "invalid"
}

// OtherDim returns the other dimension for a 2D context.
func OtherDim(d Dims) Dims {
	if d == X {
		return Y
	}
	return X
}
