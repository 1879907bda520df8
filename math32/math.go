// Package math32 is a float32 based vector, matrix, quaternion, bounds,
// and geometry package for 3D graphics. Fixed-dimension types are concrete
// structs per dimension (Vector2/3/4, Matrix2/3/4); the general-N
// algorithms live on the runtime-dimensioned [MatrixN].
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar helpers are mostly thin wrappers around chewxy/math32, which has
// optimized float32 implementations.

// Mathematical constants.
const (
	Pi    = math.Pi
	E     = math.E
	Sqrt2 = math.Sqrt2
)

const (
	// MaxFloat32 is the largest finite float32.
	MaxFloat32 = math.MaxFloat32

	// Epsilon is the default tolerance for [AlmostEqual].
	Epsilon = 1e-5
)

const (
	degToRadFactor = Pi / 180
	radToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 { return degrees * degToRadFactor }

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 { return radians * radToDegFactor }

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return math32.Cos(x) }

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 { return math32.Tan(x) }

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 { return math32.Asin(x) }

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 { return math32.Acos(x) }

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 { return math32.Mod(x, y) }

// Pow returns x**y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// IsNaN reports whether x is a NaN value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// AlmostEqual reports whether a and b are within [Epsilon] of each other.
func AlmostEqual(a, b float32) bool { return AlmostEqualEps(a, b, Epsilon) }

// AlmostEqualEps reports whether a and b are within eps of each other.
func AlmostEqualEps(a, b, eps float32) bool { return Abs(a-b) <= eps }
