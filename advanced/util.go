package advanced

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Coordinates here survive a hull insertion, a circumcenter solve, and two
// affine maps; exact comparison would misclassify points that land on a hull
// edge or a circle boundary an ulp off.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer, the hull being the
// obvious one (its last edge closes back to the first vertex). This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
