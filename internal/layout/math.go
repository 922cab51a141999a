package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Total is the extent every size vector sums to.
const Total = 100.0

// Epsilon is the tolerance used when comparing sizes.
const Epsilon = 1e-6

// Clamp limits value to [lo, hi]. If lo > hi the result is hi.
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// Sum returns the sum of all sizes.
func Sum(sizes []float64) float64 {
	return floats.Sum(sizes)
}

// ApproxEqual reports whether a and b are within Epsilon of each other.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}
