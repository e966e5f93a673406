package mathutil

import "math"

// Fract returns the fractional part of x wrapped into [0, 1).
//
// Unlike x - trunc(x), negative inputs wrap upward: Fract(-0.25) == 0.75.
// Non-finite inputs return 0 so a phase accumulator fed a NaN or Inf
// increment restarts from zero instead of staying poisoned.
func Fract(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	f := x - math.Floor(x)
	// Tiny negative inputs round up to exactly 1.
	if f >= 1 {
		return 0
	}
	return f
}
