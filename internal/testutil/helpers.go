// Package testutil provides reusable test helper functions for audio node tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-audio-node/internal/simdops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	Float32Tolerance = 1e-6
	PhaseTolerance   = 1e-9
	FrequencyBinHz   = 2.0
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		x := float64(v)
		if math.IsNaN(x) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(x, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F simdops.Float](t *testing.T, s []F, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		x := float64(v)
		if x < minVal || x > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, x, minVal, maxVal)
		}
	}
	return true
}

// AssertBitExact verifies that two sample slices are identical sample for sample.
func AssertBitExact[F simdops.Float](t *testing.T, expected, actual []F, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return assert.Fail(t, "samples differ",
				"sample %d: expected %v, got %v", i, expected[i], actual[i])
		}
	}
	return true
}

// AssertPhaseEqual compares two phases in [0, 1) on the unit circle, so
// 0.9999999999 and 0 are considered equal.
func AssertPhaseEqual(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := math.Abs(expected - actual)
	if d > 0.5 {
		d = 1 - d
	}
	if d > tolerance {
		return assert.Fail(t, "phase mismatch",
			"expected phase %.15f, got %.15f (distance %e)", expected, actual, d)
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// ConstantFrequency returns n copies of freq, useful as a frequency input stream.
func ConstantFrequency(freq float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = freq
	}
	return out
}
