package mathutil

import "math"

// Tau is one full cycle in radians.
const Tau = 2 * math.Pi

// Hash mixing constants (64-bit avalanche finalizer).
// The salt keeps Rnd(0) away from the mixer's fixed point at zero.
const (
	rndSalt uint64 = 0x5555555555555555
	rndMul1 uint64 = 0x9E3779B97F4A7C15
	rndMul2 uint64 = 0xD6E8FEB86659FD93

	rndShift1 = 31
	rndShift2 = 32

	// The top 53 bits of the mixed value become the float mantissa.
	rndMantissaShift = 11
	rndScale         = 1 << 53
)
