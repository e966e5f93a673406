// Package mathutil provides the small numeric helpers shared by audio nodes:
// hash-seeded pseudo-randomness and phase wrapping.
package mathutil

// Rnd maps a 64-bit integer to a reproducible pseudo-random value in [0, 1).
//
// The mapping is a pure function: the same input always yields the same
// output on every platform, and nearby inputs (such as consecutive node
// hashes) yield uncorrelated outputs. Nodes call it from their reset path
// to seed phase or noise state; it is never called per sample.
func Rnd(x int64) float64 {
	z := uint64(x) ^ rndSalt
	z *= rndMul1
	z = (z ^ (z >> rndShift1)) * rndMul2
	z = (z ^ (z >> rndShift2)) * rndMul2
	return float64(z>>rndMantissaShift) / rndScale
}
