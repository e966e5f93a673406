// Package analysis measures rendered node output: level statistics and the
// dominant frequency of a tone.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-node/internal/mathutil"
	"github.com/tphakala/go-audio-node/internal/simdops"
)

// ErrTooShort indicates the input has too few samples to analyze.
var ErrTooShort = errors.New("signal too short for analysis")

// minSpectrumSamples is the shortest input DominantFrequency accepts.
const minSpectrumSamples = 16

// hannHalf is the Hann window constant: w[i] = 0.5 - 0.5*cos(2πi/(n-1)).
const hannHalf = 0.5

// Peak returns the largest absolute sample value.
func Peak[F simdops.Float](s []F) float64 {
	var peak float64
	for _, v := range s {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	return peak
}

// RMS returns the root mean square level of s, or 0 for an empty slice.
func RMS[F simdops.Float](s []F) float64 {
	if len(s) == 0 {
		return 0
	}
	ops := simdops.For[F]()
	return math.Sqrt(float64(ops.Energy(s)) / float64(len(s)))
}

// DCOffset returns the mean sample value.
func DCOffset[F simdops.Float](s []F) float64 {
	return float64(simdops.For[F]().Mean(s))
}

// DominantFrequency estimates the frequency in Hz of the strongest spectral
// component of s. A Hann window reduces leakage and parabolic interpolation
// across the peak bin refines the estimate below bin resolution.
func DominantFrequency[F simdops.Float](s []F, sampleRate float64) (float64, error) {
	n := len(s)
	if n < minSpectrumSamples {
		return 0, fmt.Errorf("%w: %d samples, need at least %d", ErrTooShort, n, minSpectrumSamples)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("invalid sample rate: %f", sampleRate)
	}

	seq := make([]float64, n)
	window := make([]float64, n)
	for i, v := range s {
		seq[i] = float64(v)
		window[i] = hannHalf - hannHalf*math.Cos(mathutil.Tau*float64(i)/float64(n-1))
	}
	floats.Mul(seq, window)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	// |X|^2 = X * conj(X)
	conj := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		conj[i] = cmplx.Conj(c)
	}
	power := make([]complex128, len(coeffs))
	c128.Mul(power, coeffs, conj)

	mags := make([]float64, len(power))
	for i, p := range power {
		mags[i] = math.Sqrt(math.Max(real(p), 0))
	}
	// Ignore DC.
	mags[0] = 0
	k := floats.MaxIdx(mags)

	offset := 0.0
	if k > 0 && k < len(mags)-1 {
		a, b, c := mags[k-1], mags[k], mags[k+1]
		if d := a - 2*b + c; d != 0 {
			offset = hannHalf * (a - c) / d
		}
	}

	return (float64(k) + offset) * fft.Freq(1) * sampleRate, nil
}
