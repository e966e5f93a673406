package audionode

import (
	"math"

	"github.com/tphakala/go-audio-node/internal/mathutil"
)

// Sine is a frequency-modulatable sine oscillator.
//
// Input 0 carries the instantaneous frequency in Hz and may change every
// sample, including to negative values. Output 0 is sin(2π·phase) where
// phase is a cycle position in [0, 1). Internal math is float64 regardless
// of F, so float32 and float64 graphs produce the same waveform up to the
// final conversion.
//
// On reset the phase is seeded from the identity hash, so oscillators with
// different hashes start decorrelated while the same hash always
// reproduces the same start.
type Sine[F Float] struct {
	phase          float64
	sampleDuration float64
	hash           uint64
}

// NewSine creates a sine oscillator at the given sample rate with hash 0.
// The oscillator is reset on construction, so it is ready to Tick.
// A non-positive or non-finite rate falls back to DefaultSampleRate.
func NewSine[F Float](sampleRate float64) *Sine[F] {
	if !ValidSampleRate(sampleRate) {
		sampleRate = DefaultSampleRate
	}
	s := &Sine[F]{sampleDuration: 1 / sampleRate}
	s.Reset(KeepSampleRate)
	return s
}

// ID returns SineID.
func (s *Sine[F]) ID() uint64 { return SineID }

// Inputs returns 1 (frequency).
func (s *Sine[F]) Inputs() int { return sineInputs }

// Outputs returns 1 (waveform).
func (s *Sine[F]) Outputs() int { return sineOutputs }

// Reset reseeds the phase from the hash and, for a valid rate, updates
// the sample duration.
func (s *Sine[F]) Reset(sampleRate float64) {
	s.phase = mathutil.Rnd(int64(s.hash))
	if ValidSampleRate(sampleRate) {
		s.sampleDuration = 1 / sampleRate
	}
}

// Tick emits sin(2π·phase) and advances the phase by frequency/sampleRate.
func (s *Sine[F]) Tick(input, output Frame[F]) {
	output[0] = F(math.Sin(s.phase * mathutil.Tau))
	s.phase = mathutil.Fract(s.phase + float64(input[0])*s.sampleDuration)
}

// SetHash installs a new identity seed and resets the phase.
func (s *Sine[F]) SetHash(hash uint64) {
	s.hash = hash
	s.Reset(KeepSampleRate)
}

// Route reports zero latency on the output. Inputs and frequency are ignored.
func (s *Sine[F]) Route(_ SignalFrame, _ float64) SignalFrame {
	out := NewSignalFrame(sineOutputs)
	out[0] = LatencySignal(0)
	return out
}

// Phase returns the current cycle position in [0, 1).
func (s *Sine[F]) Phase() float64 { return s.phase }

// SampleRate returns the current sample rate in Hz.
func (s *Sine[F]) SampleRate() float64 { return 1 / s.sampleDuration }

// Hash returns the identity seed.
func (s *Sine[F]) Hash() uint64 { return s.hash }

var (
	_ Node[float32] = (*Sine[float32])(nil)
	_ Node[float64] = (*Sine[float64])(nil)
)
