package audionode

import "fmt"

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes88 is the high-resolution 2x CD sample rate.
	RateHiRes88 = 88200

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateHiRes192 is the very high resolution 4x DAT sample rate.
	RateHiRes192 = 192000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000
)

// NewSineCD creates a sine oscillator running at 44.1kHz.
func NewSineCD[F Float]() *Sine[F] {
	return NewSine[F](RateCD)
}

// NewSineDAT creates a sine oscillator running at 48kHz.
func NewSineDAT[F Float]() *Sine[F] {
	return NewSine[F](RateDAT)
}

// NewSineWithHash creates a sine oscillator with the given identity seed.
func NewSineWithHash[F Float](sampleRate float64, hash uint64) *Sine[F] {
	s := NewSine[F](sampleRate)
	s.SetHash(hash)
	return s
}

// Drive runs a node for len(dst) samples with every input channel held at
// the value in input, writing output channel 0 into dst. The frames are
// allocated once; the loop itself does not allocate.
func Drive[F Float](n Node[F], input Frame[F], dst []F) error {
	in := NewFrame[F](n.Inputs())
	out := NewFrame[F](n.Outputs())
	if len(input) != len(in) {
		return fmt.Errorf("%w: node %d expects %d inputs, got %d",
			ErrArityMismatch, n.ID(), len(in), len(input))
	}
	if len(out) == 0 {
		return fmt.Errorf("%w: node %d has no outputs", ErrArityMismatch, n.ID())
	}
	copy(in, input)

	for i := range dst {
		n.Tick(in, out)
		dst[i] = out[0]
	}
	return nil
}

// RenderSine is a convenience function for one-shot tone generation.
// It creates an oscillator with the given hash, drives it at a constant
// frequency, and returns numSamples float64 samples.
func RenderSine(frequency, sampleRate float64, hash uint64, numSamples int) ([]float64, error) {
	if !ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidConfig, sampleRate)
	}
	if numSamples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidConfig, numSamples)
	}

	osc := NewSineWithHash[float64](sampleRate, hash)
	out := make([]float64, numSamples)
	if err := Drive[float64](osc, Frame[float64]{frequency}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderSineFloat32 is like RenderSine but produces float32 samples.
func RenderSineFloat32(frequency, sampleRate float64, hash uint64, numSamples int) ([]float32, error) {
	if !ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidConfig, sampleRate)
	}
	if numSamples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidConfig, numSamples)
	}

	osc := NewSineWithHash[float32](sampleRate, hash)
	out := make([]float32, numSamples)
	if err := Drive[float32](osc, Frame[float32]{float32(frequency)}, out); err != nil {
		return nil, err
	}
	return out, nil
}
