// Package render drives sine oscillators offline into sample buffers.
//
// It is a reference graph driver for tooling and tests: each channel owns
// its own oscillator, reset and seeded before the first tick, and is ticked
// exactly once per sample in increasing time order. Block-level work
// (gain, interleaving, statistics) happens after the per-sample loop.
package render

import (
	"errors"
	"fmt"
	"math"
	"sync"

	audionode "github.com/tphakala/go-audio-node"
	"github.com/tphakala/go-audio-node/internal/analysis"
	"github.com/tphakala/go-audio-node/internal/simdops"
)

// Render limits
const (
	stereoChannels = 2
	maxChannels    = 256
	maxDuration    = 3600.0 // One hour of audio
)

// Defaults
const (
	defaultFrequency = 440.0
	defaultDuration  = 1.0
	defaultAmplitude = 0.5
)

// ErrInvalidConfig indicates an invalid render configuration.
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config describes an offline render.
type Config struct {
	// SampleRate in Hz.
	SampleRate float64

	// Frequency of the tone in Hz. Negative frequencies run the phase backwards.
	Frequency float64

	// Duration in seconds.
	Duration float64

	// Amplitude scales the [-1, 1] oscillator output. Must be in [0, 1].
	Amplitude float64

	// Channels is the number of oscillators rendered.
	Channels int

	// Hash seeds channel 0; channel ch uses Hash+ch so channels start at
	// decorrelated phases.
	Hash uint64

	// Parallel renders each channel on its own goroutine. Each goroutine
	// exclusively owns its oscillator.
	Parallel bool
}

// DefaultConfig returns a one second, mono, 440 Hz render at CD rate.
func DefaultConfig() Config {
	return Config{
		SampleRate: audionode.RateCD,
		Frequency:  defaultFrequency,
		Duration:   defaultDuration,
		Amplitude:  defaultAmplitude,
		Channels:   1,
		Parallel:   true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !audionode.ValidSampleRate(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfig, c.SampleRate)
	}
	if math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be finite, got %v", ErrInvalidConfig, c.Frequency)
	}
	if !(c.Duration > 0) || c.Duration > maxDuration {
		return fmt.Errorf("%w: duration must be in (0, %v] seconds, got %v", ErrInvalidConfig, maxDuration, c.Duration)
	}
	if !(c.Amplitude >= 0 && c.Amplitude <= 1) {
		return fmt.Errorf("%w: amplitude must be in [0, 1], got %v", ErrInvalidConfig, c.Amplitude)
	}
	if c.Channels < 1 || c.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be in [1, %d], got %d", ErrInvalidConfig, maxChannels, c.Channels)
	}
	if c.NumSamples() < 1 {
		return fmt.Errorf("%w: duration %vs at %v Hz yields no samples", ErrInvalidConfig, c.Duration, c.SampleRate)
	}
	return nil
}

// NumSamples returns the number of samples per channel.
func (c *Config) NumSamples() int {
	return int(math.Round(c.Duration * c.SampleRate))
}

// ChannelStats holds level measurements for one rendered channel.
type ChannelStats struct {
	Peak float64
	RMS  float64
	DC   float64
}

// Result holds rendered planar audio.
type Result[F simdops.Float] struct {
	SampleRate float64
	Channels   [][]F
	Stats      []ChannelStats
}

// Mono drives node for len(dst) samples at a constant frequency.
func Mono[F simdops.Float](node audionode.Node[F], frequency F, dst []F) error {
	return audionode.Drive(node, audionode.Frame[F]{frequency}, dst)
}

// Render renders cfg.Channels sine channels.
func Render[F simdops.Float](cfg Config) (*Result[F], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		channels [][]F
		err      error
	)
	if cfg.Parallel && cfg.Channels > 1 {
		channels, err = renderParallel[F](cfg)
	} else {
		channels, err = renderSequential[F](cfg)
	}
	if err != nil {
		return nil, err
	}

	stats := make([]ChannelStats, len(channels))
	for ch, data := range channels {
		stats[ch] = ChannelStats{
			Peak: analysis.Peak(data),
			RMS:  analysis.RMS(data),
			DC:   analysis.DCOffset(data),
		}
	}

	return &Result[F]{
		SampleRate: cfg.SampleRate,
		Channels:   channels,
		Stats:      stats,
	}, nil
}

// renderChannel renders one channel with its own oscillator.
func renderChannel[F simdops.Float](cfg Config, ch int) ([]F, error) {
	osc := audionode.NewSineWithHash[F](cfg.SampleRate, cfg.Hash+uint64(ch))
	buf := make([]F, cfg.NumSamples())
	if err := Mono[F](osc, F(cfg.Frequency), buf); err != nil {
		return nil, fmt.Errorf("render failed on channel %d: %w", ch, err)
	}
	if cfg.Amplitude != 1 {
		simdops.For[F]().Scale(buf, buf, F(cfg.Amplitude))
	}
	return buf, nil
}

// renderParallel renders channels concurrently.
func renderParallel[F simdops.Float](cfg Config) ([][]F, error) {
	channels := make([][]F, cfg.Channels)
	var wg sync.WaitGroup
	var renderErr error
	var errMu sync.Mutex

	for ch := range cfg.Channels {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			data, err := renderChannel[F](cfg, channel)
			if err != nil {
				errMu.Lock()
				if renderErr == nil {
					renderErr = err
				}
				errMu.Unlock()
				return
			}
			channels[channel] = data
		}(ch)
	}
	wg.Wait()

	if renderErr != nil {
		return nil, renderErr
	}
	return channels, nil
}

// renderSequential renders channels one by one.
func renderSequential[F simdops.Float](cfg Config) ([][]F, error) {
	channels := make([][]F, cfg.Channels)
	for ch := range cfg.Channels {
		data, err := renderChannel[F](cfg, ch)
		if err != nil {
			return nil, err
		}
		channels[ch] = data
	}
	return channels, nil
}

// Interleaved returns the channels interleaved frame by frame.
func (r *Result[F]) Interleaved() []F {
	return Interleave(r.Channels)
}

// Interleave converts planar channels of equal length to interleaved order.
// Stereo uses the SIMD interleaver.
func Interleave[F simdops.Float](channels [][]F) []F {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	out := make([]F, n*len(channels))

	if len(channels) == stereoChannels {
		simdops.For[F]().Interleave2(out, channels[0], channels[1])
		return out
	}

	numCh := len(channels)
	for ch, data := range channels {
		for i, v := range data[:n] {
			out[i*numCh+ch] = v
		}
	}
	return out
}
