package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audionode "github.com/tphakala/go-audio-node"
	"github.com/tphakala/go-audio-node/internal/analysis"
	"github.com/tphakala/go-audio-node/internal/testutil"
)

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	require.NoError(t, valid.Validate())
	assert.Equal(t, 44100, valid.NumSamples())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"ZeroRate", func(c *Config) { c.SampleRate = 0 }},
		{"NaNFrequency", func(c *Config) { c.Frequency = math.NaN() }},
		{"InfFrequency", func(c *Config) { c.Frequency = math.Inf(-1) }},
		{"ZeroDuration", func(c *Config) { c.Duration = 0 }},
		{"HugeDuration", func(c *Config) { c.Duration = 1e9 }},
		{"NegativeAmplitude", func(c *Config) { c.Amplitude = -0.1 }},
		{"LoudAmplitude", func(c *Config) { c.Amplitude = 1.5 }},
		{"NoChannels", func(c *Config) { c.Channels = 0 }},
		{"TooManyChannels", func(c *Config) { c.Channels = 1000 }},
		{"TooShort", func(c *Config) { c.Duration = 1e-9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := Render[float64](cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestRender_Mono(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 0.25

	res, err := Render[float64](cfg)
	require.NoError(t, err)
	require.Len(t, res.Channels, 1)
	require.Len(t, res.Channels[0], cfg.NumSamples())

	testutil.AssertAllInRange(t, res.Channels[0], -0.25, 0.25)
	assert.InDelta(t, 0.25, res.Stats[0].Peak, 1e-3)
	assert.InDelta(t, 0.25/math.Sqrt2, res.Stats[0].RMS, 1e-3)
	assert.InDelta(t, 0, res.Stats[0].DC, 1e-3)

	freq, err := analysis.DominantFrequency(res.Channels[0], cfg.SampleRate)
	require.NoError(t, err)
	assert.InDelta(t, cfg.Frequency, freq, 1)
}

// TestRender_MatchesDirectDrive verifies the renderer is a plain
// tick-per-sample driver of a seeded oscillator.
func TestRender_MatchesDirectDrive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 1
	cfg.Hash = 1234
	cfg.Duration = 0.01

	res, err := Render[float32](cfg)
	require.NoError(t, err)

	osc := audionode.NewSineWithHash[float32](cfg.SampleRate, cfg.Hash)
	direct := make([]float32, cfg.NumSamples())
	require.NoError(t, Mono[float32](osc, float32(cfg.Frequency), direct))

	testutil.AssertBitExact(t, direct, res.Channels[0])
}

// TestRender_ParallelMatchesSequential verifies goroutine-per-channel
// rendering is bit-exact with sequential rendering.
func TestRender_ParallelMatchesSequential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 6
	cfg.Duration = 0.1

	cfg.Parallel = false
	seq, err := Render[float64](cfg)
	require.NoError(t, err)

	cfg.Parallel = true
	par, err := Render[float64](cfg)
	require.NoError(t, err)

	require.Len(t, par.Channels, cfg.Channels)
	for ch := range cfg.Channels {
		testutil.AssertBitExact(t, seq.Channels[ch], par.Channels[ch], "channel %d", ch)
	}
}

// TestRender_ChannelsDecorrelated verifies each channel starts at its own phase.
func TestRender_ChannelsDecorrelated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 8
	cfg.Duration = 0.001

	res, err := Render[float64](cfg)
	require.NoError(t, err)

	seen := map[float64]int{}
	for ch, data := range res.Channels {
		if prev, ok := seen[data[0]]; ok {
			t.Fatalf("channels %d and %d start identically", prev, ch)
		}
		seen[data[0]] = ch
	}
}

func TestInterleave(t *testing.T) {
	l := []float64{1, 2, 3}
	r := []float64{-1, -2, -3}
	assert.Equal(t, []float64{1, -1, 2, -2, 3, -3}, Interleave([][]float64{l, r}))

	c := []float64{10, 20, 30}
	assert.Equal(t, []float64{1, -1, 10, 2, -2, 20, 3, -3, 30}, Interleave([][]float64{l, r, c}))

	assert.Equal(t, []float64{1, 2, 3}, Interleave([][]float64{l}))
	assert.Nil(t, Interleave[float64](nil))
}

func TestResult_Interleaved(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 2
	cfg.Duration = 0.001

	res, err := Render[float32](cfg)
	require.NoError(t, err)

	inter := res.Interleaved()
	require.Len(t, inter, 2*cfg.NumSamples())
	for i := range cfg.NumSamples() {
		require.Equal(t, res.Channels[0][i], inter[2*i])
		require.Equal(t, res.Channels[1][i], inter[2*i+1])
	}
}
