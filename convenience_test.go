package audionode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-node/internal/mathutil"
	"github.com/tphakala/go-audio-node/internal/testutil"
)

func TestRenderSine(t *testing.T) {
	out, err := RenderSine(440, RateCD, 0, 1000)
	require.NoError(t, err)
	require.Len(t, out, 1000)

	assert.Equal(t, math.Sin(mathutil.Tau*mathutil.Rnd(0)), out[0])
	testutil.AssertAllInRange(t, out, -1, 1)
}

func TestRenderSine_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		n    int
	}{
		{"ZeroRate", 0, 100},
		{"NegativeRate", -1, 100},
		{"NaNRate", math.NaN(), 100},
		{"ZeroSamples", RateCD, 0},
		{"NegativeSamples", RateCD, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderSine(440, tt.rate, 0, tt.n)
			require.ErrorIs(t, err, ErrInvalidConfig)

			_, err = RenderSineFloat32(440, tt.rate, 0, tt.n)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// TestRenderSine_Float32Parity verifies float32 output equals float64 output
// converted at the boundary, because internal math is always float64.
func TestRenderSine_Float32Parity(t *testing.T) {
	for _, hash := range []uint64{0, 1, 1 << 63} {
		out64, err := RenderSine(1000, RateDAT, hash, 4800)
		require.NoError(t, err)
		out32, err := RenderSineFloat32(1000, RateDAT, hash, 4800)
		require.NoError(t, err)

		require.Len(t, out32, len(out64))
		for i := range out64 {
			require.Equal(t, float32(out64[i]), out32[i], "hash %d sample %d", hash, i)
		}
	}
}

func TestNewSineConvenience(t *testing.T) {
	assert.InDelta(t, float64(RateCD), NewSineCD[float32]().SampleRate(), 1e-9)
	assert.InDelta(t, float64(RateDAT), NewSineDAT[float64]().SampleRate(), 1e-9)

	osc := NewSineWithHash[float64](RateVoIP, 31)
	assert.Equal(t, uint64(31), osc.Hash())
	assert.Equal(t, mathutil.Rnd(31), osc.Phase())
}
