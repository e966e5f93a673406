package audionode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo_Sine(t *testing.T) {
	osc := NewSineWithHash[float64](RateDAT, 77)
	phase := osc.Phase()

	info := GetInfo[float64](osc)
	assert.Equal(t, SineID, info.ID)
	assert.Equal(t, 1, info.Inputs)
	assert.Equal(t, 1, info.Outputs)
	assert.Zero(t, info.Latency)
	require.Len(t, info.Signals, 1)
	assert.Equal(t, SignalLatency, info.Signals[0].Kind())
	assert.NotEmpty(t, info.SIMD)

	assert.Equal(t, phase, osc.Phase(), "GetInfo must not touch processing state")
}

// silentNode declares no latency on its outputs.
type silentNode struct{}

func (silentNode) ID() uint64                 { return 0 }
func (silentNode) Inputs() int                { return 0 }
func (silentNode) Outputs() int               { return 2 }
func (silentNode) Reset(float64)              {}
func (silentNode) Tick(_, out Frame[float32]) { out[0], out[1] = 0, 0 }
func (silentNode) SetHash(uint64)             {}
func (silentNode) Route(_ SignalFrame, _ float64) SignalFrame {
	return SignalFrame{ConstSignal(0), UnknownSignal()}
}

func TestGetInfo_NoLatency(t *testing.T) {
	info := GetInfo[float32](silentNode{})
	assert.InDelta(t, -1.0, info.Latency, 0)
	assert.Equal(t, 2, info.Outputs)
}

func TestDrive_Errors(t *testing.T) {
	osc := NewSine[float64](RateCD)
	err := Drive[float64](osc, Frame[float64]{1, 2}, make([]float64, 4))
	require.ErrorIs(t, err, ErrArityMismatch)

	// A generator with two outputs drives output 0.
	dst := []float32{9, 9, 9}
	require.NoError(t, Drive[float32](silentNode{}, nil, dst))
	assert.Equal(t, []float32{0, 0, 0}, dst)
}
