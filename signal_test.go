package audionode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_ZeroValueIsUnknown(t *testing.T) {
	var s Signal
	assert.Equal(t, SignalUnknown, s.Kind())
	assert.Equal(t, UnknownSignal(), s)

	_, ok := s.Latency()
	assert.False(t, ok)
	_, ok = s.Value()
	assert.False(t, ok)
}

func TestSignal_Variants(t *testing.T) {
	l := LatencySignal(12.5)
	got, ok := l.Latency()
	assert.True(t, ok)
	assert.InDelta(t, 12.5, got, 0)
	_, ok = l.Value()
	assert.False(t, ok, "latency signal carries no value")

	v := ConstSignal(-0.5)
	got, ok = v.Value()
	assert.True(t, ok)
	assert.InDelta(t, -0.5, got, 0)
	_, ok = v.Latency()
	assert.False(t, ok, "value signal carries no latency")
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "unknown", UnknownSignal().String())
	assert.Equal(t, "value(0.25)", ConstSignal(0.25).String())
	assert.Equal(t, "latency(0)", LatencySignal(0).String())
	assert.Equal(t, "latency", SignalLatency.String())
	assert.Equal(t, "SignalKind(9)", SignalKind(9).String())
}

func TestNewSignalFrame(t *testing.T) {
	f := NewSignalFrame(3)
	assert.Len(t, f, 3)
	for _, s := range f {
		assert.Equal(t, SignalUnknown, s.Kind())
	}
	assert.Empty(t, NewSignalFrame(-1))

	assert.Len(t, UnknownInputs[float64](NewSine[float64](RateCD)), 1)
}
