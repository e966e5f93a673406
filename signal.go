package audionode

import "fmt"

// SignalKind tags what is statically known about a channel.
type SignalKind uint8

const (
	// SignalUnknown means nothing is known about the channel. It is the
	// zero value.
	SignalUnknown SignalKind = iota

	// SignalValue means the channel carries a known constant value.
	SignalValue

	// SignalLatency means the channel path contributes a known constant
	// delay, in samples.
	SignalLatency
)

// String returns the kind name.
func (k SignalKind) String() string {
	switch k {
	case SignalUnknown:
		return "unknown"
	case SignalValue:
		return "value"
	case SignalLatency:
		return "latency"
	default:
		return fmt.Sprintf("SignalKind(%d)", uint8(k))
	}
}

// Signal describes one channel's stream before any samples are produced.
// The zero Signal is unknown.
type Signal struct {
	kind SignalKind
	x    float64
}

// UnknownSignal returns a signal with no static information.
func UnknownSignal() Signal { return Signal{} }

// ConstSignal returns a signal known to carry the constant v.
func ConstSignal(v float64) Signal { return Signal{kind: SignalValue, x: v} }

// LatencySignal returns a signal whose path contributes the given latency in samples.
func LatencySignal(samples float64) Signal { return Signal{kind: SignalLatency, x: samples} }

// Kind returns the signal tag.
func (s Signal) Kind() SignalKind { return s.kind }

// Latency returns the latency in samples if the signal carries one.
func (s Signal) Latency() (float64, bool) {
	if s.kind != SignalLatency {
		return 0, false
	}
	return s.x, true
}

// Value returns the constant value if the signal carries one.
func (s Signal) Value() (float64, bool) {
	if s.kind != SignalValue {
		return 0, false
	}
	return s.x, true
}

func (s Signal) String() string {
	switch s.kind {
	case SignalUnknown:
		return "unknown"
	case SignalValue:
		return fmt.Sprintf("value(%g)", s.x)
	case SignalLatency:
		return fmt.Sprintf("latency(%g)", s.x)
	default:
		return s.kind.String()
	}
}

// SignalFrame holds one Signal per channel.
type SignalFrame []Signal

// NewSignalFrame returns a frame of n unknown signals.
func NewSignalFrame(n int) SignalFrame {
	if n < 0 {
		n = 0
	}
	return make(SignalFrame, n)
}

// UnknownInputs returns the unknown signal frame matching a node's input arity.
func UnknownInputs[F Float](n Node[F]) SignalFrame {
	return NewSignalFrame(n.Inputs())
}
