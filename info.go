package audionode

import (
	"github.com/tphakala/simd/cpu"
)

// Info summarizes what a node statically declares about itself.
type Info struct {
	// ID is the node kind identifier.
	ID uint64

	// Inputs and Outputs are the fixed channel arities.
	Inputs  int
	Outputs int

	// Latency is the largest output latency in samples reported by Route
	// when all inputs are unknown, or -1 if no output declares a latency.
	Latency float64

	// Signals are the raw Route results, one per output.
	Signals SignalFrame

	// SIMD describes the instruction set used by block helpers.
	SIMD string
}

// GetInfo analyzes a node without running it. Only Route is called, so
// live processing state is untouched.
func GetInfo[F Float](n Node[F]) Info {
	signals := n.Route(UnknownInputs(n), DefaultRouteFrequency)

	latency := noLatency
	for _, s := range signals {
		if l, ok := s.Latency(); ok && l > latency {
			latency = l
		}
	}

	return Info{
		ID:      n.ID(),
		Inputs:  n.Inputs(),
		Outputs: n.Outputs(),
		Latency: latency,
		Signals: signals,
		SIMD:    cpu.Info(),
	}
}
