package audionode

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-audio-node/internal/simdops"
)

// Float is the sample type constraint shared by every node in a graph.
type Float = simdops.Float

// Node is the contract every unit in a sample-synchronous processing graph
// satisfies. A graph driver calls Reset once per lifecycle event, SetHash
// once per structural build, and Tick once per sample thereafter. An
// analyzer may call Route at any time outside active rendering.
//
// Tick, Reset and SetHash form the real-time path: they must not allocate,
// block, lock, perform I/O, return errors or panic. Invalid inputs are
// absorbed (clamped, wrapped or ignored).
//
// A Node is owned by exactly one graph and is not safe for concurrent use.
type Node[F Float] interface {
	// ID returns a stable identifier for the node kind. Graph builders use
	// it to disambiguate hashing and serialization.
	ID() uint64

	// Inputs returns the fixed number of input channels.
	Inputs() int

	// Outputs returns the fixed number of output channels.
	Outputs() int

	// Reset reinitializes all internal state to a fresh run. If sampleRate
	// is a finite positive number, rate-derived constants are recomputed;
	// otherwise (for example KeepSampleRate) the current rate is kept.
	Reset(sampleRate float64)

	// Tick processes one sample frame. input has Inputs() values and
	// output receives Outputs() values; both are owned by the caller.
	Tick(input, output Frame[F])

	// SetHash installs a new identity seed and reinitializes state as if
	// Reset(KeepSampleRate) had been called.
	SetHash(hash uint64)

	// Route describes what is statically known about each output channel
	// given what is known about each input channel. frequency is a nominal
	// analysis frequency in Hz for frequency-dependent nodes. Route never
	// reads or mutates live processing state.
	Route(input SignalFrame, frequency float64) SignalFrame
}

// Frame holds one time step of samples, one value per channel.
type Frame[F Float] []F

// NewFrame allocates a zeroed frame with the given channel count.
func NewFrame[F Float](channels int) Frame[F] {
	if channels < 0 {
		channels = 0
	}
	return make(Frame[F], channels)
}

// NewFrames allocates an input and output frame sized to the node's arity.
// Drivers allocate these once at build time and reuse them for every Tick.
func NewFrames[F Float](n Node[F]) (input, output Frame[F]) {
	return NewFrame[F](n.Inputs()), NewFrame[F](n.Outputs())
}

// Errors returned by graph-build-time validation.
var (
	// ErrArityMismatch indicates a frame width does not match the node's declared arity.
	ErrArityMismatch = errors.New("frame arity mismatch")

	// ErrInvalidConfig indicates invalid construction parameters.
	ErrInvalidConfig = errors.New("invalid node configuration")
)

// CheckFrames validates frame widths against the node's declared arity.
// It is meant for graph construction; Tick itself never validates.
func CheckFrames[F Float](n Node[F], input, output Frame[F]) error {
	if len(input) != n.Inputs() {
		return fmt.Errorf("%w: node %d expects %d inputs, got %d",
			ErrArityMismatch, n.ID(), n.Inputs(), len(input))
	}
	if len(output) != n.Outputs() {
		return fmt.Errorf("%w: node %d expects %d outputs, got %d",
			ErrArityMismatch, n.ID(), n.Outputs(), len(output))
	}
	return nil
}

// ValidSampleRate reports whether rate is usable as a sample rate.
func ValidSampleRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}
