// Package audionode defines the per-sample audio processing node contract
// and provides a sine oscillator that implements it.
//
// Every node in a sample-synchronous graph satisfies [Node]: it declares
// fixed input and output arities, transforms one [Frame] per [Node.Tick],
// reinitializes on [Node.Reset], reseeds deterministically on
// [Node.SetHash], and describes its outputs statically through
// [Node.Route] without running.
//
// # Quick Start
//
// For one-shot tone generation:
//
//	tone, err := audionode.RenderSine(440, audionode.RateCD, 0, 44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Driving a node sample by sample, the way a graph driver does:
//
//	osc := audionode.NewSine[float32](48000)
//	osc.SetHash(hash)
//	in, out := audionode.NewFrames[float32](osc)
//	for i := range buf {
//	    in[0] = freq[i]
//	    osc.Tick(in, out)
//	    buf[i] = out[0]
//	}
//
// # Real-time Contract
//
// Tick, Reset and SetHash run inside audio callbacks. They never allocate,
// block, lock, perform I/O, return errors or panic. Out-of-range inputs are
// absorbed: a non-finite frequency restarts the oscillator phase at zero,
// and a non-positive sample rate passed to Reset keeps the current rate.
//
// Frame widths are a graph-build-time concern. Use [CheckFrames] when
// wiring nodes; Tick assumes frames already match the declared arity.
//
// # Deterministic Seeding
//
// Graph builders assign each node a 64-bit identity hash. On reset the
// oscillator seeds its phase from that hash through a pure integer to
// float mapping, so identical graphs render bit-identical output across
// runs while identical oscillators within one graph start at decorrelated
// phases. The mapping is never evaluated per sample.
//
// # Static Analysis
//
// [Node.Route] propagates [Signal] values (unknown, constant value,
// latency) through a graph before rendering. A pure oscillator reports
// zero latency on its output. [GetInfo] summarizes a node using only Route.
//
// # Precision
//
// Sample type F is float32 or float64. The oscillator always computes in
// float64 and converts at the output, so both precisions trace the same
// waveform.
//
// # Thread Safety
//
// A node is owned by a single graph and must not be called from two
// goroutines at once. Route does not touch processing state, but in
// practice runs strictly before or after rendering.
package audionode
