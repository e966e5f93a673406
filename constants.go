package audionode

// Node kind identifiers.
const (
	// SineID identifies the sine oscillator kind.
	SineID uint64 = 21
)

// Channel arity
const (
	sineInputs  = 1 // Frequency in Hz
	sineOutputs = 1 // Waveform in [-1, 1]
)

// Sample rate handling
const (
	// KeepSampleRate passed to Reset keeps the current rate and only
	// reinitializes state.
	KeepSampleRate = 0.0

	// DefaultSampleRate is used when a constructor receives an unusable rate.
	DefaultSampleRate = 44100.0
)

// Analysis defaults
const (
	// DefaultRouteFrequency is the nominal frequency hint GetInfo passes to Route.
	DefaultRouteFrequency = 1000.0

	// noLatency is reported by GetInfo when no output declares a latency.
	noLatency = -1.0
)
