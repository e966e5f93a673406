package main

// Default command-line flag values
const (
	defaultSampleRate = 44100.0 // CD quality sample rate
	defaultHint       = 1000.0  // Route frequency hint in Hz
)

// Demo parameters
const (
	demoHashes        = 8      // Number of hashes in the decorrelation table
	demoFrequency     = 1000.0 // Test tone for rate measurements
	demoSamples       = 32768  // Samples rendered per measurement
	demoDeterminismHz = 440.0
)

// Demo sample rates
var demoRates = []float64{
	8000,   // Telephony
	22050,  // Speech
	44100,  // CD quality
	48000,  // DAT/DVD
	96000,  // Hi-res audio
	192000, // Very hi-res audio
}
