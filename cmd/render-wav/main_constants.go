package main

// CLI defaults
const (
	defaultRateKHz   = 44.1
	defaultFrequency = 440.0 // A4
	defaultDuration  = 2.0   // Seconds
	defaultAmplitude = 0.5   // -6 dBFS
	defaultChannels  = 1
	defaultBitDepth  = 16
	minRequiredArgs  = 1
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1 // WAVE_FORMAT_PCM
)

// Conversion constants
const (
	kHzToHz = 1000
)
