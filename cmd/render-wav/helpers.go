package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-audio-node/internal/simdops"
)

// validBitDepth reports whether the writer supports bitDepth.
func validBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return true
	default:
		return false
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// interleaveGeneric converts per-channel float slices to interleaved int samples.
func interleaveGeneric[F simdops.Float](channels [][]F, bitDepth int) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	result := make([]int, samplesPerChannel*numChannels)
	maxVal := getMaxValue(bitDepth)

	for i := range samplesPerChannel {
		for ch := range numChannels {
			// Clamp to [-1.0, 1.0] and convert
			sample := float64(channels[ch][i])
			if sample > 1.0 {
				sample = 1.0
			} else if sample < -1.0 {
				sample = -1.0
			}
			result[i*numChannels+ch] = int(sample * maxVal)
		}
	}

	return result
}

// writeWAV encodes planar channels as a PCM WAV file.
func writeWAV[F simdops.Float](path string, sampleRate, bitDepth int, channels [][]F) (err error) {
	if len(channels) == 0 {
		return fmt.Errorf("no channels to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	// Close output, capturing close errors on success path
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           interleaveGeneric(channels, bitDepth),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// verifyWAV re-opens a written file and checks its declared format.
func verifyWAV(path string, sampleRate, bitDepth, channels int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open output for verification: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", path)
	}
	format := dec.Format()
	if format.SampleRate != sampleRate || format.NumChannels != channels || int(dec.BitDepth) != bitDepth {
		return fmt.Errorf("format mismatch in %s: got %d Hz/%d ch/%d-bit, want %d Hz/%d ch/%d-bit",
			path, format.SampleRate, format.NumChannels, dec.BitDepth, sampleRate, channels, bitDepth)
	}
	return nil
}
