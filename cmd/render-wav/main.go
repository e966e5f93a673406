// Command render-wav renders a sine oscillator node to a PCM WAV file.
//
// Usage:
//
//	render-wav -freq 440 tone.wav
//	render-wav -rate 48 -freq 1000 -duration 5 -bits 24 tone.wav
//	render-wav -channels 2 -hash 7 stereo.wav          # decorrelated channels
//	render-wav -fast -freq -220 reversed.wav           # float32, negative frequency
//
// Each channel is driven by its own oscillator seeded with hash+channel, so
// re-running with the same flags produces a byte-identical file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	audionode "github.com/tphakala/go-audio-node"
	"github.com/tphakala/go-audio-node/internal/analysis"
	"github.com/tphakala/go-audio-node/internal/render"
	"github.com/tphakala/go-audio-node/internal/simdops"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Sample rate in kHz (e.g., 8, 16, 44.1, 48, 96)")
	freq := flag.Float64("freq", defaultFrequency, "Oscillator frequency in Hz (negative runs the phase backwards)")
	duration := flag.Float64("duration", defaultDuration, "Duration in seconds")
	amplitude := flag.Float64("amp", defaultAmplitude, "Output amplitude in [0, 1]")
	channels := flag.Int("channels", defaultChannels, "Number of channels, each with its own oscillator")
	bits := flag.Int("bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	hash := flag.Uint64("hash", 0, "Identity hash seeding channel 0 (channel n uses hash+n)")
	fast := flag.Bool("fast", false, "Render with float32 samples")
	parallel := flag.Bool("parallel", true, "Render channels concurrently")
	verify := flag.Bool("verify", false, "Re-read the written file and check its format")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	if !validBitDepth(*bits) {
		return fmt.Errorf("unsupported bit depth %d", *bits)
	}

	cfg := render.Config{
		SampleRate: *rateKHz * kHzToHz,
		Frequency:  *freq,
		Duration:   *duration,
		Amplitude:  *amplitude,
		Channels:   *channels,
		Hash:       *hash,
		Parallel:   *parallel,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *verbose {
		info := audionode.GetInfo[float64](audionode.NewSine[float64](cfg.SampleRate))
		log.Printf("Output: %s", outputPath)
		log.Printf("Node: id=%d inputs=%d outputs=%d latency=%v", info.ID, info.Inputs, info.Outputs, info.Latency)
		log.Printf("Rate: %.0f Hz, %d-bit, %d channel(s)", cfg.SampleRate, *bits, cfg.Channels)
		log.Printf("Tone: %.3f Hz for %.3fs at amplitude %.3f", cfg.Frequency, cfg.Duration, cfg.Amplitude)
		log.Printf("SIMD: %s", info.SIMD)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64")
		}
	}

	start := time.Now()
	var stats *renderStats
	var err error
	if *fast {
		stats, err = renderWAV[float32](cfg, outputPath, *bits, *verbose)
	} else {
		stats, err = renderWAV[float64](cfg, outputPath, *bits, *verbose)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *verify {
		if err := verifyWAV(outputPath, int(cfg.SampleRate), *bits, cfg.Channels); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Verified %s", outputPath)
		}
	}

	fmt.Printf("Rendered %s\n", filepath.Base(outputPath))
	fmt.Printf("  %d samples x %d channel(s) at %.0f Hz, %d-bit\n",
		stats.samples, stats.channels, cfg.SampleRate, *bits)
	for ch, s := range stats.levels {
		fmt.Printf("  ch%d: peak %.4f, rms %.4f, dc %+.6f, measured %.2f Hz\n",
			ch, s.Peak, s.RMS, s.DC, stats.measured[ch])
	}
	fmt.Printf("  Elapsed: %.3fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(), cfg.Duration/elapsed.Seconds())

	return nil
}

type renderStats struct {
	samples  int
	channels int
	levels   []render.ChannelStats
	measured []float64
}

func renderWAV[F simdops.Float](cfg render.Config, outputPath string, bitDepth int, verbose bool) (*renderStats, error) {
	res, err := render.Render[F](cfg)
	if err != nil {
		return nil, err
	}

	measured := make([]float64, len(res.Channels))
	for ch, data := range res.Channels {
		f, err := analysis.DominantFrequency(data, cfg.SampleRate)
		if err != nil {
			// Too short to measure; not fatal for rendering.
			if verbose {
				log.Printf("ch%d: %v", ch, err)
			}
			continue
		}
		measured[ch] = f
	}

	if err := writeWAV(outputPath, int(cfg.SampleRate), bitDepth, res.Channels); err != nil {
		return nil, err
	}

	return &renderStats{
		samples:  cfg.NumSamples(),
		channels: len(res.Channels),
		levels:   res.Stats,
		measured: measured,
	}, nil
}
