// Command interp-wav resamples WAV audio files to a target sample rate
// by interpolating each channel over its sample index.
//
// Usage:
//
//	interp-wav -rate 48 input.wav output.wav
//	interp-wav -rate 16 -strategy nearest input.wav output.wav
//	interp-wav -rate 44.1 -v input.wav output.wav
//
// This is a demonstration of grid interpolation, not a band-limited
// resampler: no anti-aliasing filter is applied, so downsampling wideband
// material will alias.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	interp "github.com/tphakala/go-grid-interp"
)

const (
	// Conversion constants
	kHzToHz  = 1000
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// CLI defaults
	defaultRateKHz  = 48.0
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 32, 44.1, 48, 96)")
	strategy := flag.String("strategy", "linear", "Interpolation strategy: linear, nearest")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -rate 48 input.wav output.wav              # Resample to 48kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 16 -strategy nearest in.wav out.wav  # Sample-and-hold to 16kHz\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]
	targetRate := int(*rateKHz * kHzToHz)

	strat, err := parseStrategy(*strategy)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Target rate: %d Hz", targetRate)
		log.Printf("Strategy: %s", strat.Kind())
	}

	start := time.Now()
	stats, err := resampleWAV(inputPath, outputPath, targetRate, strat, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.inputRate)/elapsed.Seconds())

	return nil
}

type resampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
}

func parseStrategy(name string) (interp.Strategy, error) {
	switch name {
	case "linear":
		return interp.Linear{}, nil
	case "nearest":
		return interp.Nearest{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want linear or nearest)", name)
	}
}

func resampleWAV(inputPath, outputPath string, targetRate int, strat interp.Strategy, verbose bool) (*resampleStats, error) {
	input, err := readWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	if input.rate == targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", targetRate)
	}
	if input.frames < 2 {
		return nil, fmt.Errorf("input too short to resample (%d frames)", input.frames)
	}

	// One interpolator per channel over the sample-index axis. The index
	// grid is shared across channels.
	indexAxis := sampleIndexAxis(input.frames)
	resampled, err := resampleChannels(indexAxis, input.channels, strat,
		float64(input.rate)/float64(targetRate))
	if err != nil {
		return nil, err
	}

	if err := writeWAVOutput(outputPath, resampled, targetRate, input.bitDepth); err != nil {
		return nil, err
	}

	return &resampleStats{
		inputRate:     input.rate,
		outputRate:    targetRate,
		channels:      len(input.channels),
		bitDepth:      input.bitDepth,
		inputSamples:  input.frames,
		outputSamples: len(resampled[0]),
	}, nil
}
