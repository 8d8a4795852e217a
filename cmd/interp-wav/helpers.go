package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	interp "github.com/tphakala/go-grid-interp"
)

// wavInput holds a fully decoded input file as normalized per-channel
// samples in [-1, 1].
type wavInput struct {
	rate     int
	bitDepth int
	frames   int
	channels [][]float64
}

// readWAVInput opens, validates and fully decodes a WAV file.
func readWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	rate := buf.Format.SampleRate
	numChannels := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	frames := len(buf.Data) / numChannels

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			rate, numChannels, bitDepth, frames)
	}

	return &wavInput{
		rate:     rate,
		bitDepth: bitDepth,
		frames:   frames,
		channels: deinterleave(buf.Data, numChannels, frames, bitDepth),
	}, nil
}

// sampleIndexAxis builds the shared grid 0, 1, ..., frames-1.
func sampleIndexAxis(frames int) []float64 {
	axis := make([]float64, frames)
	floats.Span(axis, 0, float64(frames-1))
	return axis
}

// resampleChannels interpolates every channel at fractional sample
// indices spaced by step. Channels are processed concurrently; each
// channel gets its own interpolator borrowing the channel samples.
func resampleChannels(indexAxis []float64, channels [][]float64, strat interp.Strategy, step float64) ([][]float64, error) {
	frames := len(indexAxis)
	outFrames := int(float64(frames-1)/step) + 1
	resampled := make([][]float64, len(channels))

	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			out, err := resampleChannel(indexAxis, channels[ch], strat, step, outFrames)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("resampling failed on channel %d: %w", ch, err)
				}
				errMu.Unlock()
				return
			}
			resampled[ch] = out
		}(ch)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return resampled, nil
}

func resampleChannel(indexAxis, samples []float64, strat interp.Strategy, step float64, outFrames int) ([]float64, error) {
	// Clamp covers the fractional rounding at the final output frame.
	in, err := interp.New1D(indexAxis, samples, strat, interp.ExtrapolateClamp)
	if err != nil {
		return nil, err
	}

	out := make([]float64, outFrames)
	point := make([]float64, 1)
	for j := range out {
		point[0] = float64(j) * step
		v, err := in.Interpolate(point)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return out, nil
}

// writeWAVOutput interleaves the channels and encodes a PCM WAV file.
func writeWAVOutput(path string, channels [][]float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           interleave(channels, bitDepth),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}

// maxSampleValue returns the full-scale value for the given bit depth.
func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave converts interleaved int samples to normalized
// per-channel float slices.
func deinterleave(data []int, numChannels, frames, bitDepth int) [][]float64 {
	invMax := 1.0 / maxSampleValue(bitDepth)
	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch := 0; ch < numChannels; ch++ {
			channels[ch][i] = float64(data[base+ch]) * invMax
		}
	}
	return channels
}

// interleave converts per-channel float slices to interleaved int
// samples, clamping to full scale.
func interleave(channels [][]float64, bitDepth int) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}

	maxVal := maxSampleValue(bitDepth)
	numChannels := len(channels)
	frames := len(channels[0])
	data := make([]int, frames*numChannels)
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch := 0; ch < numChannels; ch++ {
			s := channels[ch][i]
			if s > 1.0 {
				s = 1.0
			} else if s < -1.0 {
				s = -1.0
			}
			data[base+ch] = int(s * maxVal)
		}
	}
	return data
}
