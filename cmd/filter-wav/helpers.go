package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	fixedfilter "github.com/tphakala/go-fixed-filter"
	"github.com/tphakala/go-fixed-filter/internal/pipeline"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(duration.Seconds() * float64(format.SampleRate))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
	}, nil
}

// WriteBuffer encodes one buffer of interleaved samples.
func (w *wavOutputWriter) WriteBuffer(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalises the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// filterOptions is the filter part of the command line.
type filterOptions struct {
	kinds   string
	seed    uint
	policy  string
	realign string
	bias    int
}

// parseKinds splits a comma separated chain such as "hp,lp".
func parseKinds(s string) ([]fixedfilter.Kind, error) {
	var kinds []fixedfilter.Kind
	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := fixedfilter.ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("empty filter chain %q", s)
	}
	return kinds, nil
}

func parsePolicy(s string) (fixedfilter.CoefficientPolicy, error) {
	switch strings.ToLower(s) {
	case "direct", "":
		return fixedfilter.PolicyDirect, nil
	case "inverted":
		return fixedfilter.PolicyInverted, nil
	default:
		return 0, fmt.Errorf("%w: %q", fixedfilter.ErrUnknownPolicy, s)
	}
}

func parseRealign(s string) (fixedfilter.RealignMode, error) {
	switch strings.ToLower(s) {
	case "per-operand", "":
		return fixedfilter.RealignPerOperand, nil
	case "input-only", "legacy":
		return fixedfilter.RealignInputOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", fixedfilter.ErrUnknownRealign, s)
	}
}

// buildStages validates the filter options once and returns one factory per
// chain element.
func buildStages(opts filterOptions) ([]pipeline.StageFactory, error) {
	kinds, err := parseKinds(opts.kinds)
	if err != nil {
		return nil, err
	}
	policy, err := parsePolicy(opts.policy)
	if err != nil {
		return nil, err
	}
	realign, err := parseRealign(opts.realign)
	if err != nil {
		return nil, err
	}

	factories := make([]pipeline.StageFactory, len(kinds))
	for i, kind := range kinds {
		config := &fixedfilter.Config{
			Kind:        kind,
			Coefficient: uint16(min(opts.seed, fixedfilter.MaxSample)),
			Policy:      policy,
			Bias:        int32(max(min(opts.bias, fixedfilter.MaxSample+1), -fixedfilter.MaxSample-1)),
			Realign:     realign,
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, kind, err)
		}
		factories[i] = func() (pipeline.Stage, error) {
			return fixedfilter.New(config)
		}
	}
	return factories, nil
}

type filterStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
}

// filterWAV streams inputPath through one filter chain per channel into
// outputPath.
func filterWAV(inputPath, outputPath string, stages []pipeline.StageFactory, verbose, parallel bool) (stats *filterStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	p, err := pipeline.New(pipeline.Config{
		Channels: input.channels,
		BitDepth: input.bitDepth,
		Parallel: parallel,
		Stages:   stages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build filter pipeline: %w", err)
	}

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (the encoder
	// writes the final header sizes on close).
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buf := &audio.IntBuffer{
		Data:           make([]int, bufferFrames*input.channels),
		Format:         input.format,
		SourceBitDepth: input.bitDepth,
	}

	stats = &filterStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}
	progress := newProgressTracker(input.totalSamples, verbose)

	for {
		n, err := input.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		frames := n / input.channels
		if frames == 0 {
			break
		}

		buf.Data = buf.Data[:frames*input.channels]
		if err := p.ProcessInterleaved(buf.Data); err != nil {
			return nil, fmt.Errorf("failed to filter audio data: %w", err)
		}
		if err := output.WriteBuffer(buf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.frames += int64(frames)
		progress.reportIfNeeded(stats.frames)

		buf.Data = buf.Data[:cap(buf.Data)]
	}

	return stats, nil
}
