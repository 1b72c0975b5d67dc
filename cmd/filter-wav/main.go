// Command filter-wav runs PCM WAV audio through fixed-point filters.
//
// Usage:
//
//	filter-wav -kind lowpass -alpha 10 input.wav output.wav
//	filter-wav -kind hp,lp -alpha 20 input.wav output.wav       # Chain: high-pass then low-pass
//	filter-wav -kind normalized -alpha 8 -realign legacy in.wav out.wav
//	filter-wav -parallel=false input.wav output.wav             # Disable parallel processing
//
// Signed samples are converted to offset-binary 16-bit before filtering and
// back afterwards; 24 and 32-bit input is filtered at 16-bit resolution.
// Every channel gets its own independent filter chain.
//
// The low-pass stage's DC gain is alpha/(alpha+1), not one, so it shifts the
// offset-binary zero down: with seed 10 digital silence comes out near -2741.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	fixedfilter "github.com/tphakala/go-fixed-filter"
)

const (
	// Frames read per chunk
	bufferFrames = 16384

	// Audio format tag for integer PCM in the fmt chunk
	wavFormatPCM = 1

	// Progress reporting
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// CLI defaults
	defaultKind     = "lowpass"
	defaultSeed     = 10
	minRequiredArgs = 2

	kindUsage = "Filter chain, comma separated: lowpass, highpass, normalized. " +
		"lowpass has DC gain alpha/(alpha+1), so it pulls offset-binary audio " +
		"below the midpoint (seed 10 moves silence from 32768 to about 30000)"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	kind := flag.String("kind", defaultKind, kindUsage)
	seed := flag.Uint("alpha", defaultSeed, "Raw coefficient seed for every stage")
	policy := flag.String("policy", "direct", "High-pass coefficient policy: direct, inverted")
	realign := flag.String("realign", "per-operand", "Normalized realign mode: per-operand, input-only")
	bias := flag.Int("bias", fixedfilter.MidScale, "High-pass output bias in offset-binary units")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}

	stages, err := buildStages(filterOptions{
		kinds:   *kind,
		seed:    *seed,
		policy:  *policy,
		realign: *realign,
		bias:    *bias,
	})
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Chain: %s (%d stages), seed %d", *kind, len(stages), *seed)
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	stats, err := filterWAV(inputPath, outputPath, stages, *verbose, *parallel)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.frames)/float64(stats.rate)/elapsed.Seconds())

	return nil
}
