// Command analyze-filter measures the steady-state sine gain of every filter
// kind over a range of tone periods.
//
// Usage:
//
//	analyze-filter
//	analyze-filter -alpha 10 -periods 1024,256,64,16,4
//	analyze-filter -kind hp -policy inverted -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/simd/cpu"

	fixedfilter "github.com/tphakala/go-fixed-filter"
	"github.com/tphakala/go-fixed-filter/internal/analysis"
)

// Measurement defaults
const (
	defaultSeed      = 1
	defaultPeriods   = "1024,512,256,128,64,32,16,8,4"
	defaultAmplitude = 500.0  // Tone amplitude in sample units
	defaultOffset    = 1024.0 // Keeps the tone inside the 10-bit window
	settlePeriods    = 2      // Tone periods discarded before measuring
	minSettle        = 2048   // Lower bound on discarded samples
	minWindow        = 1024   // Lower bound on measured samples
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	seed    uint
	kind    string
	policy  string
	periods []int
	verbose bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("analyze-filter", flag.ContinueOnError)
	opts := &options{}
	periods := fs.String("periods", defaultPeriods, "Comma separated tone periods in samples")
	fs.UintVar(&opts.seed, "alpha", defaultSeed, "Raw coefficient seed")
	fs.StringVar(&opts.kind, "kind", "", "Analyse a single kind (default: all)")
	fs.StringVar(&opts.policy, "policy", "direct", "High-pass coefficient policy: direct, inverted")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for part := range strings.SplitSeq(*periods, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid period %q", part)
		}
		opts.periods = append(opts.periods, p)
	}
	return opts, nil
}

// measureConfig returns a gain measurement whose window holds whole periods
// of the tone.
func measureConfig(period int) analysis.GainConfig {
	window := max(period, minWindow/period*period)
	return analysis.GainConfig{
		Period:    period,
		Amplitude: defaultAmplitude,
		Offset:    defaultOffset,
		Settle:    max(settlePeriods*period, minSettle),
		Window:    window,
	}
}

func kindsToAnalyse(name string) ([]fixedfilter.Kind, error) {
	if name == "" {
		return fixedfilter.Kinds(), nil
	}
	k, err := fixedfilter.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []fixedfilter.Kind{k}, nil
}

func newConfig(kind fixedfilter.Kind, opts *options) (*fixedfilter.Config, error) {
	config := &fixedfilter.Config{
		Kind:        kind,
		Coefficient: uint16(min(opts.seed, fixedfilter.MaxSample)),
	}
	if kind == fixedfilter.KindHighPass {
		config.Bias = fixedfilter.MidScale
		switch strings.ToLower(opts.policy) {
		case "direct":
		case "inverted":
			config.Policy = fixedfilter.PolicyInverted
		default:
			return nil, fmt.Errorf("%w: %q", fixedfilter.ErrUnknownPolicy, opts.policy)
		}
	}
	return config, nil
}

func run(args []string, w io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	kinds, err := kindsToAnalyse(opts.kind)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("SIMD: %s", cpu.Info())
		log.Printf("Seed: %d, periods: %v", opts.seed, opts.periods)
	}

	fmt.Fprintln(w, "=== Steady-State Sine Gain ===")
	for _, kind := range kinds {
		config, err := newConfig(kind, opts)
		if err != nil {
			return err
		}
		f, err := fixedfilter.New(config)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}

		fmt.Fprintf(w, "\n%s (seed %d)\n", kind, config.Coefficient)
		fmt.Fprintf(w, "  %8s  %10s  %9s\n", "period", "gain", "dB")
		for _, period := range opts.periods {
			cfg := measureConfig(period)
			gain, err := analysis.Gain(f, cfg)
			if err != nil {
				return fmt.Errorf("%s period %d: %w", kind, period, err)
			}
			if opts.verbose {
				log.Printf("%s period %d: settle %d, window %d", kind, period, cfg.Settle, cfg.Window)
			}
			fmt.Fprintf(w, "  %8d  %10.6f  %9.2f\n", period, gain, analysis.GainDB(gain))
		}
	}
	return nil
}
