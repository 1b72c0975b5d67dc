// Command filter-demo feeds a sampled sine through a low-pass and a high-pass
// filter built from the same seed and prints every input/output pair.
//
// Usage:
//
//	filter-demo
//	filter-demo -alpha 10 -samples 64 -per-line 4
//	filter-demo -kind normalized -v
//
// Each group is printed as "IL: <in>, IH: <in> OL: <low>, OH: <high>". A
// summary of both outputs follows the table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	fixedfilter "github.com/tphakala/go-fixed-filter"
	"github.com/tphakala/go-fixed-filter/internal/analysis"
	"github.com/tphakala/go-fixed-filter/internal/signal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	seed      uint
	kind      string
	samples   int
	period    int
	fullScale float64
	perLine   int
	verbose   bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("filter-demo", flag.ContinueOnError)
	opts := &options{}
	fs.UintVar(&opts.seed, "alpha", defaultSeed, "Raw coefficient seed shared by both filters")
	fs.StringVar(&opts.kind, "kind", "lowpass", "Smoothing filter: lowpass or normalized")
	fs.IntVar(&opts.samples, "samples", defaultSamples, "Number of samples to generate")
	fs.IntVar(&opts.period, "period", signal.DefaultPeriod, "Sine period in samples")
	fs.Float64Var(&opts.fullScale, "full-scale", signal.DefaultFullScale, "Peak-to-peak range of the sine")
	fs.IntVar(&opts.perLine, "per-line", defaultPerLine, "Sample groups per output line")
	fs.BoolVar(&opts.verbose, "v", false, "Log every processed sample")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.perLine <= 0 {
		return nil, fmt.Errorf("per-line must be positive, got %d", opts.perLine)
	}
	return opts, nil
}

// newFilters builds the smoothing filter and the high-pass filter.
func newFilters(opts *options) (low, high fixedfilter.Filter, err error) {
	kind, err := fixedfilter.ParseKind(opts.kind)
	if err != nil {
		return nil, nil, err
	}
	if kind == fixedfilter.KindHighPass {
		return nil, nil, fmt.Errorf("smoothing filter cannot be %s", kind)
	}

	seed := uint16(min(opts.seed, fixedfilter.MaxSample))
	low, err = fixedfilter.New(&fixedfilter.Config{Kind: kind, Coefficient: seed})
	if err != nil {
		return nil, nil, fmt.Errorf("low-pass: %w", err)
	}
	high, err = fixedfilter.New(&fixedfilter.Config{Kind: fixedfilter.KindHighPass, Coefficient: seed})
	if err != nil {
		return nil, nil, fmt.Errorf("high-pass: %w", err)
	}
	return low, high, nil
}

func run(args []string, w io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	low, high, err := newFilters(opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Seed: %d, smoothing: %s", opts.seed, opts.kind)
		log.Printf("Signal: %d samples, period %d, full scale %g", opts.samples, opts.period, opts.fullScale)
		low = fixedfilter.Observe(low, func(in, out uint16) {
			log.Printf("low  %5d -> %5d", in, out)
		})
		high = fixedfilter.Observe(high, func(in, out uint16) {
			log.Printf("high %5d -> %5d", in, out)
		})
	}

	in, err := signal.UnitSine(opts.samples, opts.period, opts.fullScale)
	if err != nil {
		return fmt.Errorf("failed to generate input: %w", err)
	}

	lowOut, highOut, err := writeTable(w, in, low, high, opts.perLine)
	if err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return writeSummary(w, opts.fullScale, in, lowOut, highOut)
}

// writeTable prints one "IL/IH OL/OH" group per sample and returns the
// filter outputs.
func writeTable(w io.Writer, in []uint16, low, high fixedfilter.Filter, perLine int) (lowOut, highOut []uint16, err error) {
	lowOut = make([]uint16, len(in))
	highOut = make([]uint16, len(in))

	for i, x := range in {
		lowOut[i] = low.Process(x)
		highOut[i] = high.Process(x)

		sep := groupSeparator
		if i%perLine == perLine-1 || i == len(in)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "IL: %d, IH: %d OL: %d, OH: %d%s%s",
			x, x, lowOut[i], highOut[i], groupSuffix, sep); err != nil {
			return nil, nil, err
		}
	}
	return lowOut, highOut, nil
}

// writeSummary prints statistics of each signal in percent of full scale.
func writeSummary(w io.Writer, fullScale float64, in, lowOut, highOut []uint16) error {
	rows := []struct {
		name    string
		samples []uint16
	}{
		{"input", in},
		{"low-pass", lowOut},
		{"high-pass", highOut},
	}

	if _, err := fmt.Fprintf(w, "\nSummary (%% of full scale %g):\n", fullScale); err != nil {
		return err
	}
	for _, r := range rows {
		s := analysis.SummarizeScaled(r.samples, fullScale)
		if _, err := fmt.Fprintf(w, "  %-9s  min %6.1f  max %6.1f  p2p %6.1f  mean %6.1f  rms %6.1f\n",
			r.name, percent*s.Min, percent*s.Max, percent*s.PeakToPeak, percent*s.Mean, percent*s.RMS); err != nil {
			return err
		}
	}
	return nil
}
