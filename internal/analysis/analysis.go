// Package analysis measures fixed-point filter outputs on the host side:
// time-domain summaries and steady-state tone gains via a real FFT.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-fixed-filter/internal/signal"
	"github.com/tphakala/go-fixed-filter/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Processor is the part of a filter the analysis needs.
type Processor interface {
	Process(x uint16) uint16
	Reset()
}

// Summary holds time-domain statistics of an integer signal.
type Summary struct {
	Length     int
	Min        float64
	Max        float64
	PeakToPeak float64
	Mean       float64 // DC offset
	RMS        float64
	StdDev     float64
}

var (
	// ErrEmptySignal is returned when there is nothing to measure.
	ErrEmptySignal = errors.New("signal must not be empty")

	// ErrInvalidPeriod is returned when a tone period does not fit the
	// analysis window.
	ErrInvalidPeriod = errors.New("tone period must divide the analysis window")
)

// ToFloat64 converts integer samples for analysis.
func ToFloat64(samples []uint16) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}
	return out
}

// Normalize converts samples to floats in units of fullScale.
func Normalize(samples []uint16, fullScale float64) []float64 {
	x := ToFloat64(samples)
	if fullScale <= 0 || len(x) == 0 {
		return x
	}
	out := make([]float64, len(x))
	simdops.For[float64]().Scale(out, x, 1/fullScale)
	return out
}

// Summarize computes the time-domain summary of samples.
func Summarize(samples []uint16) Summary {
	return summarize(ToFloat64(samples))
}

// SummarizeScaled is Summarize in units of fullScale.
func SummarizeScaled(samples []uint16, fullScale float64) Summary {
	return summarize(Normalize(samples, fullScale))
}

func summarize(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}

	lo := floats.Min(x)
	hi := floats.Max(x)

	return Summary{
		Length:     len(x),
		Min:        lo,
		Max:        hi,
		PeakToPeak: hi - lo,
		Mean:       simdops.Mean(x),
		RMS:        math.Sqrt(simdops.Energy(x) / float64(len(x))),
		StdDev:     stat.PopStdDev(x, nil),
	}
}

// ToneMagnitude returns the magnitude of the bin that holds a tone of the
// given period, normalised so a sine of amplitude A measures A. period must
// divide len(samples) so the tone falls exactly on a bin.
func ToneMagnitude(samples []uint16, period int) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, ErrEmptySignal
	}
	if period <= 0 || period > n || n%period != 0 {
		return 0, fmt.Errorf("%w: period=%d window=%d", ErrInvalidPeriod, period, n)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, ToFloat64(samples))
	bin := n / period

	scale := 2.0 / float64(n)
	if bin == 0 || 2*bin == n {
		scale = 1.0 / float64(n)
	}
	return cmplx.Abs(coeffs[bin]) * scale, nil
}

// GainConfig describes a steady-state sine gain measurement.
type GainConfig struct {
	// Period of the test tone in samples.
	Period int

	// Amplitude and Offset of the test tone.
	Amplitude float64
	Offset    float64

	// Settle is the number of samples discarded before measuring.
	Settle int

	// Window is the number of samples measured; it must be a multiple of
	// Period.
	Window int
}

// Gain feeds a sine through p (after resetting it) and returns the ratio of
// output to input tone magnitude in the measurement window.
func Gain(p Processor, cfg GainConfig) (float64, error) {
	if cfg.Window <= 0 || cfg.Settle < 0 {
		return 0, fmt.Errorf("%w: window=%d settle=%d", ErrEmptySignal, cfg.Window, cfg.Settle)
	}

	in, err := signal.Sine(cfg.Settle+cfg.Window, cfg.Period, cfg.Amplitude, cfg.Offset)
	if err != nil {
		return 0, fmt.Errorf("gain: %w", err)
	}

	p.Reset()
	out := make([]uint16, len(in))
	for i, x := range in {
		out[i] = p.Process(x)
	}

	inMag, err := ToneMagnitude(in[cfg.Settle:], cfg.Period)
	if err != nil {
		return 0, err
	}
	outMag, err := ToneMagnitude(out[cfg.Settle:], cfg.Period)
	if err != nil {
		return 0, err
	}
	if inMag == 0 {
		return 0, fmt.Errorf("gain: %w: input tone vanished", ErrEmptySignal)
	}

	return outMag / inMag, nil
}

// GainDB converts a linear gain to decibels. Returns -Inf for zero.
func GainDB(gain float64) float64 {
	if gain <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(gain)
}
