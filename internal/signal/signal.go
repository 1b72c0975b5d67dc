// Package signal generates deterministic unsigned 16-bit test signals for the
// fixed-point filters. Generation happens on the host side, so it may use
// floating point; the filters never see anything but integers.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultPeriod is the sine period used by the demo driver.
	DefaultPeriod = 1024

	// DefaultFullScale is the demo driver's peak-to-peak range.
	DefaultFullScale = 1024

	maxSample = math.MaxUint16
)

// ErrInvalidLength is returned for non-positive sample counts or periods.
var ErrInvalidLength = errors.New("signal length must be > 0")

// UnitSine samples one sine per period, mapped from [-1, 1] onto
// [0, fullScale] and truncated, matching the demo driver's
// ((sin*0.5 + 0.5) * fullScale).
func UnitSine(samples, period int, fullScale float64) ([]uint16, error) {
	return Sine(samples, period, fullScale/2, fullScale/2)
}

// Sine samples offset + amplitude*sin(2*pi*n/period), truncated toward zero
// and clamped to the 16-bit range.
func Sine(samples, period int, amplitude, offset float64) ([]uint16, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine: %w: samples=%d", ErrInvalidLength, samples)
	}
	if period <= 0 {
		return nil, fmt.Errorf("sine: %w: period=%d", ErrInvalidLength, period)
	}

	out := make([]uint16, samples)
	step := 2 * math.Pi / float64(period)
	for i := range out {
		out[i] = toSample(offset + amplitude*math.Sin(step*float64(i)))
	}
	return out, nil
}

// Sum adds signals sample by sample with saturation. The result has the length
// of the shortest input.
func Sum(signals ...[]uint16) []uint16 {
	if len(signals) == 0 {
		return nil
	}
	n := len(signals[0])
	for _, s := range signals[1:] {
		n = min(n, len(s))
	}

	out := make([]uint16, n)
	for i := range out {
		var acc uint32
		for _, s := range signals {
			acc += uint32(s[i])
		}
		out[i] = uint16(min(acc, maxSample))
	}
	return out
}

// Step returns low for indices before at and high from at onward.
func Step(samples, at int, low, high uint16) []uint16 {
	out := make([]uint16, max(samples, 0))
	for i := range out {
		if i < at {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// Constant returns samples copies of v.
func Constant(samples int, v uint16) []uint16 {
	return Step(samples, 0, v, v)
}

// Noise returns uniformly distributed samples in [low, high] from a fixed seed.
func Noise(seed int64, samples int, low, high uint16) []uint16 {
	if high < low {
		low, high = high, low
	}
	out := make([]uint16, max(samples, 0))
	rng := rand.New(rand.NewSource(seed))
	span := int(high) - int(low) + 1
	for i := range out {
		out[i] = low + uint16(rng.Intn(span))
	}
	return out
}

func toSample(v float64) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= maxSample:
		return maxSample
	default:
		return uint16(v)
	}
}
