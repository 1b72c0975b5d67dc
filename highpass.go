package fixedfilter

import "github.com/tphakala/go-fixed-filter/internal/fixedpoint"

// CoefficientPolicy selects how a high-pass filter maps its raw seed onto the
// seed of the low-pass filter it subtracts.
type CoefficientPolicy int

const (
	// PolicyDirect passes the seed through unchanged, so a high-pass and a
	// low-pass built from the same seed are exact complements.
	PolicyDirect CoefficientPolicy = iota

	// PolicyInverted mirrors the seed with InvertedSeed: a larger seed gives
	// a smaller low-pass alpha and moves the corner the opposite way.
	PolicyInverted
)

func (p CoefficientPolicy) String() string {
	switch p {
	case PolicyDirect:
		return "direct"
	case PolicyInverted:
		return "inverted"
	default:
		return "unknown"
	}
}

func (p CoefficientPolicy) seed(raw uint16) uint16 {
	if p == PolicyInverted {
		return InvertedSeed(raw)
	}
	return raw
}

// HighPass returns the input minus the output of an owned low-pass filter.
type HighPass struct {
	lp     LowPass
	policy CoefficientPolicy
	bias   int32
}

// NewHighPass creates a high-pass filter using PolicyDirect and no output
// bias.
func NewHighPass(raw uint16) HighPass {
	return HighPass{lp: NewLowPass(raw)}
}

// Process feeds one sample and returns x - lowpass(x) + bias, clamped to the
// unsigned sample range.
func (f *HighPass) Process(x uint16) uint16 {
	return fixedpoint.Clamp16(f.Difference(x) + f.bias)
}

// Difference feeds one sample and returns the exact signed x - lowpass(x).
// It advances the state exactly like Process.
func (f *HighPass) Difference(x uint16) int32 {
	low := f.lp.Process(x)
	return int32(x) - int32(low)
}

// SetCoefficient forwards the seed, mapped through the policy, to the owned
// low-pass filter. The state is kept.
func (f *HighPass) SetCoefficient(raw uint16) {
	f.lp.SetCoefficient(f.policy.seed(raw))
}

// SetPolicy changes the coefficient policy and re-applies the current seed.
func (f *HighPass) SetPolicy(p CoefficientPolicy, raw uint16) {
	f.policy = p
	f.SetCoefficient(raw)
}

// SetBias sets the offset added to the difference before clamping. MidScale
// yields offset-binary output that keeps negative excursions.
func (f *HighPass) SetBias(bias int32) {
	f.bias = bias
}

// Reset clears the owned low-pass state.
func (f *HighPass) Reset() {
	f.lp.Reset()
}

// State returns the state of the owned low-pass filter, i.e. the last value
// that was subtracted from the input.
func (f *HighPass) State() uint16 { return f.lp.State() }

// LowPass returns a copy of the owned low-pass filter.
func (f *HighPass) LowPass() LowPass { return f.lp }

// Policy returns the active coefficient policy.
func (f *HighPass) Policy() CoefficientPolicy { return f.policy }
