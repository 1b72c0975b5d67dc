package fixedfilter

// LowPass is a single-pole exponential moving average.
//
// The zero value is not useful; build one with NewLowPass.
type LowPass struct {
	coeff      Coefficient
	lastOutput uint16
}

// NewLowPass creates a low-pass filter from a raw coefficient seed with its
// state cleared.
func NewLowPass(raw uint16) LowPass {
	return LowPass{coeff: NewCoefficient(raw)}
}

// Process feeds one sample and returns the new output, which is also the new
// filter state.
func (f *LowPass) Process(x uint16) uint16 {
	acc := uint32(f.coeff.alpha)*uint32(x) + uint32(f.coeff.oneMinusAlpha)*uint32(f.lastOutput)
	f.lastOutput = uint16(acc >> scaleShift)
	return f.lastOutput
}

// SetCoefficient replaces the coefficient. The accumulated state is kept, so
// the change takes effect on the next sample.
func (f *LowPass) SetCoefficient(raw uint16) {
	f.coeff = NewCoefficient(raw)
}

// Reset clears the state without touching the coefficient.
func (f *LowPass) Reset() {
	f.lastOutput = 0
}

// State returns the most recent output.
func (f *LowPass) State() uint16 { return f.lastOutput }

// Coefficient returns the active coefficient.
func (f *LowPass) Coefficient() Coefficient { return f.coeff }
