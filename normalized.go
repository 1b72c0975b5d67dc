package fixedfilter

import "github.com/tphakala/go-fixed-filter/internal/fixedpoint"

// RealignMode selects how the normalized filter shifts its products back to
// the sample binary point after pre-shifting operands.
type RealignMode int

const (
	// RealignPerOperand shifts each product back by the pre-shift of its own
	// operand before summing. Output stays within the input history and
	// converges monotonically over the whole 16-bit domain.
	RealignPerOperand RealignMode = iota

	// RealignInputOnly applies the legacy formula, which compensates only
	// the input pre-shift: (alphaInput + omaState) >> (WindowBits - inputShift).
	// When the state needed a different pre-shift than the input the result
	// can overshoot; below 1024 both modes are bit-identical.
	RealignInputOnly
)

func (m RealignMode) String() string {
	switch m {
	case RealignPerOperand:
		return "per-operand"
	case RealignInputOnly:
		return "input-only"
	default:
		return "unknown"
	}
}

// NormalizedLowPass is a low-pass filter that never lets a coefficient
// multiply exceed a 16-bit product. Before each update it measures the bit
// width of the sample and of the state and right-shifts only the operand that
// would overflow, by only as many bits as needed.
//
// The raw seed is interpreted in units of 1/NormalizedUnity. Seeds wider than
// WindowBits are shifted down to fit and both products are shifted back up by
// the same amount. The state weight then reaches unity or more, so the output
// accumulates until it saturates at MaxSample.
type NormalizedLowPass struct {
	alpha      uint16
	alphaShift uint
	state      uint16
	realign    RealignMode
}

// NewNormalizedLowPass creates a normalized low-pass filter using
// RealignPerOperand.
func NewNormalizedLowPass(raw uint16) NormalizedLowPass {
	var f NormalizedLowPass
	f.SetCoefficient(raw)
	return f
}

// Process feeds one sample and returns the new state.
func (f *NormalizedLowPass) Process(x uint16) uint16 {
	inShift := fixedpoint.OverflowShift(fixedpoint.BitWidth(x), WindowBits, nativeBits)
	stateShift := fixedpoint.OverflowShift(fixedpoint.BitWidth(f.state), WindowBits, nativeBits)

	alphaInput := uint32(f.alpha) * uint32(x>>inShift) << f.alphaShift
	omaState := uint32(NormalizedUnity-f.alpha) * uint32(f.state>>stateShift) << f.alphaShift

	// Shifting back a wide seed's products can exceed 32 bits.
	var acc uint64
	if f.realign == RealignInputOnly {
		acc = uint64((alphaInput + omaState) >> (WindowBits - inShift))
	} else {
		acc = (uint64(alphaInput)<<inShift + uint64(omaState)<<stateShift) >> WindowBits
	}

	f.state = fixedpoint.Saturate16(acc)
	return f.state
}

// SetCoefficient replaces the coefficient and keeps the state.
func (f *NormalizedLowPass) SetCoefficient(raw uint16) {
	// max(0, bits(raw) - WindowBits)
	shift := fixedpoint.OverflowShift(fixedpoint.BitWidth(raw), 0, WindowBits)
	f.alphaShift = shift
	f.alpha = raw >> shift
}

// SetRealignMode selects the re-alignment formula.
func (f *NormalizedLowPass) SetRealignMode(m RealignMode) {
	f.realign = m
}

// Reset clears the state without touching the coefficient.
func (f *NormalizedLowPass) Reset() {
	f.state = 0
}

// State returns the most recent output.
func (f *NormalizedLowPass) State() uint16 { return f.state }

// Alpha returns the coefficient after it was fitted into the window.
func (f *NormalizedLowPass) Alpha() uint16 { return f.alpha }

// AlphaShift returns how far the raw seed was shifted to fit the window.
func (f *NormalizedLowPass) AlphaShift() uint { return f.alphaShift }

// RealignMode returns the active re-alignment formula.
func (f *NormalizedLowPass) RealignMode() RealignMode { return f.realign }
