package fixedfilter

import "github.com/tphakala/go-fixed-filter/internal/fixedpoint"

// Fixed-point format of the basic filters.
const (
	// ScaleBits is the fractional scale S of the coefficient encoding.
	ScaleBits = 6

	// FullScale is the coefficient denominator 2^(S+1).
	FullScale = 2 << ScaleBits

	// MaxCoefficient is the largest raw seed whose complement does not wrap.
	MaxCoefficient = FullScale - 2

	// scaleShift re-aligns a multiply-accumulate result to the sample domain.
	scaleShift = ScaleBits + 1
)

// Normalized filter precision window.
const (
	// WindowBits is the number of significant coefficient bits kept by the
	// normalized filter.
	WindowBits = 6

	// NormalizedUnity is the normalized filter's coefficient denominator.
	NormalizedUnity = 1 << WindowBits

	// nativeBits is the product width the normalized filter keeps operands in.
	nativeBits = fixedpoint.NativeBits
)

// Sample domain limits.
const (
	// MaxSample is the largest representable sample value.
	MaxSample = 1<<nativeBits - 1

	// MidScale is the offset-binary zero of the 16-bit sample domain.
	MidScale = 1 << (nativeBits - 1)
)
