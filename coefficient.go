package fixedfilter

// Coefficient is the fixed-point smoothing factor of the basic filters.
// Alpha weights the newest sample, OneMinusAlpha the previous output; both are
// in units of 1/FullScale and always sum to FullScale-1.
type Coefficient struct {
	raw           uint16
	alpha         uint16
	oneMinusAlpha uint16
}

// NewCoefficient encodes a raw seed. The +1 keeps alpha >= 1 so the filter can
// never have zero gain. Seeds above MaxCoefficient wrap the complement.
func NewCoefficient(raw uint16) Coefficient {
	alpha := raw + 1
	return Coefficient{
		raw:           raw,
		alpha:         alpha,
		oneMinusAlpha: FullScale - alpha - 1,
	}
}

// Raw returns the seed the coefficient was built from.
func (c Coefficient) Raw() uint16 { return c.raw }

// Alpha returns the weight of the newest sample.
func (c Coefficient) Alpha() uint16 { return c.alpha }

// OneMinusAlpha returns the weight of the previous output.
func (c Coefficient) OneMinusAlpha() uint16 { return c.oneMinusAlpha }

// Valid reports whether the seed is in the non-wrapping range.
func (c Coefficient) Valid() bool { return c.raw <= MaxCoefficient }

// InvertedSeed mirrors a raw seed around the coefficient range, saturating at
// zero. A larger seed then yields a smaller alpha.
func InvertedSeed(raw uint16) uint16 {
	if raw >= MaxCoefficient {
		return 0
	}
	return MaxCoefficient - raw
}
