package fixedfilter

import (
	"errors"
	"fmt"
	"strings"
)

// Filter is the common per-sample contract of every filter in this package.
type Filter interface {
	// Process feeds one sample and returns one output sample. The filter's
	// internal state is updated as a side effect.
	Process(x uint16) uint16

	// SetCoefficient replaces the coefficient without clearing the state.
	SetCoefficient(raw uint16)

	// Reset clears the state without touching the coefficient.
	Reset()

	// State returns the current recursive state (the last low-pass output).
	State() uint16
}

// Kind identifies a filter implementation.
type Kind int

const (
	// KindLowPass selects LowPass.
	KindLowPass Kind = iota

	// KindHighPass selects HighPass.
	KindHighPass

	// KindNormalizedLowPass selects NormalizedLowPass.
	KindNormalizedLowPass
)

func (k Kind) String() string {
	switch k {
	case KindLowPass:
		return "lowpass"
	case KindHighPass:
		return "highpass"
	case KindNormalizedLowPass:
		return "normalized"
	default:
		return "unknown"
	}
}

// Kinds lists every supported filter kind.
func Kinds() []Kind {
	return []Kind{KindLowPass, KindHighPass, KindNormalizedLowPass}
}

// ParseKind maps a name such as "lowpass", "hp" or "normalized" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "low-pass", "lp":
		return KindLowPass, nil
	case "highpass", "high-pass", "hp":
		return KindHighPass, nil
	case "normalized", "normalised", "nlp":
		return KindNormalizedLowPass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Config holds filter construction parameters.
type Config struct {
	// Kind selects the filter implementation.
	Kind Kind

	// Coefficient is the raw coefficient seed. For the basic filters it must
	// not exceed MaxCoefficient; for the normalized filter it is in units of
	// 1/NormalizedUnity and must be below NormalizedUnity.
	Coefficient uint16

	// Policy maps the seed for KindHighPass. Ignored by other kinds.
	Policy CoefficientPolicy

	// Bias is added to the high-pass difference before clamping. Ignored by
	// other kinds.
	Bias int32

	// Realign selects the normalized filter's re-alignment formula. Ignored
	// by other kinds.
	Realign RealignMode
}

// Common errors returned by New.
var (
	ErrInvalidConfig    = errors.New("invalid filter configuration")
	ErrUnknownKind      = errors.New("unknown filter kind")
	ErrCoefficientRange = errors.New("coefficient seed out of range")
	ErrUnknownPolicy    = errors.New("unknown coefficient policy")
	ErrUnknownRealign   = errors.New("unknown realign mode")
)

// Validate checks the configuration without building a filter.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	switch c.Kind {
	case KindLowPass, KindHighPass:
		if c.Coefficient > MaxCoefficient {
			return fmt.Errorf("%w: %d > %d", ErrCoefficientRange, c.Coefficient, MaxCoefficient)
		}
	case KindNormalizedLowPass:
		if c.Coefficient >= NormalizedUnity {
			return fmt.Errorf("%w: %d >= %d", ErrCoefficientRange, c.Coefficient, NormalizedUnity)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, c.Kind)
	}

	if c.Policy != PolicyDirect && c.Policy != PolicyInverted {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, c.Policy)
	}
	if c.Realign != RealignPerOperand && c.Realign != RealignInputOnly {
		return fmt.Errorf("%w: %d", ErrUnknownRealign, c.Realign)
	}
	if c.Bias < -MaxSample || c.Bias > MaxSample {
		return fmt.Errorf("%w: bias %d outside [-%d, %d]", ErrInvalidConfig, c.Bias, MaxSample, MaxSample)
	}

	return nil
}

// New creates a filter from a validated configuration.
func New(config *Config) (Filter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Kind {
	case KindHighPass:
		hp := NewHighPass(config.Coefficient)
		hp.SetPolicy(config.Policy, config.Coefficient)
		hp.SetBias(config.Bias)
		return &hp, nil
	case KindNormalizedLowPass:
		nlp := NewNormalizedLowPass(config.Coefficient)
		nlp.SetRealignMode(config.Realign)
		return &nlp, nil
	default:
		lp := NewLowPass(config.Coefficient)
		return &lp, nil
	}
}

// Compile-time interface checks.
var (
	_ Filter = (*LowPass)(nil)
	_ Filter = (*HighPass)(nil)
	_ Filter = (*NormalizedLowPass)(nil)
)
