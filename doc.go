// Package fixedfilter provides single-pole recursive smoothing filters that run
// entirely on integers.
//
// The filters are intended for resource-constrained targets: samples and state
// are unsigned 16-bit values, coefficients are small fixed-point integers, and
// processing a sample never allocates, never touches floating point and runs
// in constant time.
//
// # Filters
//
//   - [LowPass]: exponential moving average
//     y = (alpha*x + (FullScale-alpha-1)*y) >> (ScaleBits+1), computed with a
//     32-bit intermediate.
//   - [HighPass]: owns a [LowPass] and returns the input minus the low-pass
//     output.
//   - [NormalizedLowPass]: keeps every multiply inside a 16-bit product by
//     inspecting the bit width of the sample and the state and pre-shifting
//     only the operands that would overflow.
//
// # Quick Start
//
//	lp := fixedfilter.NewLowPass(10)
//	for _, x := range samples {
//	    y := lp.Process(x)
//	    _ = y
//	}
//
// For configuration driven construction use [New]:
//
//	f, err := fixedfilter.New(&fixedfilter.Config{
//	    Kind:        fixedfilter.KindHighPass,
//	    Coefficient: 4,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Coefficients
//
// A raw seed r produces alpha = r+1 and one_minus_alpha = FullScale-alpha-1, so
// the two weights sum to FullScale-1. The low-pass DC gain is therefore
// alpha/(alpha+1) rather than exactly one. Seeds above [MaxCoefficient] wrap the
// complement and are rejected by [New]; the direct constructors accept them.
//
// # Observability
//
// Filters never log. Wrap a filter with [Observe] to attach a per-sample hook
// at the call site.
package fixedfilter
