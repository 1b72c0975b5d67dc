package fixedfilter

// ProcessBlock runs src through f into dst and returns the number of samples
// written, which is min(len(dst), len(src)). dst and src may be the same
// slice. No memory is allocated.
func ProcessBlock(f Filter, dst, src []uint16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = f.Process(src[i])
	}
	return n
}

// Apply runs samples through f and returns the outputs in a new slice.
func Apply(f Filter, samples []uint16) []uint16 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]uint16, len(samples))
	ProcessBlock(f, out, samples)
	return out
}

// ObserveFunc receives each input sample and the output it produced.
type ObserveFunc func(in, out uint16)

// observed wraps a Filter with a per-sample hook.
type observed struct {
	Filter
	fn ObserveFunc
}

// Observe returns a Filter that forwards to f and reports every processed
// sample to fn. It is the place to attach logging or tracing; the filters
// themselves never log. A nil fn returns f unchanged.
func Observe(f Filter, fn ObserveFunc) Filter {
	if fn == nil {
		return f
	}
	return &observed{Filter: f, fn: fn}
}

func (o *observed) Process(x uint16) uint16 {
	y := o.Filter.Process(x)
	o.fn(x, y)
	return y
}

// Common coefficient seeds for convenience constructors.
const (
	// SeedHeavy gives alpha = 2/128: strong smoothing, slow response.
	SeedHeavy = 1

	// SeedMedium gives alpha = 16/128.
	SeedMedium = 15

	// SeedLight gives alpha = 64/128: light smoothing, fast response.
	SeedLight = 63
)

// NewSmoother creates a heavily smoothing low-pass filter, the setup used by
// the sine demo.
func NewSmoother() *LowPass {
	lp := NewLowPass(SeedHeavy)
	return &lp
}

// NewOffsetHighPass creates a high-pass filter whose output is offset-binary
// around MidScale, so negative differences survive the unsigned output.
func NewOffsetHighPass(raw uint16) *HighPass {
	hp := NewHighPass(raw)
	hp.SetBias(MidScale)
	return &hp
}
