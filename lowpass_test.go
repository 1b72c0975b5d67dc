package fixedfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixed-filter/internal/signal"
	"github.com/tphakala/go-fixed-filter/internal/testutil"
)

// referenceLowPass is the straight-line form of the update used to check
// Process bit for bit.
func referenceLowPass(raw uint16, in []uint16) []uint16 {
	alpha := uint32(raw) + 1
	oma := uint32(FullScale) - alpha - 1
	var last uint32
	out := make([]uint16, len(in))
	for i, x := range in {
		last = (alpha*uint32(x) + oma*last) >> (ScaleBits + 1)
		out[i] = uint16(last)
	}
	return out
}

func TestLowPass_StepResponse(t *testing.T) {
	lp := NewLowPass(10)
	out := Apply(&lp, signal.Step(10, 5, 0, 1023))

	assert.Equal(t, []uint16{0, 0, 0, 0, 0, 87, 166, 238, 303, 362}, out)
	testutil.AssertStrictlyIncreasing(t, out[5:])
}

func TestLowPass_MatchesReference(t *testing.T) {
	ramp := make([]uint16, 1024)
	for i := range ramp {
		ramp[i] = uint16(i)
	}
	noise := signal.Noise(7, 2048, 0, MaxSample)

	for raw := uint16(0); raw <= MaxCoefficient; raw++ {
		lp := NewLowPass(raw)
		require.Equal(t, referenceLowPass(raw, ramp), Apply(&lp, ramp), "ramp raw=%d", raw)

		lp.Reset()
		require.Equal(t, referenceLowPass(raw, noise), Apply(&lp, noise), "noise raw=%d", raw)
	}
}

func TestLowPass_ConstantInputConverges(t *testing.T) {
	seeds := []uint16{0, SeedHeavy, 10, SeedLight, MaxCoefficient}
	levels := []uint16{1, 1023, 40000, MaxSample}

	for _, raw := range seeds {
		for _, v := range levels {
			lp := NewLowPass(raw)
			alpha := int64(lp.Coefficient().Alpha())
			steps := 32*FullScale/int(alpha) + 32

			out := Apply(&lp, signal.Constant(steps, v))

			testutil.AssertIncreasingUntilSettled(t, out, "raw=%d v=%d", raw, v)
			testutil.AssertAllInRange(t, out, 0, v, "raw=%d v=%d", raw, v)
			testutil.AssertSettled(t, out, 8, "raw=%d v=%d", raw, v)

			// The weights sum to (FullScale-1)/FullScale, so the fixed point
			// is alpha*v/(alpha+1) less at most one truncation step.
			final := int64(out[len(out)-1])
			upper := alpha * int64(v) / (alpha + 1)
			lower := (alpha*int64(v) - FullScale) / (alpha + 1)
			assert.LessOrEqual(t, final, upper, "raw=%d v=%d", raw, v)
			assert.GreaterOrEqual(t, final, lower, "raw=%d v=%d", raw, v)
		}
	}
}

func TestLowPass_FallingStep(t *testing.T) {
	seeds := []uint16{0, SeedHeavy, 10, SeedLight, MaxCoefficient}
	levels := []struct{ hi, lo uint16 }{
		{MaxSample, 0},
		{MaxSample, 500},
		{40000, 5},
		{1023, 500},
	}

	for _, raw := range seeds {
		for _, l := range levels {
			lp := NewLowPass(raw)
			alpha := int64(lp.Coefficient().Alpha())
			steps := 32*FullScale/int(alpha) + 32

			Apply(&lp, signal.Constant(steps, l.hi))
			settled := lp.State()

			out := Apply(&lp, signal.Constant(steps, l.lo))

			// The DC gain is below one, so the floor is the fixed point of lo,
			// not lo itself.
			lower := uint16(max((alpha*int64(l.lo)-FullScale)/(alpha+1), 0))
			upper := uint16(alpha * int64(l.lo) / (alpha + 1))

			testutil.AssertNonIncreasing(t, append([]uint16{settled}, out...), "raw=%d hi=%d lo=%d", raw, l.hi, l.lo)
			testutil.AssertAllInRange(t, out, lower, settled, "raw=%d hi=%d lo=%d", raw, l.hi, l.lo)
			testutil.AssertAllInRange(t, out[len(out)-1:], lower, upper, "raw=%d hi=%d lo=%d", raw, l.hi, l.lo)
			testutil.AssertSettled(t, out, 8, "raw=%d hi=%d lo=%d", raw, l.hi, l.lo)

			// Rising again from a non-zero state is monotone as well.
			floor := lp.State()
			rise := Apply(&lp, signal.Constant(steps, l.hi))
			testutil.AssertNonDecreasing(t, append([]uint16{floor}, rise...), "raw=%d hi=%d lo=%d", raw, l.hi, l.lo)
		}
	}
}

func TestLowPass_OutputBoundedByInputHistory(t *testing.T) {
	in := signal.Noise(42, 4096, 0, MaxSample)

	for _, raw := range []uint16{0, 10, SeedLight, MaxCoefficient} {
		lp := NewLowPass(raw)
		var peak uint16
		for i, x := range in {
			peak = max(peak, x)
			y := lp.Process(x)
			if !assert.LessOrEqual(t, y, peak, "raw=%d i=%d", raw, i) {
				break
			}
		}
	}
}

func TestLowPass_SetCoefficientKeepsState(t *testing.T) {
	lp := NewLowPass(10)
	Apply(&lp, signal.Constant(5, 1023))
	state := lp.State()
	require.Equal(t, uint16(362), state)

	lp.SetCoefficient(SeedLight)
	assert.Equal(t, state, lp.State())
	assert.Equal(t, uint16(64), lp.Coefficient().Alpha())

	want := uint16((64*1023 + 63*uint32(state)) >> 7)
	assert.Equal(t, want, lp.Process(1023))
}

func TestLowPass_Reset(t *testing.T) {
	lp := NewLowPass(10)
	first := Apply(&lp, signal.Constant(4, 1023))

	lp.Reset()
	assert.Zero(t, lp.State())
	assert.Equal(t, uint16(11), lp.Coefficient().Alpha(), "coefficient survives reset")
	assert.Equal(t, first, Apply(&lp, signal.Constant(4, 1023)), "reset replays identically")
}

func TestLowPass_ZeroInputStaysZero(t *testing.T) {
	lp := NewLowPass(MaxCoefficient)
	out := Apply(&lp, signal.Constant(64, 0))
	testutil.AssertAllInRange(t, out, 0, 0)
}
