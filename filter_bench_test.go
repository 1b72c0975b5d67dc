package fixedfilter

import (
	"testing"

	"github.com/tphakala/go-fixed-filter/internal/signal"
)

const benchBlockSize = 4096

func benchmarkFilter(b *testing.B, f Filter) {
	b.Helper()

	src := signal.Noise(1, benchBlockSize, 0, MaxSample)
	dst := make([]uint16, benchBlockSize)

	b.SetBytes(benchBlockSize * 2)
	b.ReportAllocs()
	for b.Loop() {
		ProcessBlock(f, dst, src)
	}
}

func BenchmarkLowPass(b *testing.B) {
	lp := NewLowPass(10)
	benchmarkFilter(b, &lp)
}

func BenchmarkHighPass(b *testing.B) {
	hp := NewOffsetHighPass(10)
	benchmarkFilter(b, hp)
}

func BenchmarkNormalizedLowPass(b *testing.B) {
	for _, mode := range []RealignMode{RealignPerOperand, RealignInputOnly} {
		b.Run(mode.String(), func(b *testing.B) {
			nlp := NewNormalizedLowPass(10)
			nlp.SetRealignMode(mode)
			benchmarkFilter(b, &nlp)
		})
	}
}

func BenchmarkObserve(b *testing.B) {
	lp := NewLowPass(10)
	var sink uint16
	benchmarkFilter(b, Observe(&lp, func(_, out uint16) { sink = out }))
	_ = sink
}
