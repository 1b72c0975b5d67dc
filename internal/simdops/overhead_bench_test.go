package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

const benchLength = 1024

func benchBuffer() []float64 {
	a := make([]float64, benchLength)
	for i := range a {
		a[i] = float64(i%1024) * 0.5
	}
	return a
}

// BenchmarkDirectF64Sum measures direct SIMD call overhead.
func BenchmarkDirectF64Sum(b *testing.B) {
	a := benchBuffer()

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.Sum(a)
	}
}

// BenchmarkIndirectF64Sum measures the indirect call through the Ops table.
func BenchmarkIndirectF64Sum(b *testing.B) {
	ops := For[float64]()
	a := benchBuffer()

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Sum(a)
	}
}

// BenchmarkEnergy measures the dot-product based energy reduction.
func BenchmarkEnergy(b *testing.B) {
	a := benchBuffer()

	b.ReportAllocs()
	for b.Loop() {
		_ = Energy(a)
	}
}
