package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, float32(2.5), Mean([]float32{1, 2, 3, 4}), 1e-6)
	assert.Zero(t, Mean([]float64(nil)))
}

func TestEnergy(t *testing.T) {
	assert.InDelta(t, 30.0, Energy([]float64{1, 2, 3, 4}), 1e-12)
	assert.Zero(t, Energy([]float64{}))
}

func TestScale(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := make([]float64, len(src))
	For[float64]().Scale(dst, src, 2)
	assert.Equal(t, []float64{2, 4, 6}, dst)
}
