package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fixed-filter/internal/signal"
)

const (
	testWindow    = 1024
	testPeriod    = 64
	testAmplitude = 1000.0
	testOffset    = 2000.0

	magnitudeTolerance = 0.01
)

type passThrough struct{}

func (passThrough) Process(x uint16) uint16 { return x }
func (passThrough) Reset()                  {}

// halver removes the offset and halves the swing around it.
type halver struct{ offset uint16 }

func (h halver) Process(x uint16) uint16 {
	return h.offset + uint16((int32(x)-int32(h.offset))/2)
}
func (halver) Reset() {}

func TestSummarize(t *testing.T) {
	s := Summarize([]uint16{0, 2, 4, 6})

	assert.Equal(t, 4, s.Length)
	assert.InDelta(t, 0.0, s.Min, 0)
	assert.InDelta(t, 6.0, s.Max, 0)
	assert.InDelta(t, 6.0, s.PeakToPeak, 0)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(14), s.RMS, 1e-12)
	assert.InDelta(t, math.Sqrt(5), s.StdDev, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeScaled(t *testing.T) {
	s := SummarizeScaled([]uint16{0, 256, 512, 1024}, 1024)
	assert.InDelta(t, 0.0, s.Min, 1e-12)
	assert.InDelta(t, 1.0, s.Max, 1e-12)
	assert.InDelta(t, 1.0, s.PeakToPeak, 1e-12)
	assert.InDelta(t, 0.4375, s.Mean, 1e-12)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Normalize([]uint16{0, 2, 4}, 4))
	assert.Equal(t, []float64{3}, Normalize([]uint16{3}, 0), "non-positive scale leaves values unchanged")
	assert.Empty(t, Normalize(nil, 1))
}

func TestToneMagnitude_Sine(t *testing.T) {
	s, err := signal.Sine(testWindow, testPeriod, testAmplitude, testOffset)
	require.NoError(t, err)

	mag, err := ToneMagnitude(s, testPeriod)
	require.NoError(t, err)

	// Truncation to integers costs well under one unit of amplitude.
	assert.InDelta(t, testAmplitude, mag, 1.0)
}

func TestToneMagnitude_Errors(t *testing.T) {
	_, err := ToneMagnitude(nil, testPeriod)
	require.ErrorIs(t, err, ErrEmptySignal)

	_, err = ToneMagnitude(make([]uint16, 100), 64)
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGain(t *testing.T) {
	cfg := GainConfig{
		Period:    testPeriod,
		Amplitude: testAmplitude,
		Offset:    testOffset,
		Settle:    testPeriod,
		Window:    testWindow,
	}

	unity, err := Gain(passThrough{}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, unity, magnitudeTolerance)

	half, err := Gain(halver{offset: uint16(testOffset)}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half, magnitudeTolerance)
}

func TestGain_InvalidWindow(t *testing.T) {
	_, err := Gain(passThrough{}, GainConfig{Period: 8, Window: 12})
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = Gain(passThrough{}, GainConfig{Period: 8})
	require.ErrorIs(t, err, ErrEmptySignal)
}

func TestGainDB(t *testing.T) {
	assert.InDelta(t, -6.0206, GainDB(0.5), 1e-4)
	assert.True(t, math.IsInf(GainDB(0), -1))
}
