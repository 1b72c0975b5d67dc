package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitWidth(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{63, 6},
		{64, 7},
		{1023, 10},
		{1024, 11},
		{0x8000, 16},
		{0xFFFF, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BitWidth(tt.in), "BitWidth(%d)", tt.in)
	}
}

func TestOverflowShift(t *testing.T) {
	tests := []struct {
		name    string
		operand uint
		want    uint
	}{
		{"zero_operand", 0, 0},
		{"fits_exactly", 10, 0},
		{"one_over", 11, 1},
		{"full_width", 16, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverflowShift(tt.operand, 6, NativeBits))
		})
	}
}

func TestSaturate16(t *testing.T) {
	assert.Equal(t, uint16(0), Saturate16(0))
	assert.Equal(t, uint16(1234), Saturate16(1234))
	assert.Equal(t, uint16(0xFFFF), Saturate16(0xFFFF))
	assert.Equal(t, uint16(0xFFFF), Saturate16(0x10000))
	assert.Equal(t, uint16(0xFFFF), Saturate16(1<<31))
	assert.Equal(t, uint16(0xFFFF), Saturate16(1<<40))
}

func TestClamp16(t *testing.T) {
	assert.Equal(t, uint16(0), Clamp16(-1))
	assert.Equal(t, uint16(0), Clamp16(-70000))
	assert.Equal(t, uint16(512), Clamp16(512))
	assert.Equal(t, uint16(0xFFFF), Clamp16(70000))
}
