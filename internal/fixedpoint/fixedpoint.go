// Package fixedpoint provides the integer helpers shared by the fixed-point
// filters: bit-width analysis for overflow prediction and saturating
// narrowing back to the 16-bit sample domain.
//
// Everything here is allocation free and only depends on math/bits so it can
// be used from the filter core on constrained targets.
package fixedpoint

import "math/bits"

// Native sample width in bits.
const NativeBits = 16

const (
	maxUint16 = 1<<NativeBits - 1
)

// BitWidth returns the position of the most significant set bit of v,
// counting from 1. BitWidth(0) is 0.
func BitWidth(v uint16) uint {
	return uint(bits.Len16(v))
}

// OverflowShift returns how many bits an operand of operandBits significant
// bits must be shifted right so that multiplying it by a coefficient of
// windowBits bits still fits in limitBits. It returns 0 when no shift is
// needed.
func OverflowShift(operandBits, windowBits, limitBits uint) uint {
	if windowBits+operandBits <= limitBits {
		return 0
	}
	return windowBits + operandBits - limitBits
}

// Saturate16 narrows v to uint16, clamping at the maximum.
func Saturate16(v uint64) uint16 {
	if v > maxUint16 {
		return maxUint16
	}
	return uint16(v)
}

// Clamp16 narrows a signed value into [0, 65535].
func Clamp16(v int32) uint16 {
	switch {
	case v < 0:
		return 0
	case v > maxUint16:
		return maxUint16
	default:
		return uint16(v)
	}
}
