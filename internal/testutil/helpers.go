// Package testutil provides reusable assertions for fixed-point filter tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertNonDecreasing verifies that s[i] >= s[i-1] for every i.
func AssertNonDecreasing(t *testing.T, s []uint16, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not non-decreasing: s[%d]=%d < s[%d]=%d", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertNonIncreasing verifies that s[i] <= s[i-1] for every i.
func AssertNonIncreasing(t *testing.T, s []uint16, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not non-increasing: s[%d]=%d > s[%d]=%d", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that s[i] > s[i-1] for every i.
func AssertStrictlyIncreasing(t *testing.T, s []uint16, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: s[%d]=%d <= s[%d]=%d", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertIncreasingUntilSettled verifies that s strictly increases until it
// first repeats a value and stays constant from then on.
func AssertIncreasingUntilSettled(t *testing.T, s []uint16, msgAndArgs ...any) bool {
	t.Helper()
	settled := false
	for i := 1; i < len(s); i++ {
		switch {
		case settled && s[i] != s[i-1]:
			return assert.Fail(t, fmt.Sprintf("moved after settling: s[%d]=%d != s[%d]=%d", i, s[i], i-1, s[i-1]), msgAndArgs...)
		case s[i] < s[i-1]:
			return assert.Fail(t, fmt.Sprintf("reversed before settling: s[%d]=%d < s[%d]=%d", i, s[i], i-1, s[i-1]), msgAndArgs...)
		case s[i] == s[i-1]:
			settled = true
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []uint16, minVal, maxVal uint16, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%d is outside range [%d, %d]", i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertSettled verifies that the last n elements of s are all equal.
func AssertSettled(t *testing.T, s []uint16, n int, msgAndArgs ...any) bool {
	t.Helper()
	if n > len(s) {
		return assert.Fail(t, fmt.Sprintf("slice shorter than settle window: len=%d n=%d", len(s), n), msgAndArgs...)
	}
	tail := s[len(s)-n:]
	for i, v := range tail {
		if v != tail[0] {
			return assert.Fail(t, fmt.Sprintf("not settled: tail[%d]=%d != tail[0]=%d", i, v, tail[0]), msgAndArgs...)
		}
	}
	return true
}

// AssertWithin verifies |got - want| <= tolerance in integer units.
func AssertWithin(t *testing.T, want, got int64, tolerance int64, msgAndArgs ...any) bool {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return assert.Fail(t, fmt.Sprintf("difference exceeds tolerance: got %d, want %d ± %d", got, want, tolerance), msgAndArgs...)
	}
	return true
}
