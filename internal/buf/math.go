// Package buf provides overflow-safe integer arithmetic for capacity
// estimation and buffer sizing.
package buf

import (
	"math"
	"math/bits"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// AddSat adds two non-negative sizes, saturating at math.MaxInt instead of
// wrapping. Capacity estimates are lower bounds, so saturation is always a
// valid answer.
func AddSat(a, b int) int {
	if sum, ok := AddOverflowSafe(a, b); ok {
		return sum
	}
	return math.MaxInt
}

// NextPow2 returns the smallest power of two greater than or equal to n.
// NextPow2(0) is 1. Values whose next power of two would not fit in an int
// are returned unchanged.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	if n > math.MaxInt/2+1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
