package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MinOf returns the smallest item, ok is false for an empty list.
func MinOf[T constraints.Ordered](items []T) (min T, ok bool) {
	if len(items) == 0 {
		return min, false
	}
	min = items[0]
	for _, v := range items[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

func MaxOf[T constraints.Ordered](items []T) (max T, ok bool) {
	if len(items) == 0 {
		return max, false
	}
	max = items[0]
	for _, v := range items[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// AddUint64 adds with overflow detection.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// MulUint64 multiplies with overflow detection.
func MulUint64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func BoolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
