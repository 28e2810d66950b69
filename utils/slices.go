// Package utils implements small generic helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// MinSlice returns the smallest element of s. It panics if s is empty.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	if len(s) == 0 {
		panic("cannot MinSlice: empty slice")
	}
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}
