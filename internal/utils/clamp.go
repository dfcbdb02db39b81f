package utils

import "golang.org/x/exp/constraints"

// Clamp bounds v to [lo, hi]. Config validation uses it to pull nonsense
// values back into range instead of failing startup.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
