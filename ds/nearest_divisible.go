package ds

import (
	"golang.org/x/exp/constraints"
)

// NearestDivisibleByM returns the smallest value >= n that is divisible by m.
// m must be positive.
func NearestDivisibleByM[T constraints.Integer](n T, m T) T {
	if m <= 0 {
		panic(ErrNonPositiveDivisor{M: int64(m)})
	}
	remainder := n % m
	if remainder == 0 {
		return n
	}
	return n + (m - remainder)
}

// PaddingToM is how many bytes have to be added to n to reach a multiple of m.
func PaddingToM[T constraints.Integer](n T, m T) T {
	return NearestDivisibleByM(n, m) - n
}
