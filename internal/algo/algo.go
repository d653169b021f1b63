// Package algo contains number theory helpers and graph searches shared by
// the puzzle solutions.
package algo

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return Abs(a)
}

// LCM returns the least common multiple of a and b.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return Abs(a/GCD(a, b)*b)
}

// Determinant returns a*b - c*d, the determinant of [[a, c], [d, b]].
func Determinant(a, b, c, d int64) int64 {
	return a*b - c*d
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Unsigned](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sum adds up values.
func Sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}

	return total
}
