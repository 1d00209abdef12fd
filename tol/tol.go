// Package tol provides the approximate comparisons that geom uses in
// place of exact floating-point equality.
package tol

import "golang.org/x/exp/constraints"

// Number is a constraint for the types that tol can compare.
type Number interface {
	constraints.Integer | constraints.Float
}

// Multiplier scales the machine epsilon of a type to get the
// tolerance used by Compare. Results of trigonometric functions drift
// by more than a single epsilon.
const Multiplier = 10

var (
	epsilon32 float64 = 0x1p-23
	epsilon64 float64 = 0x1p-52

	// Lost when added to 1 as a float32, kept as a float64.
	probe32 float64 = 0x1p-30
)

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	one := T(1)
	return one/2 != 0
}

// Epsilon returns the difference between 1 and the next
// representable value of T. It is zero for integer types.
func Epsilon[T Number]() T {
	if !IsFloat[T]() {
		return 0
	}
	if T(1)+T(probe32) == T(1) {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// Abs returns the magnitude of n.
func Abs[T Number](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Compare reports whether a and b differ by no more than
// Multiplier times the epsilon of T. For integers this is exact
// equality. NaN compares unequal to everything.
func Compare[T Number](a, b T) bool {
	return Abs(a-b) <= Epsilon[T]()*Multiplier
}
