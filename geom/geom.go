// Package geom provides generic 2D vector math.
//
// The functions in this package work on any type whose underlying
// type is struct{ X, Y T } for a numeric T. Point is provided for
// convenience, but image.Point, fixed.Point26_6, and any other struct
// with exactly an X and a Y field of the same numeric type can be
// passed directly:
//
//	geom.Add(image.Pt(1, 2), image.Pt(3, 4)) // image.Point{4, 6}
//
// Functions that would divide by a value that is approximately zero
// return a vector with both components set to NaN instead. Use IsNaN
// to check for it.
package geom

import (
	"math"

	"deedles.dev/vec2/tol"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec is a constraint satisfied by every struct type that consists of
// exactly an X and a Y field of type T, in that order.
type Vec[T Scalar] interface {
	~struct{ X, Y T }
}

type xy[T Scalar] struct {
	X, Y T
}

func unpack[V Vec[T], T Scalar](v V) xy[T] {
	return xy[T](v)
}

func pack[V Vec[T], T Scalar](x, y T) V {
	return V(xy[T]{x, y})
}

// invalid returns the sentinel vector. Integer types have no NaN, so
// for them it is the zero vector.
func invalid[V Vec[T], T Scalar]() V {
	if !tol.IsFloat[T]() {
		return pack[V, T](0, 0)
	}
	nan := math.NaN()
	return pack[V](T(nan), T(nan))
}

// fromFloat converts f to T, rounding to the nearest value for integer
// types.
func fromFloat[T Scalar](f float64) T {
	if !tol.IsFloat[T]() {
		return T(math.Round(f))
	}
	return T(f)
}

func mul[T, N Scalar](x T, k N) T {
	if tol.IsFloat[N]() && !tol.IsFloat[T]() {
		return fromFloat[T](float64(x) * float64(k))
	}
	return x * T(k)
}

func div[T, N Scalar](x T, k N) T {
	if tol.IsFloat[N]() && !tol.IsFloat[T]() {
		// Truncates toward zero, same as integer division.
		return T(float64(x) / float64(k))
	}
	d := T(k)
	if d == 0 {
		// k does not fit in T.
		return T(float64(x) / float64(k))
	}
	return x / d
}

// IsNaN reports whether either component of v is NaN.
func IsNaN[V Vec[T], T Scalar](v V) bool {
	p := unpack(v)
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}
