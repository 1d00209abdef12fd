package geom

import (
	"image"
	"math"

	"deedles.dev/vec2/tol"
	"golang.org/x/image/math/fixed"
)

// Point is a 2D vector. It satisfies Vec, and its methods are
// shorthands for the package-level functions of the same names.
type Point[T Scalar] struct {
	X, Y T
}

func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// FromFixed converts a 26.6 fixed-point point to a Point[float64].
func FromFixed(p fixed.Point26_6) Point[float64] {
	return Pt(float64(p.X)/64, float64(p.Y)/64)
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Add(p, q)
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Sub(p, q)
}

func (p Point[T]) Mul(k T) Point[T] {
	return Scale(p, k)
}

func (p Point[T]) Div(k T) Point[T] {
	return Div(p, k)
}

func (p Point[T]) Neg() Point[T] {
	return Neg(p)
}

func (p Point[T]) Eq(q Point[T]) bool {
	return Eq(p, q)
}

func (p Point[T]) Perp() Point[T] {
	return Perp(p)
}

func (p Point[T]) Dot(q Point[T]) T {
	return Dot(p, q)
}

func (p Point[T]) Cross(q Point[T]) T {
	return Cross(p, q)
}

func (p Point[T]) Len2() T {
	return Len2(p)
}

func (p Point[T]) Len() T {
	return Len(p)
}

func (p Point[T]) Dist(q Point[T]) T {
	return Dist(p, q)
}

// Rotate rotates p around origin. See the Rotate function.
func (p Point[T]) Rotate(origin Point[T], angle Angle) Point[T] {
	return Rotate(p, origin, angle)
}

// IsZero reports whether both components of p are zero within the
// tolerance of tol.Compare.
func (p Point[T]) IsZero() bool {
	return tol.Compare(p.X, 0) && tol.Compare(p.Y, 0)
}

func (p Point[T]) IsNaN() bool {
	return IsNaN(p)
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Fixed converts p to a 26.6 fixed-point point, rounding to the
// nearest 1/64th.
func (p Point[T]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}
