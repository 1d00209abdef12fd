package geom

import (
	"math"

	"deedles.dev/vec2/tol"
	"golang.org/x/exp/constraints"
)

// Add returns the componentwise sum of a and b.
func Add[V Vec[T], T Scalar](a, b V) V {
	p, q := unpack(a), unpack(b)
	return pack[V](p.X+q.X, p.Y+q.Y)
}

// Sub returns the componentwise difference of a and b.
func Sub[V Vec[T], T Scalar](a, b V) V {
	p, q := unpack(a), unpack(b)
	return pack[V](p.X-q.X, p.Y-q.Y)
}

// Scale returns v with both components multiplied by k. The type of k
// does not need to match the component type of v. If an integer
// vector is scaled by a floating-point factor, the result is rounded.
func Scale[V Vec[T], T, N Scalar](v V, k N) V {
	return Mul(k, v)
}

// Mul is Scale with the arguments swapped.
func Mul[N Scalar, V Vec[T], T Scalar](k N, v V) V {
	p := unpack(v)
	return pack[V](mul(p.X, k), mul(p.Y, k))
}

// Neg returns v with the sign of both components flipped.
func Neg[V Vec[T], T Scalar](v V) V {
	p := unpack(v)
	return pack[V](-p.X, -p.Y)
}

// Div returns v with both components divided by k. If k is
// approximately zero, the NaN vector is returned, or the zero vector
// for integer component types.
func Div[V Vec[T], T, N Scalar](v V, k N) V {
	if tol.Compare(k, 0) {
		return invalid[V]()
	}

	p := unpack(v)
	return pack[V](div(p.X, k), div(p.Y, k))
}

// Eq reports whether a and b are equal within the tolerance of
// tol.Compare.
func Eq[V Vec[T], T Scalar](a, b V) bool {
	p, q := unpack(a), unpack(b)
	return tol.Compare(p.X, q.X) && tol.Compare(p.Y, q.Y)
}

// Ne is the inverse of Eq.
func Ne[V Vec[T], T Scalar](a, b V) bool {
	return !Eq(a, b)
}

// Perp returns v rotated by 90 degrees such that the X component is
// negated. Of the two perpendicular vectors of v, it is always this
// one that is returned.
func Perp[V Vec[T], T Scalar](v V) V {
	p := unpack(v)
	return pack[V](-p.Y, p.X)
}

// Dot returns the dot product of a and b.
func Dot[V Vec[T], T Scalar](a, b V) T {
	p, q := unpack(a), unpack(b)
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the magnitude of the cross product of a and b treated
// as 3D vectors lying in the XY plane.
func Cross[V Vec[T], T Scalar](a, b V) T {
	p, q := unpack(a), unpack(b)
	return p.X*q.Y - p.Y*q.X
}

// Len2 returns the squared length of v. It does not check for
// overflow. Prefer it to Len when only comparing lengths.
func Len2[V Vec[T], T Scalar](v V) T {
	return Dot(v, v)
}

// Len returns the length of v. It does not check for overflow or
// underflow. For integer component types the result is truncated.
func Len[V Vec[T], T Scalar](v V) T {
	return T(math.Sqrt(float64(Len2(v))))
}

// Dist returns the distance between a and b.
func Dist[V Vec[T], T Scalar](a, b V) T {
	return Len(Sub(a, b))
}

// Normalize returns a vector of length 1 in the same direction as v.
// If v is approximately the zero vector, the NaN vector is returned.
func Normalize[V Vec[T], T constraints.Float](v V) V {
	l := Len(v)
	if tol.Compare(l, 0) {
		return invalid[V]()
	}

	p := unpack(v)
	return pack[V](p.X/l, p.Y/l)
}

func degenerate[V Vec[T], T Scalar](axis V) bool {
	a := unpack(axis)
	return tol.Compare(a.X, 0) && tol.Compare(a.Y, 0)
}

// Project returns the projection of v onto axis, which does not need
// to be of unit length. If axis is approximately the zero vector, the
// NaN vector is returned. Projecting the zero vector onto any other
// axis yields the zero vector.
func Project[V Vec[T], T constraints.Float](v, axis V) V {
	if degenerate(axis) {
		return invalid[V]()
	}

	q := Dot(v, axis) / Len2(axis)
	return Scale(axis, q)
}

// ProjectUnit returns the projection of v onto axis, which must be of
// unit length. This is not checked.
func ProjectUnit[V Vec[T], T Scalar](v, axis V) V {
	return Scale(axis, Dot(v, axis))
}

// Reflect returns the reflection of v on axis, which does not need to
// be of unit length. If axis is approximately the zero vector, the NaN
// vector is returned.
func Reflect[V Vec[T], T constraints.Float](v, axis V) V {
	if degenerate(axis) {
		return invalid[V]()
	}

	return Sub(v, Scale(Project(v, axis), 2))
}

// ReflectUnit returns the reflection of v on axis, which must be of
// unit length. This is not checked.
func ReflectUnit[V Vec[T], T Scalar](v, axis V) V {
	return Sub(v, Scale(ProjectUnit(v, axis), 2))
}

// Rotate returns v rotated around origin by angle. With the Y axis
// pointing down, as on a screen, the rotation is clockwise. For
// integer component types the result is rounded.
func Rotate[V Vec[T], T Scalar](v, origin V, angle Angle) V {
	p, o := unpack(v), unpack(origin)
	sin, cos := math.Sincos(angle.Radians())

	dx := float64(p.X) - float64(o.X)
	dy := float64(p.Y) - float64(o.Y)
	return pack[V](
		fromFloat[T](float64(o.X)+(dx*cos-dy*sin)),
		fromFloat[T](float64(o.Y)+(dx*sin+dy*cos)),
	)
}
