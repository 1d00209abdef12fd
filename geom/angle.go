package geom

import "math"

// Angle is anything that can report its measure in radians.
type Angle interface {
	Radians() float64
}

// Rad is an angle in radians.
type Rad float64

func (r Rad) Radians() float64 {
	return float64(r)
}

// Deg is an angle in degrees. Quarter turns convert to exact
// multiples of math.Pi/2.
type Deg float64

func (d Deg) Radians() float64 {
	return float64(d) / 180 * math.Pi
}
