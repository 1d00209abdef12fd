package util

import (
	"deedles.dev/vec2/geom"
	"github.com/spf13/pflag"
)

func Flag[T pflag.Value](fs *pflag.FlagSet, name string, value T, usage string) T {
	fs.Var(value, name, usage)
	return value
}

type pointFlag geom.Point[float64]

func (p pointFlag) String() string {
	return FormatPoint(geom.Point[float64](p))
}

func (p *pointFlag) Set(v string) error {
	pt, err := ParsePoint(v)
	if err != nil {
		return err
	}
	*p = pointFlag(pt)
	return nil
}

func (p *pointFlag) Type() string {
	return "point"
}

// PointFlag defines a flag that holds a point written as "x,y".
func PointFlag(fs *pflag.FlagSet, name string, value geom.Point[float64], usage string) *geom.Point[float64] {
	return (*geom.Point[float64])(Flag(fs, name, (*pointFlag)(&value), usage))
}
