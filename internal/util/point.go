package util

import (
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/vec2/geom"
)

// ParsePoint parses a point written as "x,y". Surrounding whitespace
// and parentheses are ignored.
func ParsePoint(s string) (geom.Point[float64], error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point[float64]{}, fmt.Errorf("parse point %q: missing comma", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point[float64]{}, fmt.Errorf("parse point %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point[float64]{}, fmt.Errorf("parse point %q: y: %w", s, err)
	}

	return geom.Pt(x, y), nil
}

// ParseScalar parses a single number.
func ParseScalar(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse scalar %q: %w", s, err)
	}
	return v, nil
}

func FormatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func FormatPoint(p geom.Point[float64]) string {
	return FormatScalar(p.X) + "," + FormatScalar(p.Y)
}
