package geometry

import (
	"errors"
	"math"
)

var (
	// ErrInvalidTriangle is returned when the sides cannot form a triangle.
	ErrInvalidTriangle = errors.New("sides do not satisfy the triangle inequality")

	ErrNonPositive = errors.New("dimensions must be greater than zero")
)

// Triangle is a triangle solved from its three sides.
type Triangle struct {
	A         float64    `json:"a"`
	B         float64    `json:"b"`
	C         float64    `json:"c"`
	Perimeter float64    `json:"perimeter"`
	Area      float64    `json:"area"`
	Angles    [3]float64 `json:"angles"` // opposite A, B and C, in degrees
	SideKind  string     `json:"side_kind"`
	AngleKind string     `json:"angle_kind"`
}

// SolveTriangle computes area (Heron's formula), perimeter and interior
// angles (law of cosines) from three side lengths.
func SolveTriangle(a, b, c float64) (Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Triangle{}, ErrNonPositive
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return Triangle{}, ErrInvalidTriangle
	}

	s := (a + b + c) / 2
	t := Triangle{A: a, B: b, C: c, Perimeter: 2 * s}
	t.Area = math.Sqrt(s * (s - a) * (s - b) * (s - c))
	t.Angles = [3]float64{
		angle(b, c, a),
		angle(a, c, b),
		angle(a, b, c),
	}
	t.SideKind = sideKind(a, b, c)
	t.AngleKind = angleKind(t.Angles)
	return t, nil
}

// angle returns the angle opposite side opp, in degrees.
func angle(x, y, opp float64) float64 {
	cos := (x*x + y*y - opp*opp) / (2 * x * y)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func sideKind(a, b, c float64) string {
	switch {
	case a == b && b == c:
		return "equilateral"
	case a == b || b == c || a == c:
		return "isosceles"
	default:
		return "scalene"
	}
}

func angleKind(angles [3]float64) string {
	const tol = 1e-9
	largest := math.Max(angles[0], math.Max(angles[1], angles[2]))
	switch {
	case math.Abs(largest-90) < tol:
		return "right"
	case largest > 90:
		return "obtuse"
	default:
		return "acute"
	}
}
