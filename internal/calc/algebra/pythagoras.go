package algebra

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOneUnknown    = errors.New("leave exactly one side empty")
	ErrNegativeSide  = errors.New("sides must be positive")
	ErrHypotenuseLeg = errors.New("hypotenuse must be longer than either leg")
)

// RightTriangle holds the legs a, b and hypotenuse c.
type RightTriangle struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// SolvePythagoras fills in the single unknown side (passed as 0) of a right
// triangle and returns the working as a step trace.
func SolvePythagoras(a, b, c float64) (RightTriangle, []string, error) {
	if a < 0 || b < 0 || c < 0 {
		return RightTriangle{}, nil, ErrNegativeSide
	}
	unknown := 0
	for _, v := range []float64{a, b, c} {
		if v == 0 {
			unknown++
		}
	}
	if unknown != 1 {
		return RightTriangle{}, nil, ErrOneUnknown
	}

	f := FormatFloat
	steps := []string{"a² + b² = c²"}
	switch {
	case c == 0:
		sum := a*a + b*b
		c = math.Sqrt(sum)
		steps = append(steps,
			fmt.Sprintf("%s² + %s² = c²", f(a), f(b)),
			fmt.Sprintf("%s + %s = c²", f(a*a), f(b*b)),
			fmt.Sprintf("c² = %s", f(sum)),
			fmt.Sprintf("c = √%s = %s", f(sum), f(c)),
		)
	default:
		known, name := b, "a"
		if b == 0 {
			known, name = a, "b"
		}
		if c <= known {
			return RightTriangle{}, nil, ErrHypotenuseLeg
		}
		diff := c*c - known*known
		side := math.Sqrt(diff)
		steps = append(steps,
			fmt.Sprintf("%s² = c² − %s²", name, otherLeg(name)),
			fmt.Sprintf("%s² = %s² − %s²", name, f(c), f(known)),
			fmt.Sprintf("%s² = %s − %s", name, f(c*c), f(known*known)),
			fmt.Sprintf("%s² = %s", name, f(diff)),
			fmt.Sprintf("%s = √%s = %s", name, f(diff), f(side)),
		)
		if name == "a" {
			a = side
		} else {
			b = side
		}
	}
	return RightTriangle{A: a, B: b, C: c}, steps, nil
}

func otherLeg(name string) string {
	if name == "a" {
		return "b"
	}
	return "a"
}
