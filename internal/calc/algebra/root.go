package algebra

import (
	"math"
	"strconv"
)

// Root is a real or complex polynomial root.
type Root struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// IsReal reports whether the root has no imaginary part.
func (r Root) IsReal() bool { return r.Im == 0 }

// String renders the root to six decimal places, e.g. "2" or "-0.5 - 0.866025i".
func (r Root) String() string {
	if r.IsReal() {
		return FormatFloat(r.Re)
	}
	sign := " + "
	if r.Im < 0 {
		sign = " - "
	}
	return FormatFloat(r.Re) + sign + FormatFloat(math.Abs(r.Im)) + "i"
}

// FormatFloat rounds to six decimal places and drops trailing zeros.
func FormatFloat(x float64) string {
	x = math.Round(x*1e6) / 1e6
	if x == 0 {
		x = 0 // normalise -0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// EvalPoly evaluates the polynomial with the given coefficients (highest
// degree first) at the complex point z.
func EvalPoly(coeffs []float64, z Root) Root {
	c := complex(0, 0)
	x := complex(z.Re, z.Im)
	for _, k := range coeffs {
		c = c*x + complex(k, 0)
	}
	return Root{Re: real(c), Im: imag(c)}
}
