package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Scientific is a number split into coefficient and power of ten.
type Scientific struct {
	Coefficient float64 `json:"coefficient"`
	Exponent    int     `json:"exponent"`
}

// String renders "1.23 × 10^5".
func (s Scientific) String() string {
	return fmt.Sprintf("%s × 10^%d", strconv.FormatFloat(s.Coefficient, 'f', -1, 64), s.Exponent)
}

// E renders "1.23e5".
func (s Scientific) E() string {
	return fmt.Sprintf("%se%d", strconv.FormatFloat(s.Coefficient, 'f', -1, 64), s.Exponent)
}

// ToScientific normalises x so that 1 ≤ |coefficient| < 10, rounding the
// coefficient to sig significant figures (1–15).
func ToScientific(x float64, sig int) (Scientific, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Scientific{}, fmt.Errorf("%v is not a finite number", x)
	}
	if sig < 1 || sig > 15 {
		return Scientific{}, fmt.Errorf("significant figures must be between 1 and 15")
	}
	if x == 0 {
		return Scientific{}, nil
	}
	// Let strconv do the normalisation to avoid log10 rounding at powers of ten.
	text := strconv.FormatFloat(x, 'e', sig-1, 64)
	mant, exp, _ := strings.Cut(text, "e")
	c, _ := strconv.ParseFloat(mant, 64)
	e, _ := strconv.Atoi(exp)
	return Scientific{Coefficient: c, Exponent: e}, nil
}

var sciPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s*(?:[eE]\s*([+-]?\d+)|[x×*]\s*10\s*\^\s*([+-]?\d+))?$`)

// FromScientific parses "1.23e5", "1.23E-4", "1.23 × 10^5" or "1.23x10^5"
// and returns the value with its plain decimal rendering.
func FromScientific(s string) (float64, string, error) {
	m := sciPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", fmt.Errorf("%q is not in scientific notation", s)
	}
	exp := m[2]
	if exp == "" {
		exp = m[3]
	}
	text := m[1]
	if exp != "" {
		text += "e" + exp
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, "", fmt.Errorf("%q is out of range", s)
	}
	return v, strconv.FormatFloat(v, 'f', -1, 64), nil
}
