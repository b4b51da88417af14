package algebra

import (
	"errors"
	"math/big"
	"strings"
)

var (
	ErrNeedTwo         = errors.New("enter at least two integers")
	ErrZeroDenominator = errors.New("denominator must not be zero")
	ErrUnknownOperator = errors.New("unknown operator")
)

// GCDLCM returns the greatest common divisor and least common multiple of
// values, computed in arbitrary precision. Signs are ignored.
func GCDLCM(values []*big.Int) (gcd, lcm *big.Int, err error) {
	if len(values) < 2 {
		return nil, nil, ErrNeedTwo
	}
	gcd = new(big.Int).Abs(values[0])
	lcm = new(big.Int).Abs(values[0])
	for _, v := range values[1:] {
		abs := new(big.Int).Abs(v)
		gcd.GCD(nil, nil, gcd, abs)

		if lcm.Sign() == 0 || abs.Sign() == 0 {
			lcm.SetInt64(0)
			continue
		}
		g := new(big.Int).GCD(nil, nil, lcm, abs)
		lcm.Mul(lcm, abs).Quo(lcm, g)
	}
	return gcd, lcm, nil
}

// ParseFraction parses "n/d", "n" or a mixed number "w n/d".
func ParseFraction(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	whole := ""
	if i := strings.IndexByte(s, ' '); i > 0 && strings.Contains(s[i:], "/") {
		whole, s = s[:i], strings.TrimSpace(s[i+1:])
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		if strings.HasSuffix(s, "/0") {
			return nil, ErrZeroDenominator
		}
		return nil, errors.New("not a fraction: " + s)
	}
	if whole != "" {
		w, ok := new(big.Rat).SetString(whole)
		if !ok || !w.IsInt() {
			return nil, errors.New("not a whole number: " + whole)
		}
		if w.Sign() < 0 {
			r.Neg(r)
		}
		r.Add(r, w)
	}
	return r, nil
}

// FractionOp applies op (+ - * /) to x and y.
func FractionOp(x *big.Rat, op string, y *big.Rat) (*big.Rat, error) {
	z := new(big.Rat)
	switch op {
	case "+":
		return z.Add(x, y), nil
	case "-":
		return z.Sub(x, y), nil
	case "*", "×":
		return z.Mul(x, y), nil
	case "/", "÷":
		if y.Sign() == 0 {
			return nil, ErrZeroDenominator
		}
		return z.Quo(x, y), nil
	default:
		return nil, ErrUnknownOperator
	}
}

// MixedNumber renders r as a mixed number, e.g. "1 1/2" or "-3/4".
func MixedNumber(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	sign := ""
	if r.Sign() < 0 {
		sign = "-"
	}
	if whole.Sign() == 0 {
		return sign + rem.String() + "/" + den.String()
	}
	return sign + whole.String() + " " + rem.String() + "/" + den.String()
}
