package convert

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrDivideByZero = errors.New("division by zero")
	ErrShiftRange   = errors.New("shift amount must be between 0 and 4096")
	ErrUnknownOp    = errors.New("unknown operator")
	ErrRadix        = errors.New("base must be between 2 and 36")
	ErrEmptyOperand = errors.New("value is empty")
)

// HexOp is a hex calculator operator.
type HexOp string

const (
	HexAdd HexOp = "+"
	HexSub HexOp = "-"
	HexMul HexOp = "*"
	HexDiv HexOp = "/"
	HexMod HexOp = "%"
	HexAnd HexOp = "AND"
	HexOr  HexOp = "OR"
	HexXor HexOp = "XOR"
	HexShl HexOp = "<<"
	HexShr HexOp = ">>"
)

// HexOps lists the supported operators in display order.
var HexOps = []HexOp{HexAdd, HexSub, HexMul, HexDiv, HexMod, HexAnd, HexOr, HexXor, HexShl, HexShr}

// HexResult is the outcome of a hex calculation in several radixes.
type HexResult struct {
	Hex     string `json:"hex"`
	Decimal string `json:"decimal"`
	Binary  string `json:"binary"`
}

// ParseHex parses an optionally signed hex string with an optional 0x prefix.
func ParseHex(s string) (*big.Int, error) {
	return parseRadix(s, 16)
}

func parseRadix(s string, base int) (*big.Int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if base == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	if s == "" {
		return nil, ErrEmptyOperand
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%q is not a valid base-%d number", s, base)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// HexCalc applies op to the hex operands x and y. Bitwise operators work on
// two's complement values; shifts take y as the bit count.
func HexCalc(x string, op HexOp, y string) (HexResult, error) {
	a, err := ParseHex(x)
	if err != nil {
		return HexResult{}, fmt.Errorf("first value: %w", err)
	}
	b, err := ParseHex(y)
	if err != nil {
		return HexResult{}, fmt.Errorf("second value: %w", err)
	}

	z := new(big.Int)
	switch HexOp(strings.ToUpper(string(op))) {
	case HexAdd:
		z.Add(a, b)
	case HexSub:
		z.Sub(a, b)
	case HexMul, "×":
		z.Mul(a, b)
	case HexDiv, "÷":
		if b.Sign() == 0 {
			return HexResult{}, ErrDivideByZero
		}
		z.Quo(a, b)
	case HexMod:
		if b.Sign() == 0 {
			return HexResult{}, ErrDivideByZero
		}
		z.Rem(a, b)
	case HexAnd:
		z.And(a, b)
	case HexOr:
		z.Or(a, b)
	case HexXor:
		z.Xor(a, b)
	case HexShl, HexShr:
		if b.Sign() < 0 || b.Cmp(big.NewInt(4096)) > 0 {
			return HexResult{}, ErrShiftRange
		}
		if op == HexShl {
			z.Lsh(a, uint(b.Uint64()))
		} else {
			z.Rsh(a, uint(b.Uint64()))
		}
	default:
		return HexResult{}, fmt.Errorf("%w %q", ErrUnknownOp, string(op))
	}
	return HexResult{
		Hex:     strings.ToUpper(z.Text(16)),
		Decimal: z.Text(10),
		Binary:  z.Text(2),
	}, nil
}

// ConvertBase re-expresses value from one radix to another. Letters in the
// output are upper case.
func ConvertBase(value string, from, to int) (string, error) {
	if from < 2 || from > 36 || to < 2 || to > 36 {
		return "", ErrRadix
	}
	n, err := parseRadix(value, from)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(n.Text(to)), nil
}
