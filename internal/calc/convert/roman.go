package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRomanRange is returned for integers Roman numerals cannot express.
var ErrRomanRange = errors.New("roman numerals cover 1 to 3999")

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// ToRoman converts n to a canonical Roman numeral.
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", ErrRomanRange
	}
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String(), nil
}

// FromRoman parses a canonical Roman numeral, case-insensitively. Numerals
// such as "IIII" or "VX" are rejected.
func FromRoman(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return 0, errors.New("numeral is empty")
	}
	n, rest := 0, upper
	for _, e := range romanTable {
		for strings.HasPrefix(rest, e.symbol) {
			n += e.value
			rest = rest[len(e.symbol):]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("%q is not a valid roman numeral", s)
	}
	if n < 1 || n > 3999 {
		return 0, ErrRomanRange
	}
	if canonical, _ := ToRoman(n); canonical != upper {
		return 0, fmt.Errorf("%q is not a canonical roman numeral (did you mean %s?)", s, canonical)
	}
	return n, nil
}
