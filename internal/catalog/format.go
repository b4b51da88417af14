package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"calckit/internal/calc/algebra"
)

// overflow stands in for a non-finite number in rendered text. Run rejects
// any result that carries it.
const overflow = "\x00overflow"

func finite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// money renders x as dollars with thousands separators: "$1,234.56".
func money(x float64) string {
	if !finite(x) {
		return overflow
	}
	x = math.Round(x*100) / 100
	if x < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -x)
	}
	return "$" + humanize.FormatFloat("#,###.##", x)
}

// num renders x with thousands separators and up to six decimals, trimming
// trailing zeros.
func num(x float64) string {
	if !finite(x) {
		return overflow
	}
	if math.Abs(x) >= 1e15 || (x != 0 && math.Abs(x) < 1e-6) {
		return strconv.FormatFloat(x, 'g', 8, 64)
	}
	return humanize.CommafWithDigits(cleanZero(math.Round(x*1e6)/1e6), 6)
}

// fixed renders x with exactly d decimals and thousands separators.
func fixed(x float64, d int) string {
	if !finite(x) {
		return overflow
	}
	scale := math.Pow10(d)
	x = math.Round(x*scale) / scale
	format := "#,###." + strings.Repeat("#", d)
	if x < 0 {
		return "-" + humanize.FormatFloat(format, -x)
	}
	return humanize.FormatFloat(format, cleanZero(x))
}

// pct renders a percentage with up to two decimals.
func pct(x float64) string {
	if !finite(x) {
		return overflow
	}
	return humanize.CommafWithDigits(cleanZero(math.Round(x*100)/100), 2) + "%"
}

// count renders an integer with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

// plural renders "1 month" / "3 months".
func plural(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%s %s", count(n), unit)
	}
	return fmt.Sprintf("%s %ss", count(n), unit)
}

// duration renders a month count as "2 years, 3 months".
func duration(months int) string {
	y, m := months/12, months%12
	switch {
	case y == 0:
		return plural(m, "month")
	case m == 0:
		return plural(y, "year")
	default:
		return plural(y, "year") + ", " + plural(m, "month")
	}
}

// ordinal renders 1 as "1st", 22 as "22nd".
func ordinal(n int) string {
	return humanize.Ordinal(n)
}

// coord renders a value the way the algebra package prints roots.
func coord(x float64) string {
	if !finite(x) {
		return overflow
	}
	return algebra.FormatFloat(x)
}

func cleanZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
