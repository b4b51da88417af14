package catalog

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"calckit/internal/calc/algebra"
	"calckit/internal/calc/convert"
	"calckit/internal/domain"
)

func mathCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "cubic-equation",
			Title:    "Cubic Equation Solver",
			Category: domain.CategoryMath,
			Summary:  "All three roots of ax³ + bx² + cx + d = 0, real or complex.",
			Fields: []domain.Field{
				numberField("a", "a", "1"),
				numberField("b", "b", "-6"),
				numberField("c", "c", "11"),
				numberField("d", "d", "-6"),
			},
			Compute: computeCubic,
		},
		{
			Slug:     "quadratic-equation",
			Title:    "Quadratic Equation Solver",
			Category: domain.CategoryMath,
			Summary:  "Roots, discriminant and vertex of ax² + bx + c = 0.",
			Fields: []domain.Field{
				numberField("a", "a", "1"),
				numberField("b", "b", "-3"),
				numberField("c", "c", "2"),
			},
			Compute: computeQuadratic,
		},
		{
			Slug:     "statistics",
			Title:    "Mean, Median, Mode Calculator",
			Category: domain.CategoryMath,
			Summary:  "Descriptive statistics for a list of numbers.",
			Fields: []domain.Field{
				help(areaField("values", "Numbers", "2, 4, 4, 4, 5, 5, 7, 9"),
					"Separate values with commas, spaces or new lines.", "1, 2, 3"),
			},
			Compute: computeStatistics,
		},
		{
			Slug:     "pythagorean",
			Title:    "Pythagorean Theorem Calculator",
			Category: domain.CategoryMath,
			Summary:  "The missing side of a right triangle, with working.",
			Fields: []domain.Field{
				help(optional(numberField("a", "Leg a", "3")), "Leave the unknown side empty.", ""),
				optional(numberField("b", "Leg b", "4")),
				optional(numberField("c", "Hypotenuse c", "")),
			},
			Compute: computePythagoras,
		},
		{
			Slug:     "percentage-change",
			Title:    "Percentage Change Calculator",
			Category: domain.CategoryMath,
			Summary:  "Percentage increase or decrease from one value to another.",
			Fields: []domain.Field{
				numberField("from", "Original value", "50"),
				numberField("to", "New value", "75"),
			},
			Compute: computePercentChange,
		},
		{
			Slug:     "percent-of",
			Title:    "Percent of a Number",
			Category: domain.CategoryMath,
			Summary:  "What is X% of Y?",
			Fields: []domain.Field{
				numberField("percent", "Percent (%)", "15"),
				numberField("whole", "Of", "200"),
			},
			Compute: computePercentOf,
		},
		{
			Slug:     "what-percent",
			Title:    "What Percent Is X of Y",
			Category: domain.CategoryMath,
			Summary:  "Express one number as a percentage of another.",
			Fields: []domain.Field{
				numberField("part", "Part", "30"),
				numberField("whole", "Whole", "120"),
			},
			Compute: computeWhatPercent,
		},
		{
			Slug:     "gcd-lcm",
			Title:    "GCD and LCM Calculator",
			Category: domain.CategoryMath,
			Summary:  "Greatest common divisor and least common multiple of whole numbers.",
			Fields: []domain.Field{
				help(textField("values", "Whole numbers", "12, 18, 24"),
					"Enter two or more integers.", "12, 18"),
			},
			Compute: computeGCDLCM,
		},
		{
			Slug:     "fraction",
			Title:    "Fraction Calculator",
			Category: domain.CategoryMath,
			Summary:  "Add, subtract, multiply and divide fractions and mixed numbers.",
			Fields: []domain.Field{
				help(textField("x", "First fraction", "1/2"), "Fractions such as 3/4 or mixed numbers such as 1 1/2.", "3/4"),
				selectField("op", "Operation", "+", opt("+", "+"), opt("-", "−"), opt("*", "×"), opt("/", "÷")),
				textField("y", "Second fraction", "1/3"),
			},
			Compute: computeFraction,
		},
		{
			Slug:     "scientific-notation",
			Title:    "Scientific Notation Converter",
			Category: domain.CategoryMath,
			Summary:  "Convert between standard and scientific notation.",
			Fields: []domain.Field{
				help(textField("value", "Number", "123000"), "A plain number, or 1.23e5 / 1.23 × 10^5 to expand.", "0.00042"),
				selectField("direction", "Convert", "to",
					opt("to", "Standard → scientific"), opt("from", "Scientific → standard")),
				optional(integerField("sig", "Significant figures", "6")),
			},
			Compute: computeScientific,
		},
	}
}

func computeCubic(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	a, b, c, d := f.Float("a"), f.Float("b"), f.Float("c"), f.Float("d")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	cu, err := algebra.SolveCubic(a, b, c, d)
	if !f.Blame(err, []blame{{algebra.ErrNotCubic, "a"}}) {
		return domain.Result{}, f.Err()
	}

	names := make([]string, 0, 3)
	res := domain.Result{}
	for i, r := range cu.Roots {
		label := fmt.Sprintf("x%s", subscript(i+1))
		names = append(names, fmt.Sprintf("%s = %s", label, r))
		res.Add(label, r.String())
	}
	res.Summary = strings.Join(names, ", ")
	res.Add("Discriminant Δ", coord(cu.Discriminant)).Add("Nature of roots", string(cu.Kind))

	coeffs := []float64{a, b, c, d}
	res.Steps = append(res.Steps, fmt.Sprintf("%sx³ %s %sx² %s %sx %s %s = 0",
		coord(a), sign(b), coord(math.Abs(b)), sign(c), coord(math.Abs(c)), sign(d), coord(math.Abs(d))))
	for i, r := range cu.Roots {
		v := algebra.EvalPoly(coeffs, r)
		res.Steps = append(res.Steps, fmt.Sprintf("f(x%s) = %s", subscript(i+1), algebra.Root{Re: roundTiny(v.Re), Im: roundTiny(v.Im)}))
	}
	return res, nil
}

func computeQuadratic(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	a, b, c := f.Float("a"), f.Float("b"), f.Float("c")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	q, err := algebra.SolveQuadratic(a, b, c)
	if !f.Blame(err, []blame{{algebra.ErrNotQuadratic, "a"}}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("x₁ = %s, x₂ = %s", q.Roots[0], q.Roots[1])}
	res.Add("x₁", q.Roots[0].String()).
		Add("x₂", q.Roots[1].String()).
		Add("Discriminant", coord(q.Discriminant)).
		Add("Vertex", fmt.Sprintf("(%s, %s)", coord(q.Vertex[0]), coord(q.Vertex[1])))
	res.Steps = []string{
		"x = (−b ± √(b² − 4ac)) / 2a",
		fmt.Sprintf("b² − 4ac = %s", coord(q.Discriminant)),
	}
	return res, nil
}

func computeStatistics(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	raw := f.Text("values")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	values, err := algebra.ParseValues(raw)
	if !f.Check("values", err) {
		return domain.Result{}, f.Err()
	}
	s, err := algebra.Describe(values)
	if !f.Check("values", err) {
		return domain.Result{}, f.Err()
	}

	modes := "none"
	if len(s.Modes) > 0 {
		parts := make([]string, len(s.Modes))
		for i, m := range s.Modes {
			parts[i] = num(m)
		}
		modes = strings.Join(parts, ", ")
	}
	res := domain.Result{Summary: fmt.Sprintf("Mean %s, median %s", num(s.Mean), num(s.Median))}
	res.Add("Count", count(s.Count)).
		Add("Sum", num(s.Sum)).
		Add("Mean", num(s.Mean)).
		Add("Median", num(s.Median)).
		Add("Mode", modes).
		Add("Minimum", num(s.Min)).
		Add("Maximum", num(s.Max)).
		Add("Range", num(s.Range)).
		Add("Population variance", num(s.PopVariance)).
		Add("Population standard deviation", num(s.PopStdDev))
	if s.Count > 1 {
		res.Add("Sample variance", num(s.SampleVariance)).
			Add("Sample standard deviation", num(s.SampleStdDev))
	}
	return res, nil
}

func computePythagoras(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	a, b, c := f.OptFloat("a", 0), f.OptFloat("b", 0), f.OptFloat("c", 0)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	t, steps, err := algebra.SolvePythagoras(a, b, c)
	if !f.Blame(err, []blame{{algebra.ErrHypotenuseLeg, "c"}}) {
		return domain.Result{}, f.Err()
	}
	missing := "c"
	value := t.C
	switch {
	case a == 0:
		missing, value = "a", t.A
	case b == 0:
		missing, value = "b", t.B
	}
	res := domain.Result{Summary: fmt.Sprintf("%s = %s", missing, coord(value)), Steps: steps}
	res.Add("Leg a", coord(t.A)).Add("Leg b", coord(t.B)).Add("Hypotenuse c", coord(t.C)).
		Add("Area", coord(t.A*t.B/2))
	return res, nil
}

func computePercentChange(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	from, to := f.Float("from"), f.Float("to")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	ch, err := algebra.PercentChange(from, to)
	if !f.Check("from", err) {
		return domain.Result{}, f.Err()
	}
	summary := fmt.Sprintf("%s %s", pct(ch.Percent), ch.Direction)
	if ch.Direction == algebra.NoChange {
		summary = "No change"
	}
	res := domain.Result{Summary: summary}
	res.Add("Change", num(ch.Delta)).Add("Percentage", pct(ch.Percent)).Add("Direction", string(ch.Direction))
	return res, nil
}

func computePercentOf(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	p, whole := f.Float("percent"), f.Float("whole")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	v := algebra.PercentOf(p, whole)
	res := domain.Result{Summary: fmt.Sprintf("%s%% of %s is %s", num(p), num(whole), num(v))}
	res.Add("Result", num(v))
	return res, nil
}

func computeWhatPercent(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	part, whole := f.Float("part"), f.Float("whole")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	v, err := algebra.WhatPercent(part, whole)
	if !f.Check("whole", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s is %s of %s", num(part), pct(v), num(whole))}
	res.Add("Percentage", pct(v))
	return res, nil
}

func computeGCDLCM(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	raw := f.Text("values")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	var values []*big.Int
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' || r == ' ' || r == '\n' }) {
		n, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			f.fail("values", fmt.Errorf("%q %w", tok, errNotAnInt))
			return domain.Result{}, f.Err()
		}
		values = append(values, n)
	}
	gcd, lcm, err := algebra.GCDLCM(values)
	if !f.Check("values", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("GCD %s, LCM %s", gcd, lcm)}
	res.Add("Greatest common divisor", gcd.String()).Add("Least common multiple", lcm.String())
	return res, nil
}

func computeFraction(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	xs, op, ys := f.Text("x"), f.Text("op"), f.Text("y")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	x, err := algebra.ParseFraction(xs)
	if !f.Check("x", err) {
		return domain.Result{}, f.Err()
	}
	y, err := algebra.ParseFraction(ys)
	if !f.Check("y", err) {
		return domain.Result{}, f.Err()
	}
	z, err := algebra.FractionOp(x, op, y)
	if !f.Blame(err, []blame{{algebra.ErrZeroDenominator, "y"}, {algebra.ErrUnknownOperator, "op"}}) {
		return domain.Result{}, f.Err()
	}
	dec, _ := z.Float64()
	res := domain.Result{Summary: fmt.Sprintf("%s %s %s = %s", xs, op, ys, z.RatString())}
	res.Add("Fraction", z.RatString()).Add("Mixed number", algebra.MixedNumber(z)).Add("Decimal", num(dec))
	return res, nil
}

func computeScientific(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	raw := f.Text("value")
	dir := f.Choice("direction", []domain.Option{opt("to", ""), opt("from", "")})
	sig := f.OptInt("sig", 6)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	v, plain, err := convert.FromScientific(raw)
	if !f.Check("value", err) {
		return domain.Result{}, f.Err()
	}
	if dir == "from" {
		res := domain.Result{Summary: plain}
		res.Add("Standard notation", plain).Add("With separators", num(v))
		return res, nil
	}
	s, err := convert.ToScientific(v, sig)
	if !f.Check("sig", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: s.String()}
	res.Add("Scientific notation", s.String()).Add("E notation", s.E()).
		Add("Coefficient", coord(s.Coefficient)).Add("Exponent", fmt.Sprint(s.Exponent))
	return res, nil
}

func subscript(n int) string {
	return string(rune('₀' + n))
}

func sign(x float64) string {
	if x < 0 {
		return "−"
	}
	return "+"
}

// roundTiny snaps residuals below the display precision to zero.
func roundTiny(x float64) float64 {
	if math.Abs(x) < 5e-7 {
		return 0
	}
	return x
}
