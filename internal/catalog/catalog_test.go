package catalog_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"calckit/internal/catalog"
	"calckit/internal/domain"
)

func run(t *testing.T, slug string, in domain.Inputs) (domain.Result, error) {
	t.Helper()
	c, ok := catalog.Default().Lookup(domain.Slug(slug))
	if !ok {
		t.Fatalf("calculator %q is not registered", slug)
	}
	return catalog.Run(c, in)
}

func mustRun(t *testing.T, slug string, in domain.Inputs) domain.Result {
	t.Helper()
	res, err := run(t, slug, in)
	if err != nil {
		t.Fatalf("%s: %v", slug, err)
	}
	return res
}

func value(res domain.Result, label string) string {
	for _, v := range res.Values {
		if v.Label == label {
			return v.Value
		}
	}
	return ""
}

func wantField(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("wanted: *domain.ValidationError\ngot: %v", err)
	}
	if ve.Field != field {
		t.Fatalf("wanted field: %q\ngot: %q (%v)", field, ve.Field, err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := catalog.Default()

	t.Run("should register calculators in every category", func(t *testing.T) {
		if reg.Len() < 50 {
			t.Fatalf("wanted: at least 50 calculators\ngot: %d", reg.Len())
		}
		for _, cat := range domain.Categories {
			if len(reg.ByCategory(cat)) == 0 {
				t.Fatalf("category %q has no calculators", cat)
			}
		}
	})

	t.Run("should compute every calculator from its defaults", func(t *testing.T) {
		for _, c := range reg.All() {
			in := domain.Inputs{}
			for _, f := range c.Fields {
				if f.Kind == domain.KindDate && f.Default == "" {
					in[f.Name] = "2026-03-01"
				}
			}
			if _, ok := c.Field("on"); ok {
				in["on"] = "2026-10-19"
			}
			if _, err := catalog.Run(c, in); err != nil {
				t.Fatalf("%s: %v", c.Slug, err)
			}
		}
	})

	t.Run("should list defaults that are valid options", func(t *testing.T) {
		for _, c := range reg.All() {
			for _, f := range c.Fields {
				if f.Kind != domain.KindSelect {
					continue
				}
				found := false
				for _, o := range f.Options {
					found = found || o.Value == f.Default
				}
				if !found {
					t.Fatalf("%s.%s: default %q is not an option", c.Slug, f.Name, f.Default)
				}
			}
		}
	})

	t.Run("should order All by category then title", func(t *testing.T) {
		all := reg.All()
		if all[0].Category != domain.CategoryFinance {
			t.Fatalf("wanted: finance first\ngot: %s", all[0].Category)
		}
		for _, cs := range [][]domain.Calculator{reg.ByCategory(domain.CategoryGeometry)} {
			for i := 1; i < len(cs); i++ {
				if cs[i-1].Title > cs[i].Title {
					t.Fatalf("%q sorts after %q", cs[i-1].Title, cs[i].Title)
				}
			}
		}
	})
}

func TestNewRegistry(t *testing.T) {
	compute := func(domain.Inputs) (domain.Result, error) { return domain.Result{}, nil }
	ok := domain.Calculator{Slug: "x", Category: domain.CategoryMath, Compute: compute}

	cases := map[string][]domain.Calculator{
		"duplicate slug":   {ok, ok},
		"bad slug":         {{Slug: "Not Safe", Category: domain.CategoryMath, Compute: compute}},
		"unknown category": {{Slug: "y", Category: "astrology", Compute: compute}},
		"missing compute":  {{Slug: "z", Category: domain.CategoryMath}},
		"duplicate field": {{Slug: "w", Category: domain.CategoryMath, Compute: compute,
			Fields: []domain.Field{{Name: "a"}, {Name: "a"}}}},
	}
	for name, calcs := range cases {
		if _, err := catalog.New(calcs...); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}

	reg, err := catalog.New(ok)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, found := reg.Lookup("x"); !found {
		t.Fatalf("wanted: x to be registered")
	}
	if _, found := reg.Lookup("nope"); found {
		t.Fatalf("wanted: nope to be missing")
	}
}

func TestFinanceCalculators(t *testing.T) {
	t.Run("should build the amortization schedule", func(t *testing.T) {
		res := mustRun(t, "amortization", domain.Inputs{"principal": "250,000", "rate": "6.5", "years": "30"})
		if res.Summary != "Monthly payment: $1,580.17" {
			t.Fatalf("wanted: Monthly payment: $1,580.17\ngot: %s", res.Summary)
		}
		if res.Table == nil || len(res.Table.Rows) != 360 {
			t.Fatalf("wanted: 360 rows")
		}
		last := res.Table.Rows[len(res.Table.Rows)-1]
		if last[4] != "$0.00" {
			t.Fatalf("wanted: closing balance $0.00\ngot: %s", last[4])
		}
	})

	t.Run("should blame the field that failed to parse", func(t *testing.T) {
		_, err := run(t, "amortization", domain.Inputs{"principal": "lots"})
		wantField(t, err, "principal")
	})

	t.Run("should blame the payment when the debt never shrinks", func(t *testing.T) {
		_, err := run(t, "debt-payoff", domain.Inputs{"balance": "5000", "rate": "19.99", "payment": "50"})
		wantField(t, err, "payment")
	})

	t.Run("should report a goal that is already met", func(t *testing.T) {
		res := mustRun(t, "savings-goal", domain.Inputs{"goal": "1000", "initial": "1500", "monthly": "0", "rate": "0"})
		if res.Summary != "Goal already reached." {
			t.Fatalf("wanted: Goal already reached.\ngot: %s", res.Summary)
		}
	})

	t.Run("should split the tip", func(t *testing.T) {
		res := mustRun(t, "tip", domain.Inputs{"bill": "100", "percent": "20", "people": "4"})
		if got := value(res, "Per person"); got != "$30.00" {
			t.Fatalf("wanted: $30.00\ngot: %s", got)
		}
	})
}

func TestMathCalculators(t *testing.T) {
	res := mustRun(t, "cubic-equation", domain.Inputs{"a": "1", "b": "-6", "c": "11", "d": "-6"})
	if res.Summary != "x₁ = 1, x₂ = 2, x₃ = 3" {
		t.Fatalf("wanted: x₁ = 1, x₂ = 2, x₃ = 3\ngot: %s", res.Summary)
	}
	if _, err := run(t, "cubic-equation", domain.Inputs{"a": "0"}); err == nil {
		t.Fatalf("expected an error for a = 0")
	} else {
		wantField(t, err, "a")
	}

	up := mustRun(t, "percentage-change", domain.Inputs{"from": "50", "to": "75"})
	if up.Summary != "50% increase" {
		t.Fatalf("wanted: 50%% increase\ngot: %s", up.Summary)
	}
	down := mustRun(t, "percentage-change", domain.Inputs{"from": "75", "to": "50"})
	if down.Summary != "33.33% decrease" {
		t.Fatalf("wanted: 33.33%% decrease\ngot: %s", down.Summary)
	}

	stats := mustRun(t, "statistics", domain.Inputs{"values": "2, 4, 4, 4, 5, 5, 7, 9"})
	if stats.Summary != "Mean 5, median 4.5" || value(stats, "Mode") != "4" {
		t.Fatalf("unexpected statistics: %+v", stats)
	}

	frac := mustRun(t, "fraction", domain.Inputs{"x": "1 1/2", "op": "+", "y": "3/4"})
	if value(frac, "Mixed number") != "2 1/4" {
		t.Fatalf("wanted: 2 1/4\ngot: %s", value(frac, "Mixed number"))
	}

	_, err := run(t, "fraction", domain.Inputs{"x": "1/2", "op": "/", "y": "0"})
	wantField(t, err, "y")
}

func TestOverflowingResults(t *testing.T) {
	cases := []struct {
		slug  string
		in    domain.Inputs
		field string
	}{
		{"quadratic-equation", domain.Inputs{"a": "1e308", "b": "1e308", "c": "1e308"}, ""},
		{"circle", domain.Inputs{"radius": "1e308"}, ""},
		{"length-converter", domain.Inputs{"value": "1e308", "from": "km", "to": "mi"}, "value"},
		{"percent-of", domain.Inputs{"percent": "1e308", "whole": "1e308"}, ""},
	}
	for _, c := range cases {
		t.Run("should reject an infinite result from "+c.slug, func(t *testing.T) {
			res, err := run(t, c.slug, c.in)
			if err == nil {
				t.Fatalf("wanted: validation error\ngot: %+v", res)
			}
			wantField(t, err, c.field)
		})
	}

	t.Run("should still render large finite results", func(t *testing.T) {
		res := mustRun(t, "circle", domain.Inputs{"radius": "1e150"})
		if strings.Contains(value(res, "Area"), "Inf") || value(res, "Area") == "" {
			t.Fatalf("wanted: a finite area\ngot: %q", value(res, "Area"))
		}
	})
}

func TestGeometryCalculators(t *testing.T) {
	res := mustRun(t, "triangle", domain.Inputs{"a": "3", "b": "4", "c": "5"})
	if value(res, "Area") != "6" || value(res, "Angle C") != "90.00°" {
		t.Fatalf("unexpected triangle: %+v", res.Values)
	}
	if _, err := run(t, "triangle", domain.Inputs{"a": "1", "b": "1", "c": "5"}); !domain.IsValidation(err) {
		t.Fatalf("wanted: validation error\ngot: %v", err)
	}
	_, err := run(t, "trapezoid", domain.Inputs{"base1": "10", "base2": "6", "height": "4", "leg1": "5"})
	wantField(t, err, "leg2")
}

func TestDateAndHealthCalculators(t *testing.T) {
	age := mustRun(t, "age", domain.Inputs{"birth": "1990-05-15", "on": "2026-10-19"})
	if age.Summary != "36 years, 5 months, 4 days" {
		t.Fatalf("wanted: 36 years, 5 months, 4 days\ngot: %s", age.Summary)
	}
	_, err := run(t, "age", domain.Inputs{"birth": "2030-01-01", "on": "2026-10-19"})
	wantField(t, err, "birth")

	_, err = run(t, "date-add", domain.Inputs{"date": "2026-01-31", "amount": "1", "unit": "fortnights"})
	wantField(t, err, "unit")

	bmi := mustRun(t, "bmi", domain.Inputs{"units": "metric", "weight": "70", "height": "175"})
	if value(bmi, "BMI") != "22.9" || value(bmi, "Category") != "Normal weight" {
		t.Fatalf("unexpected BMI: %+v", bmi.Values)
	}

	_, err = run(t, "body-fat", domain.Inputs{"sex": "female", "height": "165", "neck": "32", "waist": "70"})
	wantField(t, err, "hip")
}

func TestConversionAndDeveloperCalculators(t *testing.T) {
	km := mustRun(t, "length-converter", domain.Inputs{"value": "10", "from": "km", "to": "mi"})
	if km.Summary != "10 km = 6.213712 mi" {
		t.Fatalf("wanted: 10 km = 6.213712 mi\ngot: %s", km.Summary)
	}
	_, err := run(t, "temperature-converter", domain.Inputs{"value": "1", "from": "X", "to": "C"})
	wantField(t, err, "from")

	roman := mustRun(t, "roman-numerals", domain.Inputs{"value": "1994"})
	if roman.Summary != "1994 = MCMXCIV" {
		t.Fatalf("wanted: 1994 = MCMXCIV\ngot: %s", roman.Summary)
	}
	_, err = run(t, "roman-numerals", domain.Inputs{"value": "4000"})
	wantField(t, err, "value")

	hex := mustRun(t, "hex-calculator", domain.Inputs{"x": "A", "op": "+", "y": "B"})
	if value(hex, "Hexadecimal") != "15" || value(hex, "Decimal") != "21" {
		t.Fatalf("unexpected hex result: %+v", hex.Values)
	}

	png := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	bin := mustRun(t, "base64-decode", domain.Inputs{"data": png, "alphabet": "standard"})
	if bin.Summary != "Binary data: image/png" {
		t.Fatalf("wanted: Binary data: image/png\ngot: %s", bin.Summary)
	}

	color := mustRun(t, "color-converter", domain.Inputs{"color": "rgb(30, 144, 255)"})
	if value(color, "HEX") != "#1E90FF" {
		t.Fatalf("wanted: #1E90FF\ngot: %s", value(color, "HEX"))
	}

	mm := mustRun(t, "molar-mass", domain.Inputs{"formula": "C6H12O6"})
	if !strings.HasPrefix(mm.Summary, "C6H12O6: 180.156") {
		t.Fatalf("unexpected molar mass: %s", mm.Summary)
	}
}
