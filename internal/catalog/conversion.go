package catalog

import (
	"fmt"
	"strconv"

	"calckit/internal/calc/convert"
	"calckit/internal/domain"
)

type unitConverter struct {
	quantity convert.Quantity
	slug     domain.Slug
	title    string
	value    string
	from, to string
}

var unitConverters = []unitConverter{
	{convert.Length, "length-converter", "Length Converter", "10", "km", "mi"},
	{convert.Mass, "weight-converter", "Weight Converter", "70", "kg", "lb"},
	{convert.Temperature, "temperature-converter", "Temperature Converter", "100", "C", "F"},
	{convert.Volume, "volume-converter", "Volume Converter", "1", "gal", "l"},
	{convert.DataSize, "data-size-converter", "Data Size Converter", "1", "GiB", "MB"},
	{convert.Speed, "speed-converter", "Speed Converter", "100", "km/h", "mph"},
}

func conversionCalculators() []domain.Calculator {
	var out []domain.Calculator
	for _, u := range unitConverters {
		options := unitOptionsFor(u.quantity)
		out = append(out, domain.Calculator{
			Slug:     u.slug,
			Title:    u.title,
			Category: domain.CategoryConversion,
			Summary:  fmt.Sprintf("Convert %s between common metric and imperial units.", u.quantity),
			Fields: []domain.Field{
				numberField("value", "Value", u.value),
				selectField("from", "From", u.from, options...),
				selectField("to", "To", u.to, options...),
			},
			Compute: unitCompute(u.quantity, options),
		})
	}
	out = append(out, domain.Calculator{
		Slug:     "roman-numerals",
		Title:    "Roman Numeral Converter",
		Category: domain.CategoryConversion,
		Summary:  "Convert between integers (1–3999) and Roman numerals.",
		Fields: []domain.Field{
			help(textField("value", "Number or numeral", "2026"), "Enter 1994 or MCMXCIV.", "MCMXCIV"),
		},
		Compute: computeRoman,
	})
	return out
}

func unitOptionsFor(q convert.Quantity) []domain.Option {
	units, _ := convert.Units(q)
	options := make([]domain.Option, 0, len(units))
	for _, u := range units {
		options = append(options, opt(u.Symbol, fmt.Sprintf("%s (%s)", u.Name, u.Symbol)))
	}
	return options
}

func unitCompute(q convert.Quantity, options []domain.Option) domain.ComputeFunc {
	return func(in domain.Inputs) (domain.Result, error) {
		f := read(in)
		v := f.Float("value")
		from := f.Choice("from", options)
		to := f.Choice("to", options)
		if err := f.Err(); err != nil {
			return domain.Result{}, err
		}
		out, err := convert.ConvertUnit(q, v, from, to)
		if !f.Check("value", err) {
			return domain.Result{}, f.Err()
		}
		res := domain.Result{Summary: fmt.Sprintf("%s %s = %s %s", num(v), from, num(out), to)}
		res.Add("Result", num(out)+" "+to)
		for _, o := range options {
			if o.Value == from || o.Value == to {
				continue
			}
			if alt, err := convert.ConvertUnit(q, v, from, o.Value); err == nil {
				res.Add(o.Label, num(alt))
			}
		}
		return res, nil
	}
}

func computeRoman(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	raw := f.Text("value")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	if n, err := strconv.Atoi(raw); err == nil {
		s, err := convert.ToRoman(n)
		if !f.Check("value", err) {
			return domain.Result{}, f.Err()
		}
		res := domain.Result{Summary: fmt.Sprintf("%d = %s", n, s)}
		res.Add("Roman numeral", s)
		return res, nil
	}
	n, err := convert.FromRoman(raw)
	if !f.Check("value", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s = %d", raw, n)}
	res.Add("Integer", strconv.Itoa(n))
	return res, nil
}
