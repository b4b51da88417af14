package catalog

import (
	"errors"
	"fmt"
	"strings"

	"calckit/internal/domain"
)

func numberField(name, label, def string) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindNumber, Default: def, Required: true}
}

func integerField(name, label, def string) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindInteger, Default: def, Required: true}
}

func textField(name, label, def string) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindText, Default: def, Required: true}
}

func areaField(name, label, def string) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindTextArea, Default: def, Required: true}
}

func dateField(name, label, def string) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindDate, Default: def, Required: true}
}

func selectField(name, label, def string, options ...domain.Option) domain.Field {
	return domain.Field{Name: name, Label: label, Kind: domain.KindSelect, Default: def, Options: options, Required: true}
}

func opt(value, label string) domain.Option {
	return domain.Option{Value: value, Label: label}
}

// optional clears the required flag.
func optional(f domain.Field) domain.Field {
	f.Required = false
	return f
}

// help attaches help text and a placeholder.
func help(f domain.Field, text, placeholder string) domain.Field {
	f.Help = text
	f.Placeholder = placeholder
	return f
}

// Run applies field defaults and computes c. Every failure is returned as a
// *domain.ValidationError.
func Run(c domain.Calculator, in domain.Inputs) (domain.Result, error) {
	if c.Compute == nil {
		return domain.Result{}, fmt.Errorf("calculator %q has no compute function", c.Slug)
	}
	res, err := c.Compute(in.WithDefaults(c.Fields))
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			err = domain.Invalid("", err)
		}
		return domain.Result{}, err
	}
	if overflowed(res) {
		return domain.Result{}, domain.Invalid("", errOverflow)
	}
	return res, nil
}

// overflowed reports whether any rendered number in res was infinite or NaN.
func overflowed(res domain.Result) bool {
	texts := append([]string{res.Summary}, res.Steps...)
	for _, v := range res.Values {
		texts = append(texts, v.Value)
	}
	if res.Table != nil {
		for _, row := range res.Table.Rows {
			texts = append(texts, row...)
		}
	}
	for _, s := range texts {
		if strings.Contains(s, overflow) {
			return true
		}
	}
	return false
}
