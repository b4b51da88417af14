package types

import (
	"sort"
	"strings"
)

// FieldKind selects the form control used to render a field.
type FieldKind string

const (
	KindNumber   FieldKind = "number"
	KindInteger  FieldKind = "integer"
	KindText     FieldKind = "text"
	KindTextArea FieldKind = "textarea"
	KindDate     FieldKind = "date"
	KindSelect   FieldKind = "select"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one form input of a calculator.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Default     string    `json:"default,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Required    bool      `json:"required,omitempty"`
}

// Inputs holds raw form values keyed by field name, exactly as submitted.
type Inputs map[string]string

// Get returns the trimmed value for name, or "" when absent.
func (in Inputs) Get(name string) string {
	return strings.TrimSpace(in[name])
}

// Normalized returns a canonical "k=v&k=v" rendering with sorted keys and
// trimmed values. Empty values are dropped.
func (in Inputs) Normalized() string {
	keys := make([]string, 0, len(in))
	for k, v := range in {
		if strings.TrimSpace(v) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.TrimSpace(in[k]))
	}
	return b.String()
}

// WithDefaults returns a copy of in where every missing or blank field is
// filled with the field default.
func (in Inputs) WithDefaults(fields []Field) Inputs {
	out := make(Inputs, len(fields))
	for k, v := range in {
		out[k] = v
	}
	for _, f := range fields {
		if strings.TrimSpace(out[f.Name]) == "" && f.Default != "" {
			out[f.Name] = f.Default
		}
	}
	return out
}

// ComputeFunc maps one input snapshot to one result snapshot.
type ComputeFunc func(in Inputs) (Result, error)

// Calculator is the schema and kernel binding of a single calculator page.
type Calculator struct {
	Slug     Slug        `json:"slug"`
	Title    string      `json:"title"`
	Category Category    `json:"category"`
	Summary  string      `json:"summary"`
	Fields   []Field     `json:"fields"`
	Compute  ComputeFunc `json:"-"`
}

// Field returns the named field.
func (c Calculator) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
