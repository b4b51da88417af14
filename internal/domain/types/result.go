package types

import (
	"errors"
	"fmt"
)

// Value is one labelled line of a result panel.
type Value struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Table is a tabular result such as an amortization schedule.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Result is the rendered outcome of one computation.
type Result struct {
	Summary string   `json:"summary" yaml:"summary"`
	Values  []Value  `json:"values,omitempty" yaml:"values,omitempty"`
	Table   *Table   `json:"table,omitempty" yaml:"table,omitempty"`
	Steps   []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Notes   []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Add appends a labelled value and returns r for chaining.
func (r *Result) Add(label, value string) *Result {
	r.Values = append(r.Values, Value{Label: label, Value: value})
	return r
}

// ValidationError reports an input that failed validation. Field is empty
// when the failure is not attributable to a single input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid wraps err as a ValidationError for field.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
