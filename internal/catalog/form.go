package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"calckit/internal/calc/datetime"
	"calckit/internal/domain"
)

var (
	errRequired = errors.New("value is required")
	errNotANum  = errors.New("must be a number")
	errNotAnInt = errors.New("must be a whole number")
	errPositive = errors.New("must be greater than zero")
	errChoice   = errors.New("is not one of the listed options")
	errOverflow = errors.New("result is too large to represent")
)

// form reads typed values out of raw inputs. Only the first failure is kept,
// so compute functions read all their fields and check Err once.
type form struct {
	in  domain.Inputs
	err error
}

func read(in domain.Inputs) *form { return &form{in: in} }

// Err returns the first validation failure.
func (f *form) Err() error { return f.err }

func (f *form) fail(field string, err error) {
	if f.err == nil {
		f.err = domain.Invalid(field, err)
	}
}

// Has reports whether field carries a non-blank value.
func (f *form) Has(field string) bool { return f.in.Get(field) != "" }

// Text returns the trimmed value of a required text field.
func (f *form) Text(field string) string {
	v := f.in.Get(field)
	if v == "" {
		f.fail(field, errRequired)
	}
	return v
}

// Raw returns the untrimmed value, for fields where whitespace matters.
func (f *form) Raw(field string) string {
	v := f.in[field]
	if strings.TrimSpace(v) == "" {
		f.fail(field, errRequired)
	}
	return v
}

// Float parses a required number. Thousands separators, a leading currency
// sign and a trailing percent sign are tolerated.
func (f *form) Float(field string) float64 {
	raw := f.in.Get(field)
	if raw == "" {
		f.fail(field, errRequired)
		return 0
	}
	v, err := parseNumber(raw)
	if err != nil {
		f.fail(field, err)
		return 0
	}
	return v
}

// OptFloat parses an optional number, returning def when blank.
func (f *form) OptFloat(field string, def float64) float64 {
	if !f.Has(field) {
		return def
	}
	return f.Float(field)
}

// Positive parses a required number > 0.
func (f *form) Positive(field string) float64 {
	v := f.Float(field)
	if v <= 0 {
		f.fail(field, errPositive)
	}
	return v
}

// Int parses a required whole number.
func (f *form) Int(field string) int {
	raw := strings.ReplaceAll(f.in.Get(field), ",", "")
	if raw == "" {
		f.fail(field, errRequired)
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		f.fail(field, errNotAnInt)
		return 0
	}
	return v
}

// OptInt parses an optional whole number, returning def when blank.
func (f *form) OptInt(field string, def int) int {
	if !f.Has(field) {
		return def
	}
	return f.Int(field)
}

// Date parses a required YYYY-MM-DD date.
func (f *form) Date(field string) time.Time {
	raw := f.in.Get(field)
	if raw == "" {
		f.fail(field, errRequired)
		return time.Time{}
	}
	t, err := datetime.Parse(raw)
	if err != nil {
		f.fail(field, err)
	}
	return t
}

// DateOr parses an optional date, returning def when blank.
func (f *form) DateOr(field string, def time.Time) time.Time {
	if !f.Has(field) {
		return datetime.Day(def)
	}
	return f.Date(field)
}

// Choice returns the value of a select field after checking it against
// the allowed options.
func (f *form) Choice(field string, options []domain.Option) string {
	v := f.Text(field)
	if v == "" {
		return ""
	}
	for _, o := range options {
		if strings.EqualFold(o.Value, v) {
			return o.Value
		}
	}
	f.fail(field, fmt.Errorf("%q %w", v, errChoice))
	return ""
}

// Check attributes a kernel error to field. It returns true when err is nil.
func (f *form) Check(field string, err error) bool {
	if err == nil {
		return true
	}
	f.fail(field, err)
	return false
}

func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q %w", raw, errNotANum)
	}
	return v, nil
}

// blame ties a kernel sentinel to the field it implicates.
type blame struct {
	err   error
	field string
}

// Blame attributes err to the field of the first listed sentinel it matches,
// or to the calculator as a whole when none matches. It returns true when err
// is nil.
func (f *form) Blame(err error, fields []blame) bool {
	if err == nil {
		return true
	}
	for _, b := range fields {
		if errors.Is(err, b.err) {
			f.fail(b.field, err)
			return false
		}
	}
	f.fail("", err)
	return false
}
