package algebra

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrNoData is returned when a statistic is requested over an empty list.
var ErrNoData = errors.New("enter at least one number")

// Summary holds descriptive statistics for a list of numbers.
type Summary struct {
	Count          int       `json:"count"`
	Sum            float64   `json:"sum"`
	Mean           float64   `json:"mean"`
	Median         float64   `json:"median"`
	Modes          []float64 `json:"modes"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	Range          float64   `json:"range"`
	PopVariance    float64   `json:"population_variance"`
	PopStdDev      float64   `json:"population_stddev"`
	SampleVariance float64   `json:"sample_variance"`
	SampleStdDev   float64   `json:"sample_stddev"`
}

// ParseValues splits s on commas, semicolons and whitespace and parses each
// token as a float.
func ParseValues(s string) ([]float64, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q is not a number", tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// Describe computes mean, median, mode and spread of values. Modes is empty
// when no value repeats. Sample statistics need at least two values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{Count: len(sorted), Min: sorted[0], Max: sorted[len(sorted)-1]}
	s.Range = s.Max - s.Min
	for _, v := range sorted {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(s.Count)

	mid := s.Count / 2
	if s.Count%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	s.Modes = modes(sorted)

	var ss float64
	for _, v := range sorted {
		ss += (v - s.Mean) * (v - s.Mean)
	}
	s.PopVariance = ss / float64(s.Count)
	s.PopStdDev = math.Sqrt(s.PopVariance)
	if s.Count > 1 {
		s.SampleVariance = ss / float64(s.Count-1)
		s.SampleStdDev = math.Sqrt(s.SampleVariance)
	}
	return s, nil
}

// modes expects sorted input.
func modes(sorted []float64) []float64 {
	best := 1
	var out []float64
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		switch n := j - i; {
		case n > best:
			best = n
			out = []float64{sorted[i]}
		case n == best && best > 1:
			out = append(out, sorted[i])
		}
		i = j
	}
	return out
}
