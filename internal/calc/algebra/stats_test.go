package algebra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"calckit/internal/calc/algebra"
)

func TestDescribe(t *testing.T) {
	t.Run("should summarise a list", func(t *testing.T) {
		values, err := algebra.ParseValues("2, 4, 4, 4, 5, 5, 7, 9")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		s, err := algebra.Describe(values)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if s.Mean != 5 || s.Median != 4.5 || s.PopStdDev != 2 {
			t.Fatalf("wanted: mean 5, median 4.5, stddev 2\ngot: %+v", s)
		}
		if !reflect.DeepEqual(s.Modes, []float64{4}) {
			t.Fatalf("wanted: [4]\ngot: %v", s.Modes)
		}
		if math.Abs(s.SampleStdDev-2.13809) > 1e-5 {
			t.Fatalf("wanted: sample stddev 2.13809\ngot: %f", s.SampleStdDev)
		}
		if s.Range != 7 || s.Count != 8 || s.Sum != 40 {
			t.Fatalf("unexpected range/count/sum: %+v", s)
		}
	})

	t.Run("should report no mode when every value is unique", func(t *testing.T) {
		s, _ := algebra.Describe([]float64{3, 1, 2})
		if len(s.Modes) != 0 || s.Median != 2 {
			t.Fatalf("wanted: no modes, median 2\ngot: %+v", s)
		}
	})

	t.Run("should report several modes", func(t *testing.T) {
		s, _ := algebra.Describe([]float64{1, 1, 2, 2, 3})
		if !reflect.DeepEqual(s.Modes, []float64{1, 2}) {
			t.Fatalf("wanted: [1 2]\ngot: %v", s.Modes)
		}
	})

	t.Run("should reject an empty list", func(t *testing.T) {
		if _, err := algebra.Describe(nil); !errors.Is(err, algebra.ErrNoData) {
			t.Fatalf("wanted: ErrNoData\ngot: %v", err)
		}
	})

	t.Run("should reject non-numeric tokens", func(t *testing.T) {
		if _, err := algebra.ParseValues("1, two, 3"); err == nil {
			t.Fatal("wanted: error for 'two'")
		}
	})
}

func TestSolvePythagoras(t *testing.T) {
	t.Run("should solve the hypotenuse", func(t *testing.T) {
		tri, steps, err := algebra.SolvePythagoras(3, 4, 0)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if tri.C != 5 {
			t.Fatalf("wanted: 5\ngot: %f", tri.C)
		}
		if steps[len(steps)-1] != "c = √25 = 5" {
			t.Fatalf("wanted: final step %q\ngot: %q", "c = √25 = 5", steps[len(steps)-1])
		}
	})

	t.Run("should solve a leg", func(t *testing.T) {
		tri, _, err := algebra.SolvePythagoras(0, 12, 13)
		if err != nil || tri.A != 5 {
			t.Fatalf("wanted: a = 5\ngot: %+v, %v", tri, err)
		}
	})

	t.Run("should reject a hypotenuse shorter than a leg", func(t *testing.T) {
		if _, _, err := algebra.SolvePythagoras(0, 12, 5); !errors.Is(err, algebra.ErrHypotenuseLeg) {
			t.Fatalf("wanted: ErrHypotenuseLeg\ngot: %v", err)
		}
	})

	t.Run("should require exactly one unknown", func(t *testing.T) {
		if _, _, err := algebra.SolvePythagoras(3, 4, 5); !errors.Is(err, algebra.ErrOneUnknown) {
			t.Fatalf("wanted: ErrOneUnknown\ngot: %v", err)
		}
	})
}
