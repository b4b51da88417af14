package algebra_test

import (
	"errors"
	"math"
	"testing"

	"calckit/internal/calc/algebra"
)

func TestSolveCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		kind       algebra.RootKind
		real       int
	}{
		{"three distinct real roots", 1, -6, 11, -6, algebra.ThreeDistinctReal, 3},
		{"one real and a complex pair", 1, 0, 0, -1, algebra.OneRealTwoComplex, 1},
		{"double root", 1, 0, -3, 2, algebra.RepeatedRealRoots, 3},
		{"triple root", 1, -3, 3, -1, algebra.RepeatedRealRoots, 3},
		{"scaled leading coefficient", 2, -4, -22, 24, algebra.ThreeDistinctReal, 3},
		{"complex pair with offset", 1, 1, 1, 1, algebra.OneRealTwoComplex, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := algebra.SolveCubic(tt.a, tt.b, tt.c, tt.d)
			if err != nil {
				t.Fatalf("wanted: nil\ngot: %v", err)
			}
			if got.Kind != tt.kind {
				t.Fatalf("wanted: %q\ngot: %q", tt.kind, got.Kind)
			}
			realCount := 0
			for _, r := range got.Roots {
				if r.IsReal() {
					realCount++
				}
				v := algebra.EvalPoly([]float64{tt.a, tt.b, tt.c, tt.d}, r)
				if math.Hypot(v.Re, v.Im) > 1e-3 {
					t.Fatalf("root %s does not satisfy the polynomial: residual %v", r, v)
				}
			}
			if realCount != tt.real {
				t.Fatalf("wanted: %d real roots\ngot: %d (%v)", tt.real, realCount, got.Roots)
			}
		})
	}

	t.Run("should return the roots 1, 2 and 3 in order", func(t *testing.T) {
		got, _ := algebra.SolveCubic(1, -6, 11, -6)
		for i, want := range []float64{1, 2, 3} {
			if math.Abs(got.Roots[i].Re-want) > 1e-9 {
				t.Fatalf("root %d: wanted %v\ngot: %v", i, want, got.Roots[i])
			}
		}
	})

	t.Run("should format complex roots as conjugates", func(t *testing.T) {
		got, _ := algebra.SolveCubic(1, 0, 0, -1)
		if s := got.Roots[1].String(); s != "-0.5 + 0.866025i" {
			t.Fatalf("wanted: %q\ngot: %q", "-0.5 + 0.866025i", s)
		}
		if s := got.Roots[2].String(); s != "-0.5 - 0.866025i" {
			t.Fatalf("wanted: %q\ngot: %q", "-0.5 - 0.866025i", s)
		}
	})

	t.Run("should reject a zero leading coefficient", func(t *testing.T) {
		if _, err := algebra.SolveCubic(0, 1, 2, 3); !errors.Is(err, algebra.ErrNotCubic) {
			t.Fatalf("wanted: ErrNotCubic\ngot: %v", err)
		}
	})
}

func TestSolveQuadratic(t *testing.T) {
	q, err := algebra.SolveQuadratic(1, -3, 2)
	if err != nil {
		t.Fatalf("SolveQuadratic: %v", err)
	}
	if q.Roots[0].Re != 1 || q.Roots[1].Re != 2 {
		t.Fatalf("wanted: 1, 2\ngot: %v", q.Roots)
	}

	c, _ := algebra.SolveQuadratic(1, 2, 5)
	if c.Roots[0].String() != "-1 + 2i" || c.Roots[1].String() != "-1 - 2i" {
		t.Fatalf("wanted: -1 ± 2i\ngot: %v", c.Roots)
	}

	d, _ := algebra.SolveQuadratic(1, -4, 4)
	if d.Roots[0].Re != 2 || d.Roots[1].Re != 2 || d.Discriminant != 0 {
		t.Fatalf("wanted: double root 2\ngot: %+v", d)
	}

	t.Run("should reject coefficients whose discriminant overflows", func(t *testing.T) {
		if _, err := algebra.SolveQuadratic(1e308, 1e308, 1e308); !errors.Is(err, algebra.ErrOverflow) {
			t.Fatalf("wanted: %v\ngot: %v", algebra.ErrOverflow, err)
		}
	})
}

func TestSolveCubicOverflow(t *testing.T) {
	if _, err := algebra.SolveCubic(1, 1e200, 1, 1); !errors.Is(err, algebra.ErrOverflow) {
		t.Fatalf("wanted: %v\ngot: %v", algebra.ErrOverflow, err)
	}
}
