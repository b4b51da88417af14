package geometry_test

import (
	"errors"
	"math"
	"testing"

	"calckit/internal/calc/geometry"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSolveTriangle(t *testing.T) {
	t.Run("should solve a 3-4-5 right triangle", func(t *testing.T) {
		tri, err := geometry.SolveTriangle(3, 4, 5)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if tri.Area != 6 || tri.Perimeter != 12 {
			t.Fatalf("wanted: area 6, perimeter 12\ngot: %+v", tri)
		}
		want := [3]float64{36.87, 53.13, 90}
		for i := range want {
			if !near(tri.Angles[i], want[i], 0.01) {
				t.Fatalf("angle %d: wanted %v\ngot: %v", i, want[i], tri.Angles[i])
			}
		}
		if tri.AngleKind != "right" || tri.SideKind != "scalene" {
			t.Fatalf("wanted: right scalene\ngot: %s %s", tri.AngleKind, tri.SideKind)
		}
	})

	t.Run("should reject sides that fail the triangle inequality", func(t *testing.T) {
		if _, err := geometry.SolveTriangle(1, 1, 5); !errors.Is(err, geometry.ErrInvalidTriangle) {
			t.Fatalf("wanted: ErrInvalidTriangle\ngot: %v", err)
		}
	})

	t.Run("should reject a degenerate triangle", func(t *testing.T) {
		if _, err := geometry.SolveTriangle(1, 2, 3); !errors.Is(err, geometry.ErrInvalidTriangle) {
			t.Fatalf("wanted: ErrInvalidTriangle\ngot: %v", err)
		}
	})

	t.Run("should classify an equilateral triangle", func(t *testing.T) {
		tri, _ := geometry.SolveTriangle(2, 2, 2)
		if tri.SideKind != "equilateral" || tri.AngleKind != "acute" {
			t.Fatalf("wanted: equilateral acute\ngot: %s %s", tri.SideKind, tri.AngleKind)
		}
	})
}

func TestPolygons(t *testing.T) {
	hex, err := geometry.Hexagon(2)
	if err != nil {
		t.Fatalf("Hexagon: %v", err)
	}
	if !near(hex.Area, 10.392305, 1e-6) || hex.Perimeter != 12 || !near(hex.Circumradius, 2, 1e-9) {
		t.Fatalf("unexpected hexagon: %+v", hex)
	}

	oct, _ := geometry.Octagon(1)
	if !near(oct.Area, 4.828427, 1e-6) || oct.InteriorDeg != 135 {
		t.Fatalf("unexpected octagon: %+v", oct)
	}

	if _, err := geometry.Hexagon(0); !errors.Is(err, geometry.ErrNonPositive) {
		t.Fatalf("wanted: ErrNonPositive\ngot: %v", err)
	}
}

func TestTrapezoid(t *testing.T) {
	tr, err := geometry.Trapezoid(10, 6, 4, 5, 5)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}
	if tr.Area != 32 || tr.Median != 8 || tr.Perimeter != 26 {
		t.Fatalf("unexpected trapezoid: %+v", tr)
	}
	if _, err := geometry.Trapezoid(10, 6, 4, 3, 5); !errors.Is(err, geometry.ErrInvalidLegs) {
		t.Fatalf("wanted: ErrInvalidLegs\ngot: %v", err)
	}
}

func TestRoundShapes(t *testing.T) {
	c, _ := geometry.Circle(1)
	if !near(c.Area, math.Pi, 1e-12) || c.Diameter != 2 {
		t.Fatalf("circle: %+v", c)
	}
	s, _ := geometry.Sphere(3)
	if !near(s.Volume, 113.097336, 1e-6) {
		t.Fatalf("sphere: %+v", s)
	}
	r, _ := geometry.Rectangle(3, 4)
	if r.Diagonal != 5 || r.Area != 12 {
		t.Fatalf("rectangle: %+v", r)
	}
}
