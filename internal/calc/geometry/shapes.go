package geometry

import (
	"errors"
	"math"
)

// ErrInvalidLegs is returned when trapezoid legs cannot span the bases.
var ErrInvalidLegs = errors.New("legs are too short for the given bases and height")

// Polygon describes a regular polygon.
type Polygon struct {
	Sides        int     `json:"sides"`
	Side         float64 `json:"side"`
	Area         float64 `json:"area"`
	Perimeter    float64 `json:"perimeter"`
	Apothem      float64 `json:"apothem"`
	Circumradius float64 `json:"circumradius"`
	InteriorDeg  float64 `json:"interior_angle"`
}

// RegularPolygon solves a regular polygon with n sides of the given length.
func RegularPolygon(n int, side float64) (Polygon, error) {
	if side <= 0 || n < 3 {
		return Polygon{}, ErrNonPositive
	}
	fn := float64(n)
	p := Polygon{
		Sides:        n,
		Side:         side,
		Perimeter:    fn * side,
		Apothem:      side / (2 * math.Tan(math.Pi/fn)),
		Circumradius: side / (2 * math.Sin(math.Pi/fn)),
		InteriorDeg:  (fn - 2) * 180 / fn,
	}
	p.Area = p.Perimeter * p.Apothem / 2
	return p, nil
}

// Hexagon is a regular hexagon: area = 3√3/2·s².
func Hexagon(side float64) (Polygon, error) {
	p, err := RegularPolygon(6, side)
	if err != nil {
		return Polygon{}, err
	}
	p.Area = 3 * math.Sqrt(3) / 2 * side * side
	return p, nil
}

// Octagon is a regular octagon: area = 2(1+√2)·s².
func Octagon(side float64) (Polygon, error) {
	p, err := RegularPolygon(8, side)
	if err != nil {
		return Polygon{}, err
	}
	p.Area = 2 * (1 + math.Sqrt2) * side * side
	return p, nil
}

// Trap is a solved trapezoid. Perimeter is zero when the legs are unknown.
type Trap struct {
	Area      float64 `json:"area"`
	Median    float64 `json:"median"`
	Perimeter float64 `json:"perimeter"`
}

// Trapezoid solves a trapezoid from its parallel sides and height. Legs are
// optional (pass 0) and only used for the perimeter.
func Trapezoid(base1, base2, height, leg1, leg2 float64) (Trap, error) {
	if base1 <= 0 || base2 <= 0 || height <= 0 || leg1 < 0 || leg2 < 0 {
		return Trap{}, ErrNonPositive
	}
	t := Trap{
		Area:   (base1 + base2) / 2 * height,
		Median: (base1 + base2) / 2,
	}
	if leg1 > 0 && leg2 > 0 {
		if leg1 < height || leg2 < height {
			return Trap{}, ErrInvalidLegs
		}
		t.Perimeter = base1 + base2 + leg1 + leg2
	}
	return t, nil
}

// Round is a solved circle.
type Round struct {
	Radius        float64 `json:"radius"`
	Diameter      float64 `json:"diameter"`
	Circumference float64 `json:"circumference"`
	Area          float64 `json:"area"`
}

// Circle solves a circle from its radius.
func Circle(radius float64) (Round, error) {
	if radius <= 0 {
		return Round{}, ErrNonPositive
	}
	return Round{
		Radius:        radius,
		Diameter:      2 * radius,
		Circumference: 2 * math.Pi * radius,
		Area:          math.Pi * radius * radius,
	}, nil
}

// Rect is a solved rectangle.
type Rect struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
	Diagonal  float64 `json:"diagonal"`
}

// Rectangle solves a rectangle from its sides.
func Rectangle(width, height float64) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, ErrNonPositive
	}
	return Rect{
		Area:      width * height,
		Perimeter: 2 * (width + height),
		Diagonal:  math.Hypot(width, height),
	}, nil
}

// Solid holds the volume and surface area of a 3D shape.
type Solid struct {
	Volume      float64 `json:"volume"`
	SurfaceArea float64 `json:"surface_area"`
}

// Sphere solves a sphere from its radius.
func Sphere(radius float64) (Solid, error) {
	if radius <= 0 {
		return Solid{}, ErrNonPositive
	}
	return Solid{
		Volume:      4.0 / 3.0 * math.Pi * radius * radius * radius,
		SurfaceArea: 4 * math.Pi * radius * radius,
	}, nil
}

// Cylinder solves a right circular cylinder.
func Cylinder(radius, height float64) (Solid, error) {
	if radius <= 0 || height <= 0 {
		return Solid{}, ErrNonPositive
	}
	return Solid{
		Volume:      math.Pi * radius * radius * height,
		SurfaceArea: 2 * math.Pi * radius * (radius + height),
	}, nil
}

// Cone solves a right circular cone.
func Cone(radius, height float64) (Solid, error) {
	if radius <= 0 || height <= 0 {
		return Solid{}, ErrNonPositive
	}
	slant := math.Hypot(radius, height)
	return Solid{
		Volume:      math.Pi * radius * radius * height / 3,
		SurfaceArea: math.Pi * radius * (radius + slant),
	}, nil
}
