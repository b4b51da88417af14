package catalog

import (
	"fmt"

	"calckit/internal/calc/geometry"
	"calckit/internal/domain"
)

func geometryCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "triangle",
			Title:    "Triangle Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Area, perimeter, angles and type of a triangle from its three sides.",
			Fields: []domain.Field{
				numberField("a", "Side a", "3"),
				numberField("b", "Side b", "4"),
				numberField("c", "Side c", "5"),
			},
			Compute: computeTriangle,
		},
		{
			Slug:     "hexagon",
			Title:    "Hexagon Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Area, perimeter, apothem and circumradius of a regular hexagon.",
			Fields:   []domain.Field{numberField("side", "Side length", "10")},
			Compute:  polygonCompute(geometry.Hexagon),
		},
		{
			Slug:     "octagon",
			Title:    "Octagon Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Area, perimeter, apothem and circumradius of a regular octagon.",
			Fields:   []domain.Field{numberField("side", "Side length", "10")},
			Compute:  polygonCompute(geometry.Octagon),
		},
		{
			Slug:     "regular-polygon",
			Title:    "Regular Polygon Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Measurements of a regular polygon with any number of sides.",
			Fields: []domain.Field{
				integerField("sides", "Number of sides", "5"),
				numberField("side", "Side length", "10"),
			},
			Compute: computeRegularPolygon,
		},
		{
			Slug:     "trapezoid",
			Title:    "Trapezoid Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Area and median of a trapezoid, plus the perimeter when the legs are known.",
			Fields: []domain.Field{
				numberField("base1", "Base a", "10"),
				numberField("base2", "Base b", "6"),
				numberField("height", "Height", "4"),
				optional(numberField("leg1", "Leg c", "")),
				optional(numberField("leg2", "Leg d", "")),
			},
			Compute: computeTrapezoid,
		},
		{
			Slug:     "circle",
			Title:    "Circle Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Diameter, circumference and area from the radius.",
			Fields:   []domain.Field{numberField("radius", "Radius", "5")},
			Compute:  computeCircle,
		},
		{
			Slug:     "rectangle",
			Title:    "Rectangle Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Area, perimeter and diagonal of a rectangle.",
			Fields: []domain.Field{
				numberField("width", "Width", "8"),
				numberField("height", "Height", "6"),
			},
			Compute: computeRectangle,
		},
		{
			Slug:     "sphere",
			Title:    "Sphere Volume Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Volume and surface area of a sphere.",
			Fields:   []domain.Field{numberField("radius", "Radius", "3")},
			Compute:  computeSphere,
		},
		{
			Slug:     "cylinder",
			Title:    "Cylinder Volume Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Volume and surface area of a right circular cylinder.",
			Fields: []domain.Field{
				numberField("radius", "Radius", "3"),
				numberField("height", "Height", "10"),
			},
			Compute: solidCompute(geometry.Cylinder),
		},
		{
			Slug:     "cone",
			Title:    "Cone Volume Calculator",
			Category: domain.CategoryGeometry,
			Summary:  "Volume and surface area of a right circular cone.",
			Fields: []domain.Field{
				numberField("radius", "Radius", "3"),
				numberField("height", "Height", "4"),
			},
			Compute: solidCompute(geometry.Cone),
		},
	}
}

func computeTriangle(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	a, b, c := f.Float("a"), f.Float("b"), f.Float("c")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	t, err := geometry.SolveTriangle(a, b, c)
	if !f.Check("", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Area %s, %s %s triangle", num(t.Area), t.SideKind, t.AngleKind)}
	res.Add("Area", num(t.Area)).
		Add("Perimeter", num(t.Perimeter)).
		Add("Angle A", fixed(t.Angles[0], 2)+"°").
		Add("Angle B", fixed(t.Angles[1], 2)+"°").
		Add("Angle C", fixed(t.Angles[2], 2)+"°").
		Add("Type", t.SideKind+", "+t.AngleKind)
	s := t.Perimeter / 2
	res.Steps = []string{
		fmt.Sprintf("s = (a + b + c) / 2 = %s", num(s)),
		fmt.Sprintf("Area = √(s(s−a)(s−b)(s−c)) = %s", num(t.Area)),
	}
	return res, nil
}

func polygonCompute(solve func(float64) (geometry.Polygon, error)) domain.ComputeFunc {
	return func(in domain.Inputs) (domain.Result, error) {
		f := read(in)
		side := f.Positive("side")
		if err := f.Err(); err != nil {
			return domain.Result{}, err
		}
		p, err := solve(side)
		if !f.Check("side", err) {
			return domain.Result{}, f.Err()
		}
		return polygonResult(p), nil
	}
}

func computeRegularPolygon(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	n := f.Int("sides")
	side := f.Positive("side")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	if n < 3 || n > 1000 {
		f.fail("sides", fmt.Errorf("must be between 3 and 1000"))
		return domain.Result{}, f.Err()
	}
	p, err := geometry.RegularPolygon(n, side)
	if !f.Check("side", err) {
		return domain.Result{}, f.Err()
	}
	return polygonResult(p), nil
}

func polygonResult(p geometry.Polygon) domain.Result {
	res := domain.Result{Summary: fmt.Sprintf("Area: %s", num(p.Area))}
	res.Add("Area", num(p.Area)).
		Add("Perimeter", num(p.Perimeter)).
		Add("Apothem", num(p.Apothem)).
		Add("Circumradius", num(p.Circumradius)).
		Add("Interior angle", fixed(p.InteriorDeg, 2)+"°")
	return res
}

func computeTrapezoid(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	b1, b2, h := f.Float("base1"), f.Float("base2"), f.Float("height")
	l1, l2 := f.OptFloat("leg1", 0), f.OptFloat("leg2", 0)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	if (l1 == 0) != (l2 == 0) {
		field := "leg2"
		if l1 == 0 {
			field = "leg1"
		}
		f.fail(field, fmt.Errorf("enter both legs or neither"))
		return domain.Result{}, f.Err()
	}
	t, err := geometry.Trapezoid(b1, b2, h, l1, l2)
	if !f.Blame(err, []blame{{geometry.ErrInvalidLegs, "leg1"}}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Area: %s", num(t.Area))}
	res.Add("Area", num(t.Area)).Add("Median", num(t.Median))
	if t.Perimeter > 0 {
		res.Add("Perimeter", num(t.Perimeter))
	}
	res.Steps = []string{fmt.Sprintf("Area = (a + b) / 2 × h = (%s + %s) / 2 × %s", num(b1), num(b2), num(h))}
	return res, nil
}

func computeCircle(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	r := f.Float("radius")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	c, err := geometry.Circle(r)
	if !f.Check("radius", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Area: %s", num(c.Area))}
	res.Add("Diameter", num(c.Diameter)).Add("Circumference", num(c.Circumference)).Add("Area", num(c.Area))
	return res, nil
}

func computeRectangle(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	w, h := f.Float("width"), f.Float("height")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	r, err := geometry.Rectangle(w, h)
	if !f.Check("", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Area: %s", num(r.Area))}
	res.Add("Area", num(r.Area)).Add("Perimeter", num(r.Perimeter)).Add("Diagonal", num(r.Diagonal))
	return res, nil
}

func computeSphere(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	r := f.Float("radius")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	s, err := geometry.Sphere(r)
	if !f.Check("radius", err) {
		return domain.Result{}, f.Err()
	}
	return solidResult(s), nil
}

func solidCompute(solve func(r, h float64) (geometry.Solid, error)) domain.ComputeFunc {
	return func(in domain.Inputs) (domain.Result, error) {
		f := read(in)
		r, h := f.Float("radius"), f.Float("height")
		if err := f.Err(); err != nil {
			return domain.Result{}, err
		}
		s, err := solve(r, h)
		if !f.Check("", err) {
			return domain.Result{}, f.Err()
		}
		return solidResult(s), nil
	}
}

func solidResult(s geometry.Solid) domain.Result {
	res := domain.Result{Summary: fmt.Sprintf("Volume: %s", num(s.Volume))}
	res.Add("Volume", num(s.Volume)).Add("Surface area", num(s.SurfaceArea))
	return res
}
