package algebra

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrNotCubic     = errors.New("leading coefficient a must not be zero")
	ErrNotQuadratic = errors.New("leading coefficient a must not be zero")
	ErrOverflow     = errors.New("coefficients are too large to solve")
)

// RootKind classifies the roots of a cubic by its discriminant.
type RootKind string

const (
	RepeatedRealRoots RootKind = "repeated real roots"
	OneRealTwoComplex RootKind = "one real root and two complex conjugate roots"
	ThreeDistinctReal RootKind = "three distinct real roots"
)

// Cubic is the solution of a·x³ + b·x² + c·x + d = 0.
type Cubic struct {
	Roots        [3]Root  `json:"roots"`
	Discriminant float64  `json:"discriminant"`
	Kind         RootKind `json:"kind"`
}

// SolveCubic finds all three roots with Cardano's method, switching to the
// trigonometric form when all roots are real and distinct. Real roots are
// listed in ascending order before any complex pair.
func SolveCubic(a, b, c, d float64) (Cubic, error) {
	if a == 0 {
		return Cubic{}, ErrNotCubic
	}
	B, C, D := b/a, c/a, d/a

	// Depress with x = t - B/3 to get t³ + p·t + q = 0.
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D
	shift := -B / 3

	delta := (q/2)*(q/2) + (p/3)*(p/3)*(p/3)
	eps := 1e-12 * math.Max(1, math.Max(q*q, math.Abs(p*p*p)))

	var out Cubic
	out.Discriminant = delta

	switch {
	case math.Abs(delta) <= eps:
		out.Kind = RepeatedRealRoots
		if math.Abs(p) <= 1e-12 {
			out.Roots = [3]Root{{Re: shift}, {Re: shift}, {Re: shift}}
			break
		}
		u := math.Cbrt(-q / 2)
		out.Roots = [3]Root{{Re: 2*u + shift}, {Re: -u + shift}, {Re: -u + shift}}

	case delta > 0:
		out.Kind = OneRealTwoComplex
		sq := math.Sqrt(delta)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		re := -(u+v)/2 + shift
		im := (u - v) * math.Sqrt(3) / 2
		out.Roots = [3]Root{{Re: u + v + shift}, {Re: re, Im: math.Abs(im)}, {Re: re, Im: -math.Abs(im)}}

	default:
		out.Kind = ThreeDistinctReal
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
		arg = math.Max(-1, math.Min(1, arg))
		phi := math.Acos(arg) / 3
		for k := 0; k < 3; k++ {
			out.Roots[k] = Root{Re: r*math.Cos(phi-2*math.Pi*float64(k)/3) + shift}
		}
	}

	if !finite(out.Discriminant) || !finiteRoots(out.Roots[:]) {
		return Cubic{}, ErrOverflow
	}
	sortRoots(out.Roots[:])
	return out, nil
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

func finiteRoots(rs []Root) bool {
	for _, r := range rs {
		if !finite(r.Re, r.Im) {
			return false
		}
	}
	return true
}

// sortRoots orders real roots ascending ahead of complex ones.
func sortRoots(rs []Root) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].IsReal() != rs[j].IsReal() {
			return rs[i].IsReal()
		}
		if rs[i].Re != rs[j].Re {
			return rs[i].Re < rs[j].Re
		}
		return rs[i].Im > rs[j].Im
	})
}

// Quadratic is the solution of a·x² + b·x + c = 0.
type Quadratic struct {
	Roots        [2]Root    `json:"roots"`
	Discriminant float64    `json:"discriminant"`
	Vertex       [2]float64 `json:"vertex"`
}

// SolveQuadratic applies the quadratic formula, using the numerically stable
// form for the second real root.
func SolveQuadratic(a, b, c float64) (Quadratic, error) {
	if a == 0 {
		return Quadratic{}, ErrNotQuadratic
	}
	disc := b*b - 4*a*c
	vx := -b / (2 * a)
	out := Quadratic{Discriminant: disc, Vertex: [2]float64{vx, a*vx*vx + b*vx + c}}

	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		qq := -0.5 * (b + math.Copysign(s, b))
		x1, x2 := qq/a, c/qq
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		out.Roots = [2]Root{{Re: x1}, {Re: x2}}
	case disc == 0:
		out.Roots = [2]Root{{Re: vx}, {Re: vx}}
	default:
		im := math.Sqrt(-disc) / (2 * math.Abs(a))
		out.Roots = [2]Root{{Re: vx, Im: im}, {Re: vx, Im: -im}}
	}
	if !finite(disc, out.Vertex[0], out.Vertex[1]) || !finiteRoots(out.Roots[:]) {
		return Quadratic{}, ErrOverflow
	}
	return out, nil
}
