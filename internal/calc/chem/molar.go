package chem

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyFormula   = errors.New("formula is empty")
	ErrUnknownElement = errors.New("unknown element")
	ErrUnbalanced     = errors.New("unbalanced parentheses")
	ErrMalformed      = errors.New("malformed formula")
)

const (
	// maxDepth bounds group nesting.
	maxDepth = 16
	// maxAtoms bounds the count of any one element after multipliers.
	maxAtoms = 1_000_000_000
)

// Component is one element's share of a compound.
type Component struct {
	Element Element `json:"element"`
	Count   int     `json:"count"`
	Mass    float64 `json:"mass"`
	Percent float64 `json:"percent"`
}

// Compound is the parsed formula with its molar mass in g/mol.
type Compound struct {
	Formula    string      `json:"formula"`
	MolarMass  float64     `json:"molar_mass"`
	Components []Component `json:"components"`
}

// MolarMass parses formula and sums the atomic weights of its elements.
// Components are ordered by descending mass share.
func MolarMass(formula string) (Compound, error) {
	f := strings.Join(strings.Fields(formula), "")
	if f == "" {
		return Compound{}, ErrEmptyFormula
	}

	counts := map[string]int{}
	for _, part := range strings.FieldsFunc(f, func(r rune) bool { return r == '·' || r == '.' || r == '*' }) {
		p := &parser{src: part}
		mult, err := p.count()
		if err != nil {
			return Compound{}, err
		}
		group, err := p.group(0)
		if err != nil {
			return Compound{}, err
		}
		if p.pos != len(p.src) {
			return Compound{}, fmt.Errorf("%w: unexpected %q", ErrUnbalanced, p.src[p.pos])
		}
		if len(group) == 0 {
			return Compound{}, fmt.Errorf("%w: %q has no elements", ErrMalformed, part)
		}
		if err := merge(counts, group, mult); err != nil {
			return Compound{}, err
		}
	}
	if len(counts) == 0 {
		return Compound{}, ErrMalformed
	}

	c := Compound{Formula: f}
	for sym, n := range counts {
		e, _ := Lookup(sym)
		mass := e.Weight * float64(n)
		c.MolarMass += mass
		c.Components = append(c.Components, Component{Element: e, Count: n, Mass: mass})
	}
	for i := range c.Components {
		c.Components[i].Percent = c.Components[i].Mass / c.MolarMass * 100
	}
	sort.Slice(c.Components, func(i, j int) bool {
		if c.Components[i].Mass != c.Components[j].Mass {
			return c.Components[i].Mass > c.Components[j].Mass
		}
		return c.Components[i].Element.Number < c.Components[j].Element.Number
	})
	return c, nil
}

type parser struct {
	src string
	pos int
}

// group reads element tokens and bracketed subgroups until a closing
// bracket or the end of input.
func (p *parser) group(depth int) (map[string]int, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, maxDepth)
	}
	out := map[string]int{}
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch {
		case ch == '(' || ch == '[':
			open := ch
			p.pos++
			inner, err := p.group(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != closing(open) {
				return nil, ErrUnbalanced
			}
			p.pos++
			if len(inner) == 0 {
				return nil, fmt.Errorf("%w: empty group", ErrMalformed)
			}
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			if err := merge(out, inner, n); err != nil {
				return nil, err
			}
		case ch == ')' || ch == ']':
			if depth == 0 {
				return nil, ErrUnbalanced
			}
			return out, nil
		case ch >= 'A' && ch <= 'Z':
			start := p.pos
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
				p.pos++
			}
			sym := p.src[start:p.pos]
			if _, ok := Lookup(sym); !ok {
				return nil, fmt.Errorf("%w %q", ErrUnknownElement, sym)
			}
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			if err := merge(out, map[string]int{sym: 1}, n); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrMalformed, ch, p.pos+1)
		}
	}
	if depth > 0 {
		return nil, ErrUnbalanced
	}
	return out, nil
}

// count reads an optional multiplier, defaulting to 1. An explicit zero is
// malformed.
func (p *parser) count() (int, error) {
	start, n := p.pos, 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' && n < 1e6 {
		n = n*10 + int(p.src[p.pos]-'0')
		p.pos++
	}
	switch {
	case p.pos == start:
		return 1, nil
	case n == 0:
		return 0, fmt.Errorf("%w: zero count at position %d", ErrMalformed, start+1)
	}
	return n, nil
}

// merge adds src scaled by mult into dst, failing once any element count
// passes maxAtoms.
func merge(dst, src map[string]int, mult int) error {
	for sym, k := range src {
		if k > maxAtoms/mult {
			return fmt.Errorf("%w: more than %d atoms of %s", ErrMalformed, maxAtoms, sym)
		}
		dst[sym] += k * mult
		if dst[sym] > maxAtoms {
			return fmt.Errorf("%w: more than %d atoms of %s", ErrMalformed, maxAtoms, sym)
		}
	}
	return nil
}

func closing(open byte) byte {
	if open == '[' {
		return ']'
	}
	return ')'
}
