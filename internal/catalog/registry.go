package catalog

import (
	"fmt"
	"regexp"
	"sort"

	"calckit/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Registry is an ordered, read-only set of calculators.
type Registry struct {
	order  []domain.Calculator
	bySlug map[domain.Slug]int
}

// New validates calcs and builds a registry. Slugs must be unique and URL
// safe, categories must be known, and every calculator needs a compute
// function.
func New(calcs ...domain.Calculator) (*Registry, error) {
	r := &Registry{bySlug: make(map[domain.Slug]int, len(calcs))}
	for _, c := range calcs {
		if !slugPattern.MatchString(string(c.Slug)) {
			return nil, fmt.Errorf("calculator %q: slug is not URL safe", c.Slug)
		}
		if _, dup := r.bySlug[c.Slug]; dup {
			return nil, fmt.Errorf("calculator %q: duplicate slug", c.Slug)
		}
		if !c.Category.Valid() {
			return nil, fmt.Errorf("calculator %q: unknown category %q", c.Slug, c.Category)
		}
		if c.Compute == nil {
			return nil, fmt.Errorf("calculator %q: missing compute function", c.Slug)
		}
		seen := map[string]bool{}
		for _, f := range c.Fields {
			if seen[f.Name] {
				return nil, fmt.Errorf("calculator %q: duplicate field %q", c.Slug, f.Name)
			}
			seen[f.Name] = true
		}
		r.bySlug[c.Slug] = len(r.order)
		r.order = append(r.order, c)
	}
	return r, nil
}

// Lookup returns the calculator registered under slug.
func (r *Registry) Lookup(slug domain.Slug) (domain.Calculator, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Calculator{}, false
	}
	return r.order[i], true
}

// All returns every calculator, grouped by category in display order and
// sorted by title within a category.
func (r *Registry) All() []domain.Calculator {
	rank := make(map[domain.Category]int, len(domain.Categories))
	for i, c := range domain.Categories {
		rank[c] = i
	}
	out := append([]domain.Calculator(nil), r.order...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return rank[out[i].Category] < rank[out[j].Category]
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// ByCategory returns the calculators of one category, sorted by title.
func (r *Registry) ByCategory(cat domain.Category) []domain.Calculator {
	var out []domain.Calculator
	for _, c := range r.All() {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// Len reports the number of registered calculators.
func (r *Registry) Len() int { return len(r.order) }

// Default returns a registry holding every built-in calculator.
func Default() *Registry {
	var calcs []domain.Calculator
	calcs = append(calcs, financeCalculators()...)
	calcs = append(calcs, mathCalculators()...)
	calcs = append(calcs, geometryCalculators()...)
	calcs = append(calcs, healthCalculators()...)
	calcs = append(calcs, dateCalculators()...)
	calcs = append(calcs, conversionCalculators()...)
	calcs = append(calcs, developerCalculators()...)
	calcs = append(calcs, scienceCalculators()...)

	r, err := New(calcs...)
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}
	return r
}
