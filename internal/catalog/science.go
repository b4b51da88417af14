package catalog

import (
	"fmt"

	"calckit/internal/calc/chem"
	"calckit/internal/domain"
)

func scienceCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "molar-mass",
			Title:    "Molar Mass Calculator",
			Category: domain.CategoryScience,
			Summary:  "Molar mass and elemental composition of a chemical formula.",
			Fields: []domain.Field{
				help(textField("formula", "Chemical formula", "C6H12O6"),
					"Symbols are case sensitive. Groups such as Ca(OH)2 and hydrates such as CuSO4·5H2O are supported.", "H2SO4"),
			},
			Compute: computeMolarMass,
		},
	}
}

func computeMolarMass(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	formula := f.Text("formula")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	c, err := chem.MolarMass(formula)
	if !f.Check("formula", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s: %s g/mol", c.Formula, fixed(c.MolarMass, 3))}
	res.Add("Molar mass", fixed(c.MolarMass, 3)+" g/mol")
	t := &domain.Table{Columns: []string{"Element", "Atoms", "Mass (g/mol)", "Mass %"}}
	for _, comp := range c.Components {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%s (%s)", comp.Element.Name, comp.Element.Symbol),
			count(comp.Count),
			fixed(comp.Mass, 3),
			pct(comp.Percent),
		})
	}
	res.Table = t
	return res, nil
}
