package finance_test

import (
	"errors"
	"math"
	"testing"

	"calckit/internal/calc/finance"
)

func TestSimple(t *testing.T) {
	si, err := finance.Simple(1000, 5, 3)
	if err != nil {
		t.Fatalf("Simple: %v", err)
	}
	if si.Interest != 150 || si.Total != 1150 {
		t.Fatalf("wanted: 150 / 1150\ngot: %+v", si)
	}
	if _, err := finance.Simple(1000, 5, 101); !errors.Is(err, finance.ErrInvalidYears) {
		t.Fatalf("wanted: ErrInvalidYears\ngot: %v", err)
	}
}

func TestCompound(t *testing.T) {
	t.Run("should match the closed form without deposits", func(t *testing.T) {
		g, err := finance.Compound(1000, 5, 10, 12, 0)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		want := 1000 * math.Pow(1+0.05/12, 120)
		if math.Abs(g.FinalBalance-want) > 1e-6 {
			t.Fatalf("wanted: %f\ngot: %f", want, g.FinalBalance)
		}
		if len(g.Years) != 10 {
			t.Fatalf("wanted: 10 yearly rows\ngot: %d", len(g.Years))
		}
	})

	t.Run("should add monthly deposits", func(t *testing.T) {
		g, err := finance.Compound(0, 0, 2, 1, 100)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if g.FinalBalance != 2400 || g.TotalInterest != 0 {
			t.Fatalf("wanted: 2400 with no interest\ngot: %+v", g)
		}
	})

	t.Run("should reject a zero frequency", func(t *testing.T) {
		if _, err := finance.Compound(100, 5, 1, 0, 0); !errors.Is(err, finance.ErrInvalidFrequency) {
			t.Fatalf("wanted: ErrInvalidFrequency\ngot: %v", err)
		}
	})
}

func TestHomeEquity(t *testing.T) {
	e, err := finance.HomeEquity(400000, 250000, 85)
	if err != nil {
		t.Fatalf("HomeEquity: %v", err)
	}
	if e.Equity != 150000 || e.LTV != 62.5 || e.MaxBorrow != 90000 {
		t.Fatalf("unexpected equity: %+v", e)
	}

	under, err := finance.HomeEquity(200000, 250000, 80)
	if err != nil {
		t.Fatalf("HomeEquity: %v", err)
	}
	if !under.Underwater || under.MaxBorrow != 0 {
		t.Fatalf("wanted: underwater with nothing to borrow\ngot: %+v", under)
	}

	if _, err := finance.HomeEquity(0, 0, 80); !errors.Is(err, finance.ErrInvalidHomeValue) {
		t.Fatalf("wanted: ErrInvalidHomeValue\ngot: %v", err)
	}
}

func TestRetail(t *testing.T) {
	d, _ := finance.ApplyDiscount(80, 25)
	if d.Saved != 20 || d.Final != 60 {
		t.Fatalf("discount: %+v", d)
	}
	tx, _ := finance.SalesTax(100, 8.25)
	if math.Abs(tx.Total-108.25) > 1e-9 {
		t.Fatalf("sales tax: %+v", tx)
	}
	tip, _ := finance.SplitTip(90, 20, 4)
	if tip.Tip != 18 || tip.PerPerson != 27 {
		t.Fatalf("tip: %+v", tip)
	}
	if _, err := finance.SplitTip(90, 20, 0); !errors.Is(err, finance.ErrInvalidPeople) {
		t.Fatalf("wanted: ErrInvalidPeople\ngot: %v", err)
	}
	r, _ := finance.ROI(1000, 2000, 5)
	if r.ROIPct != 100 || math.Abs(r.AnnualizedPct-14.8698) > 1e-3 {
		t.Fatalf("roi: %+v", r)
	}
}
