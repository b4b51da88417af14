package finance

import (
	"errors"
	"math"
)

var (
	ErrInvalidYears     = errors.New("years must be between 0 and 100")
	ErrInvalidFrequency = errors.New("compounding frequency must be at least once a year")
)

// SimpleInterest is principal × rate × time.
type SimpleInterest struct {
	Interest float64 `json:"interest"`
	Total    float64 `json:"total"`
}

// Simple computes simple interest for years at annualRatePct.
func Simple(principal, annualRatePct, years float64) (SimpleInterest, error) {
	switch {
	case principal < 0:
		return SimpleInterest{}, ErrNegativeAmount
	case annualRatePct < 0:
		return SimpleInterest{}, ErrNegativeRate
	case years < 0 || years > 100:
		return SimpleInterest{}, ErrInvalidYears
	}
	interest := principal * annualRatePct / 100 * years
	return SimpleInterest{Interest: interest, Total: principal + interest}, nil
}

// GrowthYear is the balance at the end of one year of compounding.
type GrowthYear struct {
	Year          int     `json:"year"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
	Balance       float64 `json:"balance"`
}

// CompoundGrowth is the outcome of compound growth with regular deposits.
type CompoundGrowth struct {
	FinalBalance       float64      `json:"final_balance"`
	TotalContributions float64      `json:"total_contributions"`
	TotalInterest      float64      `json:"total_interest"`
	Years              []GrowthYear `json:"years"`
}

// Compound grows principal for whole years, compounding perYear times a year,
// with an optional deposit at the end of every month.
func Compound(principal, annualRatePct float64, years, perYear int, monthly float64) (CompoundGrowth, error) {
	switch {
	case principal < 0, monthly < 0:
		return CompoundGrowth{}, ErrNegativeAmount
	case annualRatePct < 0:
		return CompoundGrowth{}, ErrNegativeRate
	case years < 0 || years > 100:
		return CompoundGrowth{}, ErrInvalidYears
	case perYear < 1:
		return CompoundGrowth{}, ErrInvalidFrequency
	}

	r := annualRatePct / 100
	// Effective monthly rate equivalent to the nominal compounding schedule.
	m := math.Pow(1+r/float64(perYear), float64(perYear)/12) - 1

	balanceAt := func(year int) float64 {
		months := float64(12 * year)
		lump := principal * math.Pow(1+r/float64(perYear), float64(perYear*year))
		if m == 0 {
			return lump + monthly*months
		}
		return lump + monthly*(math.Pow(1+m, months)-1)/m
	}

	g := CompoundGrowth{FinalBalance: principal, TotalContributions: principal}
	prev := principal
	for y := 1; y <= years; y++ {
		bal := balanceAt(y)
		contributed := monthly * 12
		g.Years = append(g.Years, GrowthYear{
			Year:          y,
			Contributions: contributed,
			Interest:      bal - prev - contributed,
			Balance:       bal,
		})
		g.TotalContributions += contributed
		prev = bal
	}
	g.FinalBalance = prev
	g.TotalInterest = g.FinalBalance - g.TotalContributions
	return g, nil
}

// Loan summarizes a fixed-rate installment loan.
type Loan struct {
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

// LoanPayment returns the level payment and lifetime cost of a loan.
func LoanPayment(principal, annualRatePct float64, months int) (Loan, error) {
	if principal < 0 {
		return Loan{}, ErrNegativeAmount
	}
	pmt, err := MonthlyPayment(principal, annualRatePct, months)
	if err != nil {
		return Loan{}, err
	}
	total := pmt * float64(months)
	return Loan{Payment: pmt, TotalPaid: total, TotalInterest: total - principal}, nil
}
