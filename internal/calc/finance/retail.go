package finance

import (
	"errors"
	"math"
)

var (
	ErrInvalidPercent = errors.New("percentage must be between 0 and 100")
	ErrInvalidPeople  = errors.New("number of people must be at least 1")
	ErrZeroInvestment = errors.New("initial investment must be greater than zero")
)

// Discount is a price after a percentage reduction.
type Discount struct {
	Saved float64 `json:"saved"`
	Final float64 `json:"final"`
}

// ApplyDiscount removes pct percent from price.
func ApplyDiscount(price, pct float64) (Discount, error) {
	if price < 0 {
		return Discount{}, ErrNegativeAmount
	}
	if pct < 0 || pct > 100 {
		return Discount{}, ErrInvalidPercent
	}
	saved := price * pct / 100
	return Discount{Saved: saved, Final: price - saved}, nil
}

// Tax is a price with sales tax added.
type Tax struct {
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// SalesTax adds ratePct percent tax to price.
func SalesTax(price, ratePct float64) (Tax, error) {
	if price < 0 {
		return Tax{}, ErrNegativeAmount
	}
	if ratePct < 0 || ratePct > 100 {
		return Tax{}, ErrInvalidPercent
	}
	tax := price * ratePct / 100
	return Tax{Tax: tax, Total: price + tax}, nil
}

// TipSplit is a bill with tip shared between people.
type TipSplit struct {
	Tip       float64 `json:"tip"`
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`
}

// SplitTip adds a pct percent tip to bill and splits the total between people.
func SplitTip(bill, pct float64, people int) (TipSplit, error) {
	switch {
	case bill < 0:
		return TipSplit{}, ErrNegativeAmount
	case pct < 0 || pct > 100:
		return TipSplit{}, ErrInvalidPercent
	case people < 1:
		return TipSplit{}, ErrInvalidPeople
	}
	tip := bill * pct / 100
	total := bill + tip
	return TipSplit{Tip: tip, Total: total, PerPerson: total / float64(people)}, nil
}

// Return is the performance of an investment.
type Return struct {
	Gain          float64 `json:"gain"`
	ROIPct        float64 `json:"roi_pct"`
	AnnualizedPct float64 `json:"annualized_pct"`
}

// ROI compares final to initial. When years is positive the compound annual
// growth rate is reported too.
func ROI(initial, final, years float64) (Return, error) {
	switch {
	case initial <= 0:
		return Return{}, ErrZeroInvestment
	case final < 0:
		return Return{}, ErrNegativeAmount
	case years < 0 || years > 100:
		return Return{}, ErrInvalidYears
	}
	r := Return{Gain: final - initial, ROIPct: (final - initial) / initial * 100}
	if years > 0 {
		r.AnnualizedPct = (math.Pow(final/initial, 1/years) - 1) * 100
	}
	return r, nil
}
