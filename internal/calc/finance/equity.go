package finance

import "errors"

var (
	ErrInvalidHomeValue = errors.New("home value must be greater than zero")
	ErrInvalidLTV       = errors.New("maximum loan-to-value must be between 1 and 100 percent")
)

// DefaultMaxLTV is the combined loan-to-value most lenders cap home equity loans at.
const DefaultMaxLTV = 85.0

// Equity describes the borrowing position on a home.
type Equity struct {
	Equity       float64 `json:"equity"`
	EquityPct    float64 `json:"equity_pct"`
	LTV          float64 `json:"ltv"`
	MaxBorrow    float64 `json:"max_borrow"`
	Underwater   bool    `json:"underwater"`
	MaxTotalDebt float64 `json:"max_total_debt"`
}

// HomeEquity computes current equity, the loan-to-value ratio and how much
// can still be borrowed against the home at maxLTVPct.
func HomeEquity(homeValue, mortgageBalance, maxLTVPct float64) (Equity, error) {
	switch {
	case homeValue <= 0:
		return Equity{}, ErrInvalidHomeValue
	case mortgageBalance < 0:
		return Equity{}, ErrNegativeAmount
	case maxLTVPct <= 0 || maxLTVPct > 100:
		return Equity{}, ErrInvalidLTV
	}
	e := Equity{
		Equity:       homeValue - mortgageBalance,
		LTV:          mortgageBalance / homeValue * 100,
		MaxTotalDebt: homeValue * maxLTVPct / 100,
	}
	e.EquityPct = e.Equity / homeValue * 100
	e.Underwater = e.Equity < 0
	if room := e.MaxTotalDebt - mortgageBalance; room > 0 {
		e.MaxBorrow = room
	}
	return e, nil
}
