package finance

import (
	"errors"
	"fmt"
	"math"
)

// MaxPeriods bounds every monthly simulation (100 years).
const MaxPeriods = 1200

var (
	ErrInvalidTerm    = fmt.Errorf("term must be between 1 and %d months", MaxPeriods)
	ErrNegativeRate   = errors.New("interest rate cannot be negative")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Period is one row of a repayment schedule.
type Period struct {
	Number    int     `json:"number"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Schedule is a fully amortized loan.
type Schedule struct {
	Payment       float64  `json:"payment"`
	Periods       []Period `json:"periods"`
	TotalInterest float64  `json:"total_interest"`
	TotalPaid     float64  `json:"total_paid"`
}

// monthlyRate converts a nominal annual percentage to a monthly fraction.
func monthlyRate(annualRatePct float64) float64 { return annualRatePct / 100 / 12 }

// MonthlyPayment returns the level payment that retires principal over
// months at the given annual rate.
func MonthlyPayment(principal, annualRatePct float64, months int) (float64, error) {
	if months < 1 || months > MaxPeriods {
		return 0, ErrInvalidTerm
	}
	if annualRatePct < 0 {
		return 0, ErrNegativeRate
	}
	if principal <= 0 {
		return 0, nil
	}
	r := monthlyRate(annualRatePct)
	if r == 0 {
		return principal / float64(months), nil
	}
	return principal * r / (1 - math.Pow(1+r, -float64(months))), nil
}

// Amortize builds the month-by-month schedule for a fixed-rate loan.
// A non-positive principal yields an empty schedule. The last period absorbs
// floating point drift so the closing balance is exactly zero.
func Amortize(principal, annualRatePct float64, months int) (Schedule, error) {
	payment, err := MonthlyPayment(principal, annualRatePct, months)
	if err != nil {
		return Schedule{}, err
	}
	if principal <= 0 {
		return Schedule{}, nil
	}

	r := monthlyRate(annualRatePct)
	s := Schedule{Payment: payment, Periods: make([]Period, 0, months)}
	balance := principal
	for n := 1; n <= months; n++ {
		interest := balance * r
		toPrincipal := payment - interest
		paid := payment
		if n == months || toPrincipal > balance {
			toPrincipal = balance
			paid = toPrincipal + interest
		}
		balance -= toPrincipal
		if balance < 1e-9 {
			balance = 0
		}
		s.Periods = append(s.Periods, Period{
			Number:    n,
			Payment:   paid,
			Interest:  interest,
			Principal: toPrincipal,
			Balance:   balance,
		})
		s.TotalInterest += interest
		s.TotalPaid += paid
		if balance == 0 {
			break
		}
	}
	return s, nil
}
