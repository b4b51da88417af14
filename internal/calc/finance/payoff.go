package finance

import (
	"errors"
	"fmt"
)

var (
	// ErrNeverPaysOff is returned when the payment cannot retire the balance.
	ErrNeverPaysOff = errors.New("payment never pays off the balance")

	ErrInvalidPayment = errors.New("payment must be greater than zero")
)

// Payoff is the outcome of repaying a revolving balance with a fixed payment.
type Payoff struct {
	Months        int      `json:"months"`
	TotalInterest float64  `json:"total_interest"`
	TotalPaid     float64  `json:"total_paid"`
	Periods       []Period `json:"periods"`
}

// PayOffDebt simulates paying balance down with a fixed monthly payment.
// Interest accrues before each payment. A payment that does not exceed the
// first month's interest fails fast with ErrNeverPaysOff.
func PayOffDebt(balance, annualRatePct, payment float64) (Payoff, error) {
	if annualRatePct < 0 {
		return Payoff{}, ErrNegativeRate
	}
	if balance <= 0 {
		return Payoff{}, nil
	}
	if payment <= 0 {
		return Payoff{}, ErrInvalidPayment
	}

	r := monthlyRate(annualRatePct)
	if payment <= balance*r {
		return Payoff{}, fmt.Errorf("%w: monthly interest is %.2f", ErrNeverPaysOff, balance*r)
	}

	var p Payoff
	for n := 1; n <= MaxPeriods; n++ {
		interest := balance * r
		paid := payment
		if balance+interest <= payment {
			paid = balance + interest
		}
		toPrincipal := paid - interest
		balance -= toPrincipal
		if balance < 1e-9 {
			balance = 0
		}
		p.Periods = append(p.Periods, Period{
			Number:    n,
			Payment:   paid,
			Interest:  interest,
			Principal: toPrincipal,
			Balance:   balance,
		})
		p.TotalInterest += interest
		p.TotalPaid += paid
		if balance == 0 {
			p.Months = n
			return p, nil
		}
	}
	return Payoff{}, fmt.Errorf("%w within %d months", ErrNeverPaysOff, MaxPeriods)
}
