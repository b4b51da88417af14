package finance

import (
	"errors"
	"fmt"
)

var (
	// ErrGoalUnreachable is returned when the balance can never reach the goal.
	ErrGoalUnreachable = errors.New("savings goal is unreachable")

	ErrInvalidGoal = errors.New("goal must be greater than zero")
)

// SavingsPeriod is one month of a savings simulation.
type SavingsPeriod struct {
	Number       int     `json:"number"`
	Contribution float64 `json:"contribution"`
	Interest     float64 `json:"interest"`
	Balance      float64 `json:"balance"`
}

// SavingsPlan is the outcome of saving toward a goal.
type SavingsPlan struct {
	Months           int             `json:"months"`
	FinalBalance     float64         `json:"final_balance"`
	TotalContributed float64         `json:"total_contributed"`
	TotalInterest    float64         `json:"total_interest"`
	Periods          []SavingsPeriod `json:"periods"`
}

// ReachSavingsGoal simulates monthly saving until the balance meets goal.
// Each month earns interest on the opening balance, then receives the
// contribution.
func ReachSavingsGoal(goal, initial, monthly, annualRatePct float64) (SavingsPlan, error) {
	switch {
	case goal <= 0:
		return SavingsPlan{}, ErrInvalidGoal
	case initial < 0, monthly < 0:
		return SavingsPlan{}, ErrNegativeAmount
	case annualRatePct < 0:
		return SavingsPlan{}, ErrNegativeRate
	}

	plan := SavingsPlan{FinalBalance: initial, TotalContributed: initial}
	if initial >= goal {
		return plan, nil
	}

	r := monthlyRate(annualRatePct)
	if monthly == 0 && (r == 0 || initial == 0) {
		return SavingsPlan{}, ErrGoalUnreachable
	}

	balance := initial
	for n := 1; n <= MaxPeriods; n++ {
		interest := balance * r
		balance += interest + monthly
		plan.TotalInterest += interest
		plan.TotalContributed += monthly
		plan.Periods = append(plan.Periods, SavingsPeriod{
			Number:       n,
			Contribution: monthly,
			Interest:     interest,
			Balance:      balance,
		})
		if balance >= goal {
			plan.Months = n
			plan.FinalBalance = balance
			return plan, nil
		}
	}
	return SavingsPlan{}, fmt.Errorf("%w within %d months", ErrGoalUnreachable, MaxPeriods)
}
