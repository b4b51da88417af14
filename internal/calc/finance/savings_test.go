package finance_test

import (
	"errors"
	"testing"

	"calckit/internal/calc/finance"
)

func TestReachSavingsGoal(t *testing.T) {
	t.Run("should count months without interest", func(t *testing.T) {
		plan, err := finance.ReachSavingsGoal(1000, 100, 100, 0)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if plan.Months != 9 {
			t.Fatalf("wanted: 9 months\ngot: %d", plan.Months)
		}
		if plan.FinalBalance != 1000 || plan.TotalContributed != 1000 {
			t.Fatalf("wanted: balance and contributions of 1000\ngot: %+v", plan)
		}
	})

	t.Run("should reach the goal sooner with interest", func(t *testing.T) {
		flat, _ := finance.ReachSavingsGoal(50000, 1000, 500, 0)
		grown, err := finance.ReachSavingsGoal(50000, 1000, 500, 6)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if grown.Months >= flat.Months {
			t.Fatalf("wanted: fewer months with interest\ngot: %d vs %d", grown.Months, flat.Months)
		}
		if grown.TotalInterest <= 0 {
			t.Fatalf("wanted: positive interest\ngot: %f", grown.TotalInterest)
		}
	})

	t.Run("should need zero months when the goal is already met", func(t *testing.T) {
		plan, err := finance.ReachSavingsGoal(500, 800, 0, 0)
		if err != nil || plan.Months != 0 {
			t.Fatalf("wanted: 0 months\ngot: %+v, %v", plan, err)
		}
	})

	t.Run("should report an unreachable goal", func(t *testing.T) {
		if _, err := finance.ReachSavingsGoal(1000, 0, 0, 5); !errors.Is(err, finance.ErrGoalUnreachable) {
			t.Fatalf("wanted: ErrGoalUnreachable\ngot: %v", err)
		}
		if _, err := finance.ReachSavingsGoal(1e12, 0, 1, 0); !errors.Is(err, finance.ErrGoalUnreachable) {
			t.Fatalf("wanted: ErrGoalUnreachable past the cap\ngot: %v", err)
		}
	})
}
