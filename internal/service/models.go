package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// Summary aggregates a user's transactions over an optional period.
type Summary struct {
	Balance        decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
}

// GoalDetail pairs a savings goal with its derived progress figures.
type GoalDetail struct {
	Goal               finance.SavingsGoal
	ProgressPercentage int
	RemainingAmount    decimal.Decimal
	DaysRemaining      *int
}

// Overview combines the transaction summary and the goal portfolio
// into a single snapshot.
type Overview struct {
	Summary   Summary
	Goals     []GoalDetail
	GoalStats finance.GoalStats
}

func newGoalDetail(goal finance.SavingsGoal, now time.Time) GoalDetail {
	return GoalDetail{
		Goal:               goal,
		ProgressPercentage: goal.ProgressPercentage(),
		RemainingAmount:    goal.RemainingAmount(),
		DaysRemaining:      goal.DaysRemaining(now),
	}
}
