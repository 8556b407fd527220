package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ProgressPercentage returns the funding ratio as a whole percentage,
// rounded half-up and clamped to [0, 100]. An over-funded goal reports 100.
// A non-positive target reports 0.
func (g SavingsGoal) ProgressPercentage() int {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(oneHundred).Round(0).IntPart()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// RemainingAmount returns how much is still missing, never negative.
func (g SavingsGoal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsReached reports whether the current amount has reached the target.
func (g SavingsGoal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining returns the number of whole 24h periods until the deadline,
// truncated toward zero: a deadline 36 hours away is 1 day, not 2. It is nil
// when no deadline is set and 0 when the deadline is now or past.
func (g SavingsGoal) DaysRemaining(now time.Time) *int {
	if g.Deadline == nil {
		return nil
	}
	days := 0
	if g.Deadline.After(now) {
		days = int(g.Deadline.Sub(now) / (24 * time.Hour))
	}
	return &days
}

// Deposited returns a copy of the goal with amount added, the completed flag
// recomputed, and the updated timestamp refreshed. Persisting the result must
// go through an atomic store update; see the docstore deposit operation.
func (g SavingsGoal) Deposited(amount decimal.Decimal, now time.Time) SavingsGoal {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Completed = g.IsReached()
	g.UpdatedAt = now
	return g
}

// GoalStats summarizes a user's goal portfolio.
type GoalStats struct {
	TotalSaved     decimal.Decimal
	CompletedCount int
	TotalCount     int
}

// ComputeGoalStats derives portfolio totals from a goal collection.
func ComputeGoalStats(goals []SavingsGoal) GoalStats {
	stats := GoalStats{TotalSaved: decimal.Zero, TotalCount: len(goals)}
	for _, g := range goals {
		stats.TotalSaved = stats.TotalSaved.Add(g.CurrentAmount)
		if g.IsReached() {
			stats.CompletedCount++
		}
	}
	return stats
}
