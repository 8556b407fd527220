package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/storage"
)

// DepositToGoal adds money to a savings goal. The store applies the
// read-modify-write atomically; routing the action through the operator
// additionally keeps goal mutations off the request goroutines.
type DepositToGoal struct {
	GoalID string
	Amount decimal.Decimal
	Now    time.Time

	// Updated is populated with the post-deposit goal snapshot on success.
	Updated *finance.SavingsGoal

	IAction
}

func (d *DepositToGoal) Perform(ctx context.Context, store *storage.Storage) error {
	updated, err := store.Goals.ApplyDeposit(ctx, d.GoalID, d.Amount, d.Now)
	if err != nil {
		return err
	}

	d.Updated = updated
	return nil
}
