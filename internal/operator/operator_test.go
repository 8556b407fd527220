package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/operator/actions"
	"github.com/cruzjeff225/GastoApp/internal/storage"
)

// fakeGoalCollection applies deposits against an in-memory map, guarding the
// read-modify-write with a mutex the way the real store uses a transaction.
type fakeGoalCollection struct {
	mu    sync.Mutex
	goals map[string]finance.SavingsGoal
	err   error
}

func (f *fakeGoalCollection) Insert(ctx context.Context, goal finance.SavingsGoal) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeGoalCollection) FindByID(ctx context.Context, id string) (*finance.SavingsGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	goal, ok := f.goals[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &goal, nil
}

func (f *fakeGoalCollection) ListByUser(ctx context.Context, userID string) ([]finance.SavingsGoal, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGoalCollection) Replace(ctx context.Context, goal finance.SavingsGoal) error {
	return errors.New("not implemented")
}

func (f *fakeGoalCollection) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (f *fakeGoalCollection) ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal, now time.Time) (*finance.SavingsGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	goal, ok := f.goals[id]
	if !ok {
		return nil, errors.New("not found")
	}

	updated := goal.Deposited(amount, now)
	f.goals[id] = updated
	return &updated, nil
}

func newTestDelegator(fake *fakeGoalCollection, workers int) *OperatorDelegator {
	store := &storage.Storage{Goals: fake}
	return NewOperatorDelegator(store, workers, 100)
}

func TestProcess_DepositApplied(t *testing.T) {
	fake := &fakeGoalCollection{goals: map[string]finance.SavingsGoal{
		"g1": {
			ID:            "g1",
			TargetAmount:  decimal.RequireFromString("100"),
			CurrentAmount: decimal.RequireFromString("90"),
		},
	}}

	delegator := newTestDelegator(fake, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.DepositToGoal{
		GoalID: "g1",
		Amount: decimal.RequireFromString("10"),
		Now:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := delegator.Process(context.Background(), action)
	assert.NoError(t, err)
	assert.NotNil(t, action.Updated)
	assert.True(t, action.Updated.CurrentAmount.Equal(decimal.RequireFromString("100")))
	assert.True(t, action.Updated.Completed)
}

func TestProcess_ConcurrentDepositsAllLand(t *testing.T) {
	fake := &fakeGoalCollection{goals: map[string]finance.SavingsGoal{
		"g1": {
			ID:            "g1",
			TargetAmount:  decimal.RequireFromString("1000"),
			CurrentAmount: decimal.Zero,
		},
	}}

	delegator := newTestDelegator(fake, 4)
	delegator.Start()

	const deposits = 50
	var wg sync.WaitGroup
	for i := 0; i < deposits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			action := &actions.DepositToGoal{
				GoalID: "g1",
				Amount: decimal.RequireFromString("1"),
				Now:    time.Now(),
			}
			assert.NoError(t, delegator.Process(context.Background(), action))
		}()
	}
	wg.Wait()
	delegator.Stop()

	goal, err := fake.FindByID(context.Background(), "g1")
	assert.NoError(t, err)
	assert.True(t, goal.CurrentAmount.Equal(decimal.NewFromInt(deposits)),
		"no deposit lost, got %s", goal.CurrentAmount)
}

func TestProcess_StoreErrorPropagates(t *testing.T) {
	fake := &fakeGoalCollection{
		goals: map[string]finance.SavingsGoal{},
		err:   errors.New("store unavailable"),
	}

	delegator := newTestDelegator(fake, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.DepositToGoal{
		GoalID: "g1",
		Amount: decimal.RequireFromString("1"),
		Now:    time.Now(),
	}

	err := delegator.Process(context.Background(), action)
	assert.Error(t, err)
	assert.Equal(t, "store unavailable", err.Error())
	assert.Nil(t, action.Updated)
}

func TestStop_Idempotent(t *testing.T) {
	delegator := newTestDelegator(&fakeGoalCollection{goals: map[string]finance.SavingsGoal{}}, 2)
	delegator.Start()

	delegator.Stop()
	delegator.Stop()
}
