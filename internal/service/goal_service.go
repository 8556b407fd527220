package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/operator/actions"
	"github.com/cruzjeff225/GastoApp/internal/storage"
	"github.com/cruzjeff225/GastoApp/internal/storage/docstore"
)

const defaultGoalIcon = "savings"

// GoalService handles savings goal business logic. Deposits are routed
// through the operator so concurrent writes to the same goal serialize.
type GoalService struct {
	storage  *storage.Storage
	operator actionProcessor
	timeout  time.Duration
	now      func() time.Time
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage, operator actionProcessor, timeout time.Duration) *GoalService {
	return &GoalService{storage: store, operator: operator, timeout: timeout, now: time.Now}
}

// CreateGoal validates and stores a new savings goal, returning its ID.
// Missing icon and color fall back to the catalog defaults.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, goal finance.SavingsGoal) (string, error) {
	goal.UserID = userID
	if goal.Icon == "" {
		goal.Icon = defaultGoalIcon
	}
	if goal.Color == "" {
		goal.Color = finance.DefaultGoalColor
	}
	if err := goal.Validate(); err != nil {
		return "", err
	}
	goal.Completed = goal.IsReached()

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Goals.Insert(ctx, goal)
}

// GetGoal returns one of the user's goals with its derived progress.
func (s *GoalService) GetGoal(ctx context.Context, userID, id string) (*GoalDetail, error) {
	goal, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	detail := newGoalDetail(*goal, s.now().UTC())
	return &detail, nil
}

// ListGoals returns the user's goals with derived progress, newest first,
// together with portfolio stats.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]GoalDetail, finance.GoalStats, error) {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	goals, err := s.storage.Goals.ListByUser(storeCtx, userID)
	if err != nil {
		return nil, finance.GoalStats{}, err
	}

	now := s.now().UTC()
	details := make([]GoalDetail, len(goals))
	for i, goal := range goals {
		details[i] = newGoalDetail(goal, now)
	}
	return details, finance.ComputeGoalStats(goals), nil
}

// UpdateGoal replaces one of the user's goals. The stored creation time and
// current amount are preserved; deposits are the only way to change the
// saved amount.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, id string, goal finance.SavingsGoal) error {
	existing, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	goal.ID = id
	goal.UserID = userID
	goal.CreatedAt = existing.CreatedAt
	goal.CurrentAmount = existing.CurrentAmount
	if goal.Icon == "" {
		goal.Icon = existing.Icon
	}
	if goal.Color == "" {
		goal.Color = existing.Color
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	goal.Completed = goal.IsReached()

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Goals.Replace(ctx, goal)
}

// DeleteGoal removes one of the user's goals.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id string) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Goals.Delete(ctx, id)
}

// AddMoney atomically adds amount to one of the user's goals and returns the
// updated goal with refreshed progress. The amount must be positive.
func (s *GoalService) AddMoney(ctx context.Context, userID, id string, amount decimal.Decimal) (*GoalDetail, error) {
	if !amount.IsPositive() {
		return nil, finance.ErrInvalidAmount
	}
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	action := &actions.DepositToGoal{GoalID: id, Amount: amount, Now: now}
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	if err := s.operator.Process(storeCtx, action); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := newGoalDetail(*action.Updated, now)
	return &detail, nil
}

func (s *GoalService) findOwned(ctx context.Context, userID, id string) (*finance.SavingsGoal, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	goal, err := s.storage.Goals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrNotFound
	}
	return goal, nil
}
