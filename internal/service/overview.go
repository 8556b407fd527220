package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// GetOverview assembles the combined snapshot of a user's finances. The
// transaction summary and the goal portfolio are fetched concurrently.
func (s *Service) GetOverview(ctx context.Context, userID string, period finance.Period) (*Overview, error) {
	var (
		summary *Summary
		goals   []GoalDetail
		stats   finance.GoalStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		summary, err = s.Transaction.Summarize(groupCtx, userID, period)
		return err
	})
	group.Go(func() error {
		var err error
		goals, stats, err = s.Goal.ListGoals(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &Overview{Summary: *summary, Goals: goals, GoalStats: stats}, nil
}
