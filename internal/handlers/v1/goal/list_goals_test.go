package goal

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// mockListService is a mock for goalLister.
type mockListService struct {
	mock.Mock
}

func (m *mockListService) ListGoals(ctx context.Context, userID string) ([]service.GoalDetail, finance.GoalStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, finance.GoalStats{}, args.Error(2)
	}
	return args.Get(0).([]service.GoalDetail), args.Get(1).(finance.GoalStats), args.Error(2)
}

func newListTestAPI(t *testing.T, svc goalLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListGoalsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListGoals_Success(t *testing.T) {
	days := 30
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	mockSvc := new(mockListService)
	mockSvc.On("ListGoals", mock.Anything, mock.Anything).Return(
		[]service.GoalDetail{{
			Goal: finance.SavingsGoal{
				ID:            "goal-1",
				Name:          "Vacaciones",
				TargetAmount:  decimal.RequireFromString("500"),
				CurrentAmount: decimal.RequireFromString("500"),
				Deadline:      &deadline,
				Completed:     true,
			},
			ProgressPercentage: 100,
			RemainingAmount:    decimal.Zero,
			DaysRemaining:      &days,
		}},
		finance.GoalStats{
			TotalSaved:     decimal.RequireFromString("500"),
			CompletedCount: 1,
			TotalCount:     1,
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/goal/list", struct{}{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListGoalsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Goals, 1)
	assert.Equal(t, 100, body.Goals[0].ProgressPercentage)
	assert.True(t, body.Goals[0].IsCompleted)
	assert.Equal(t, deadline.Format(time.RFC3339), body.Goals[0].Deadline)
	if assert.NotNil(t, body.Goals[0].DaysRemaining) {
		assert.Equal(t, 30, *body.Goals[0].DaysRemaining)
	}
	assert.Equal(t, "500", body.Stats.TotalSaved)
	assert.Equal(t, 1, body.Stats.CompletedCount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListGoals_Empty(t *testing.T) {
	mockSvc := new(mockListService)
	mockSvc.On("ListGoals", mock.Anything, mock.Anything).Return(
		[]service.GoalDetail{}, finance.GoalStats{TotalSaved: decimal.Zero}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/goal/list", struct{}{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListGoalsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Goals)
	assert.Equal(t, 0, body.Stats.TotalCount)
}
