package goal

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// mockGetService is a mock for goalGetter.
type mockGetService struct {
	mock.Mock
}

func (m *mockGetService) GetGoal(ctx context.Context, userID, id string) (*service.GoalDetail, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GoalDetail), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc goalGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetGoalHandler(svc).Register(api)
	return api
}

func TestHTTP_GetGoal_Success(t *testing.T) {
	mockSvc := new(mockGetService)
	mockSvc.On("GetGoal", mock.Anything, mock.Anything, "goal-1").Return(&service.GoalDetail{
		Goal: finance.SavingsGoal{
			ID:            "goal-1",
			Name:          "Auto",
			TargetAmount:  decimal.RequireFromString("10000"),
			CurrentAmount: decimal.RequireFromString("2500"),
			Icon:          "car",
			Color:         "#EF4444",
		},
		ProgressPercentage: 25,
		RemainingAmount:    decimal.RequireFromString("7500"),
	}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/goal/goal-1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Goal
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "goal-1", body.ID)
	assert.Equal(t, 25, body.ProgressPercentage)
	assert.Equal(t, "7500", body.RemainingAmount)
	assert.Nil(t, body.DaysRemaining)
	assert.Empty(t, body.Deadline)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGetService)
	mockSvc.On("GetGoal", mock.Anything, mock.Anything, "missing").
		Return(nil, service.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/goal/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
