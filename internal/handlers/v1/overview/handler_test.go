package overview

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

// mockOverviewService is a mock for overviewProvider.
type mockOverviewService struct {
	mock.Mock
}

func (m *mockOverviewService) GetOverview(ctx context.Context, userID string, period finance.Period) (*service.Overview, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Overview), args.Error(1)
}

func newTestAPI(t *testing.T, svc overviewProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_Overview_Success(t *testing.T) {
	mockSvc := new(mockOverviewService)
	mockSvc.On("GetOverview", mock.Anything, mock.Anything, finance.Period("")).
		Return(&service.Overview{
			Summary: service.Summary{
				Balance:       decimal.RequireFromString("800"),
				TotalIncome:   decimal.RequireFromString("1000"),
				TotalExpenses: decimal.RequireFromString("200"),
				CategoryTotals: map[string]decimal.Decimal{
					"Comida": decimal.RequireFromString("200"),
				},
			},
			Goals: []service.GoalDetail{{
				Goal: finance.SavingsGoal{
					ID:            "goal-1",
					Name:          "Vacaciones",
					TargetAmount:  decimal.RequireFromString("500"),
					CurrentAmount: decimal.RequireFromString("250"),
				},
				ProgressPercentage: 50,
				RemainingAmount:    decimal.RequireFromString("250"),
			}},
			GoalStats: finance.GoalStats{
				TotalSaved: decimal.RequireFromString("250"),
				TotalCount: 1,
			},
		}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/overview")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body OverviewResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "800", body.Summary.Balance)
	assert.Len(t, body.Goals, 1)
	assert.Equal(t, 50, body.Goals[0].ProgressPercentage)
	assert.Equal(t, "250", body.Stats.TotalSaved)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Overview_PeriodForwarded(t *testing.T) {
	mockSvc := new(mockOverviewService)
	mockSvc.On("GetOverview", mock.Anything, mock.Anything, finance.PeriodMonth).
		Return(&service.Overview{
			Summary: service.Summary{
				Balance:        decimal.Zero,
				TotalIncome:    decimal.Zero,
				TotalExpenses:  decimal.Zero,
				CategoryTotals: map[string]decimal.Decimal{},
			},
		}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/overview?period=month")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Overview_InvalidPeriod(t *testing.T) {
	mockSvc := new(mockOverviewService)

	resp := newTestAPI(t, mockSvc).Get("/v1/overview?period=quarter")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetOverview")
}
