package overview

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/handlers/v1/goal"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// Summary is the API model for the transaction side of the overview.
type Summary struct {
	Balance        string            `json:"balance" doc:"Total income minus total expenses"`
	TotalIncome    string            `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpenses  string            `json:"totalExpenses" doc:"Sum of expense amounts"`
	CategoryTotals map[string]string `json:"categoryTotals" doc:"Summed amounts keyed by category name"`
}

// OverviewInput is the Huma input for the overview.
type OverviewInput struct {
	Period string `query:"period" doc:"Restrict the summary to the last week, month, or year"`
}

// OverviewResponseBody is the response body for the overview.
type OverviewResponseBody struct {
	Summary Summary        `json:"summary" doc:"Transaction totals"`
	Goals   []goal.Goal    `json:"goals" doc:"Goals with derived progress, newest first"`
	Stats   goal.GoalStats `json:"stats" doc:"Goal portfolio totals"`
}

// OverviewOutput is the Huma output for the overview.
type OverviewOutput struct {
	Body OverviewResponseBody
}

// overviewProvider is the interface for assembling the overview.
type overviewProvider interface {
	GetOverview(ctx context.Context, userID string, period finance.Period) (*service.Overview, error)
}

// Handler handles GET /v1/overview.
type Handler struct {
	Service overviewProvider
}

// NewHandler creates a new overview Handler.
func NewHandler(svc overviewProvider) *Handler {
	return &Handler{Service: svc}
}

// Register registers the overview endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-overview",
		Method:      http.MethodGet,
		Path:        "/v1/overview",
		Summary:     "Finance overview",
		Description: "Returns the transaction summary and goal portfolio in one response.",
		Tags:        []string{"Overview"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	var period finance.Period
	if input.Period != "" {
		parsed, err := finance.ParsePeriod(input.Period)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid period", err)
		}
		period = parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("overviewMs")
	}
	overview, err := h.Service.GetOverview(ctx, middleware.UserID(ctx), period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build overview", err)
	}

	categoryTotals := make(map[string]string, len(overview.Summary.CategoryTotals))
	for category, total := range overview.Summary.CategoryTotals {
		categoryTotals[category] = total.String()
	}

	resp := OverviewResponseBody{
		Summary: Summary{
			Balance:        overview.Summary.Balance.String(),
			TotalIncome:    overview.Summary.TotalIncome.String(),
			TotalExpenses:  overview.Summary.TotalExpenses.String(),
			CategoryTotals: categoryTotals,
		},
		Goals: make([]goal.Goal, len(overview.Goals)),
		Stats: goal.GoalStats{
			TotalSaved:     overview.GoalStats.TotalSaved.String(),
			CompletedCount: overview.GoalStats.CompletedCount,
			TotalCount:     overview.GoalStats.TotalCount,
		},
	}
	for i, detail := range overview.Goals {
		resp.Goals[i] = goal.FromDetail(detail)
	}

	return &OverviewOutput{Body: resp}, nil
}
