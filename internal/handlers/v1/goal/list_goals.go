package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	Body struct{}
}

// GoalStats is the API model for portfolio-level figures.
type GoalStats struct {
	TotalSaved     string `json:"totalSaved" doc:"Decimal sum of saved amounts across all goals"`
	CompletedCount int    `json:"completedCount" doc:"Number of goals that reached their target"`
	TotalCount     int    `json:"totalCount" doc:"Total number of goals"`
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal    `json:"goals" doc:"Goals, newest first"`
	Stats GoalStats `json:"stats" doc:"Portfolio totals"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals.
type goalLister interface {
	ListGoals(ctx context.Context, userID string) ([]service.GoalDetail, finance.GoalStats, error)
}

// ListGoalsHandler handles POST /v1/goal/list.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodPost,
		Path:        "/v1/goal/list",
		Summary:     "List savings goals",
		Description: "Returns the user's goals with derived progress and portfolio totals.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listGoalsMs")
	}
	details, stats, err := h.GoalService.ListGoals(ctx, middleware.UserID(ctx))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	if logData != nil {
		logData.AddData("goalCount", len(details))
	}

	resp := ListGoalsResponseBody{
		Goals: make([]Goal, len(details)),
		Stats: GoalStats{
			TotalSaved:     stats.TotalSaved.String(),
			CompletedCount: stats.CompletedCount,
			TotalCount:     stats.TotalCount,
		},
	}
	for i, detail := range details {
		resp.Goals[i] = FromDetail(detail)
	}

	return &ListGoalsOutput{Body: resp}, nil
}
