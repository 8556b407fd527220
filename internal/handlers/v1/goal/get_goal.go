package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// GetGoalInput is the Huma input for fetching one goal.
type GetGoalInput struct {
	ID string `path:"id" doc:"Goal ID"`
}

// GetGoalOutput is the Huma output for fetching one goal.
type GetGoalOutput struct {
	Body Goal
}

// goalGetter is the interface for fetching one goal.
type goalGetter interface {
	GetGoal(ctx context.Context, userID, id string) (*service.GoalDetail, error)
}

// GetGoalHandler handles GET /v1/goal/{id}.
type GetGoalHandler struct {
	GoalService goalGetter
}

// NewGetGoalHandler creates a new GetGoalHandler.
func NewGetGoalHandler(svc goalGetter) *GetGoalHandler {
	return &GetGoalHandler{GoalService: svc}
}

// Register registers the get goal endpoint with the Huma API.
func (h *GetGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goal/{id}",
		Summary:     "Get savings goal",
		Description: "Returns one of the user's goals with derived progress.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *GetGoalHandler) handle(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	detail, err := h.GoalService.GetGoal(ctx, middleware.UserID(ctx), input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get goal", err)
	}

	return &GetGoalOutput{Body: FromDetail(*detail)}, nil
}
