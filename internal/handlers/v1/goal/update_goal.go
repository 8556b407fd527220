package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// UpdateGoalInput is the Huma input for replacing a goal.
type UpdateGoalInput struct {
	ID   string `path:"id" doc:"Goal ID"`
	Body CreateGoalBody
}

// UpdateGoalOutput is the Huma output for replacing a goal.
// It has no body; success is reported as 204.
type UpdateGoalOutput struct{}

// goalUpdater is the interface for replacing goals.
type goalUpdater interface {
	UpdateGoal(ctx context.Context, userID, id string, goal finance.SavingsGoal) error
}

// UpdateGoalHandler handles PUT /v1/goal/{id}.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-goal",
		Method:        http.MethodPut,
		Path:          "/v1/goal/{id}",
		Summary:       "Update savings goal",
		Description:   "Replaces one of the user's goals. The saved amount only changes through deposits.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := parseGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	err = h.GoalService.UpdateGoal(ctx, middleware.UserID(ctx), input.ID, goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		case errors.Is(err, finance.ErrInvalidTarget):
			return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive", err)
		case errors.Is(err, finance.ErrEmptyName):
			return nil, huma.NewError(http.StatusBadRequest, "name must not be empty", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update goal", err)
		}
	}

	return &UpdateGoalOutput{}, nil
}
