package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// DeleteGoalInput is the Huma input for deleting a goal.
type DeleteGoalInput struct {
	ID string `path:"id" doc:"Goal ID"`
}

// DeleteGoalOutput is the Huma output for deleting a goal.
type DeleteGoalOutput struct{}

// goalDeleter is the interface for deleting goals.
type goalDeleter interface {
	DeleteGoal(ctx context.Context, userID, id string) error
}

// DeleteGoalHandler handles DELETE /v1/goal/{id}.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

// NewDeleteGoalHandler creates a new DeleteGoalHandler.
func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

// Register registers the delete goal endpoint with the Huma API.
func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goal/{id}",
		Summary:       "Delete savings goal",
		Description:   "Removes one of the user's goals.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	err := h.GoalService.DeleteGoal(ctx, middleware.UserID(ctx), input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete goal", err)
	}

	return &DeleteGoalOutput{}, nil
}
