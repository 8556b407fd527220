package goal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
)

// CreateGoalBody is the request body for creating a savings goal.
type CreateGoalBody struct {
	Name         string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Decimal target, must be positive"`
	Icon         string `json:"icon,omitempty" doc:"Icon identifier, defaults to savings"`
	Color        string `json:"color,omitempty" doc:"Hex display color, defaults to the catalog default"`
	Deadline     string `json:"deadline,omitempty" format:"date-time" doc:"RFC3339 deadline, omit for open-ended"`
	Description  string `json:"description,omitempty" doc:"Free-form note"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalResponse is the response body for creating a goal.
type CreateGoalResponse struct {
	ID string `json:"id" doc:"ID of the created goal"`
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Body CreateGoalResponse
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	CreateGoal(ctx context.Context, userID string, goal finance.SavingsGoal) (string, error)
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goal",
		Summary:       "Create savings goal",
		Description:   "Creates a new savings goal starting at zero saved.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseGoalBody parses and validates the shared create/update body.
func parseGoalBody(body CreateGoalBody) (finance.SavingsGoal, error) {
	target, err := decimal.NewFromString(body.TargetAmount)
	if err != nil {
		return finance.SavingsGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	var deadline *time.Time
	if body.Deadline != "" {
		parsed, parseErr := time.Parse(time.RFC3339, body.Deadline)
		if parseErr != nil {
			return finance.SavingsGoal{}, huma.NewError(http.StatusBadRequest, "invalid deadline", parseErr)
		}
		deadline = &parsed
	}

	return finance.SavingsGoal{
		Name:         body.Name,
		TargetAmount: target,
		Icon:         body.Icon,
		Color:        body.Color,
		Deadline:     deadline,
		Description:  body.Description,
	}, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := parseGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	id, err := h.GoalService.CreateGoal(ctx, middleware.UserID(ctx), goal)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidTarget) {
			return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create goal", err)
	}

	return &CreateGoalOutput{Body: CreateGoalResponse{ID: id}}, nil
}
