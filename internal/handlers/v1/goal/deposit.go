package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// DepositBody is the request body for adding money to a goal.
type DepositBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount to add, must be positive"`
}

// DepositInput is the Huma input for adding money to a goal.
type DepositInput struct {
	ID   string `path:"id" doc:"Goal ID"`
	Body DepositBody
}

// DepositOutput is the Huma output for adding money to a goal.
type DepositOutput struct {
	Body Goal
}

// goalDepositor is the interface for adding money to goals.
type goalDepositor interface {
	AddMoney(ctx context.Context, userID, id string, amount decimal.Decimal) (*service.GoalDetail, error)
}

// DepositHandler handles POST /v1/goal/{id}/deposit.
type DepositHandler struct {
	GoalService goalDepositor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc goalDepositor) *DepositHandler {
	return &DepositHandler{GoalService: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit-to-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal/{id}/deposit",
		Summary:     "Add money to goal",
		Description: "Atomically adds money to one of the user's goals and returns the updated goal.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	logData := logging.GetLogData(ctx)
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	detail, err := h.GoalService.AddMoney(ctx, middleware.UserID(ctx), input.ID, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidAmount):
			return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", err)
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to add money to goal", err)
		}
	}

	return &DepositOutput{Body: FromDetail(*detail)}, nil
}
