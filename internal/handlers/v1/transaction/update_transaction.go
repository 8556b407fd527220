package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction ID"`
	Body CreateTransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
// It has no body; success is reported as 204.
type UpdateTransactionOutput struct{}

// transactionUpdater is the interface for replacing transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, id string, tx finance.Transaction) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Replaces one of the user's transactions. The creation time is preserved.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	err = h.TransactionService.UpdateTransaction(ctx, middleware.UserID(ctx), input.ID, tx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		case errors.Is(err, finance.ErrInvalidAmount):
			return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", err)
		case errors.Is(err, finance.ErrEmptyCategory):
			return nil, huma.NewError(http.StatusBadRequest, "category must not be empty", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
		}
	}

	return &UpdateTransactionOutput{}, nil
}
