package transaction

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

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type        string `json:"type" required:"true" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Category name"`
	Description string `json:"description,omitempty" doc:"Free-form note"`
	Date        string `json:"date,omitempty" format:"date-time" doc:"RFC3339 occurrence date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"ID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, tx finance.Transaction) (string, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a new income or expense transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseTransactionBody parses and validates the shared create/update body.
func parseTransactionBody(body CreateTransactionBody) (finance.Transaction, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return finance.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := time.Now().UTC()
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return finance.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return finance.Transaction{
		Type:        finance.TransactionType(body.Type),
		Amount:      amount,
		Category:    body.Category,
		Description: body.Description,
		Date:        date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	id, err := h.TransactionService.CreateTransaction(ctx, middleware.UserID(ctx), tx)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidAmount) {
			return nil, huma.NewError(http.StatusBadRequest, "amount must be positive", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id}}, nil
}
