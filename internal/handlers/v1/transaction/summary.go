package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/logging"
	"github.com/cruzjeff225/GastoApp/internal/middleware"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// SummaryBody is the request body for the transaction summary.
type SummaryBody struct {
	Period string `json:"period,omitempty" doc:"Restrict to the last week, month, or year"`
}

// SummaryInput is the Huma input for the transaction summary.
type SummaryInput struct {
	Body SummaryBody
}

// SummaryResponseBody is the response body for the transaction summary.
// Amounts are decimal strings.
type SummaryResponseBody struct {
	Balance        string            `json:"balance" doc:"Total income minus total expenses"`
	TotalIncome    string            `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpenses  string            `json:"totalExpenses" doc:"Sum of expense amounts"`
	CategoryTotals map[string]string `json:"categoryTotals" doc:"Summed amounts keyed by category name"`
}

// SummaryOutput is the Huma output for the transaction summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// transactionSummarizer is the interface for computing the summary.
type transactionSummarizer interface {
	Summarize(ctx context.Context, userID string, period finance.Period) (*service.Summary, error)
}

// SummaryHandler handles POST /v1/transaction/summary.
type SummaryHandler struct {
	TransactionService transactionSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc transactionSummarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/summary",
		Summary:     "Transaction summary",
		Description: "Returns balance, income and expense totals, and per-category totals.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	period, err := parsePeriodInput(input.Body.Period)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	summary, err := h.TransactionService.Summarize(ctx, middleware.UserID(ctx), period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}

	categoryTotals := make(map[string]string, len(summary.CategoryTotals))
	for category, total := range summary.CategoryTotals {
		categoryTotals[category] = total.String()
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		Balance:        summary.Balance.String(),
		TotalIncome:    summary.TotalIncome.String(),
		TotalExpenses:  summary.TotalExpenses.String(),
		CategoryTotals: categoryTotals,
	}}, nil
}
