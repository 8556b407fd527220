package transaction

import (
	"time"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction ID"`
	Type        string `json:"type" doc:"INCOME or EXPENSE"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Category name"`
	Description string `json:"description,omitempty" doc:"Free-form note"`
	Date        string `json:"date" doc:"RFC3339 occurrence date"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromFinance(tx finance.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
