// Package docstore implements the record store on Cloud Firestore. Documents
// are keyed by store-assigned UUID strings and always carry the owning user's
// ID; monetary amounts are stored as decimal strings to avoid float drift.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// transactionDoc is the Firestore document layout for a transaction.
type transactionDoc struct {
	UserID      string    `firestore:"userId"`
	Type        string    `firestore:"type"`
	Amount      string    `firestore:"amount"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description"`
	Date        time.Time `firestore:"date"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

//go:generate mockery --name ITransactionCollection --output mock_ITransactionCollection.go

// ITransactionCollection defines the store operations for transactions.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionCollection interface {
	Insert(ctx context.Context, tx finance.Transaction) (string, error)
	FindByID(ctx context.Context, id string) (*finance.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]finance.Transaction, error)
	Replace(ctx context.Context, tx finance.Transaction) error
	Delete(ctx context.Context, id string) error
}

func transactionToDoc(tx finance.Transaction) transactionDoc {
	return transactionDoc{
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
	}
}

func transactionFromDoc(id string, doc transactionDoc) (*finance.Transaction, error) {
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s has malformed amount %q: %w", id, doc.Amount, err)
	}
	return &finance.Transaction{
		ID:          id,
		UserID:      doc.UserID,
		Type:        finance.TransactionType(doc.Type),
		Amount:      amount,
		Category:    doc.Category,
		Description: doc.Description,
		Date:        doc.Date,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
