package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gofrs/uuid/v5"
	"google.golang.org/api/iterator"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

var _ ITransactionCollection = (*TransactionsCollection)(nil)

type TransactionsCollection struct {
	client *firestore.Client
}

func NewTransactionsCollection(client *firestore.Client) *TransactionsCollection {
	return &TransactionsCollection{client: client}
}

func (c *TransactionsCollection) col() *firestore.CollectionRef {
	return c.client.Collection(transactionsCollection)
}

// Insert creates a new transaction document and returns its assigned ID.
// The creation timestamp is assigned here, not by the caller.
func (c *TransactionsCollection) Insert(ctx context.Context, tx finance.Transaction) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	tx.CreatedAt = time.Now().UTC()
	if _, err := c.col().Doc(id.String()).Create(ctx, transactionToDoc(tx)); err != nil {
		return "", mapError(err, "failed to create transaction")
	}
	return id.String(), nil
}

func (c *TransactionsCollection) FindByID(ctx context.Context, id string) (*finance.Transaction, error) {
	snap, err := c.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, "failed to get transaction")
	}

	var doc transactionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, mapError(err, "failed to decode transaction")
	}
	return transactionFromDoc(snap.Ref.ID, doc)
}

// ListByUser returns the user's transactions ordered by occurrence date,
// most recent first.
func (c *TransactionsCollection) ListByUser(ctx context.Context, userID string) ([]finance.Transaction, error) {
	iter := c.col().
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var transactions []finance.Transaction
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "failed to list transactions")
		}

		var doc transactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, mapError(err, "failed to decode transaction")
		}
		tx, err := transactionFromDoc(snap.Ref.ID, doc)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, nil
}

// Replace overwrites the document, implementing full-replacement edits.
func (c *TransactionsCollection) Replace(ctx context.Context, tx finance.Transaction) error {
	if _, err := c.col().Doc(tx.ID).Set(ctx, transactionToDoc(tx)); err != nil {
		return mapError(err, "failed to update transaction")
	}
	return nil
}

func (c *TransactionsCollection) Delete(ctx context.Context, id string) error {
	if _, err := c.col().Doc(id).Delete(ctx); err != nil {
		return mapError(err, "failed to delete transaction")
	}
	return nil
}
