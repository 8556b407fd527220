package storage

import (
	"cloud.google.com/go/firestore"

	"github.com/cruzjeff225/GastoApp/internal/storage/docstore"
)

// Storage aggregates the per-entity document collections.
type Storage struct {
	Transactions docstore.ITransactionCollection
	Goals        docstore.IGoalCollection
}

func NewStorage(client *firestore.Client) *Storage {
	return &Storage{
		Transactions: docstore.NewTransactionsCollection(client),
		Goals:        docstore.NewGoalsCollection(client),
	}
}
