package service

import (
	"context"
	"errors"
	"time"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/storage"
	"github.com/cruzjeff225/GastoApp/internal/storage/docstore"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	timeout time.Duration
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, timeout time.Duration) *TransactionService {
	return &TransactionService{storage: store, timeout: timeout, now: time.Now}
}

// CreateTransaction validates and stores a new transaction, returning its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, tx finance.Transaction) (string, error) {
	tx.UserID = userID
	if err := tx.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Transactions.Insert(ctx, tx)
}

// GetTransaction returns one of the user's transactions by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id string) (*finance.Transaction, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	tx, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ErrNotFound
	}
	return tx, nil
}

// ListTransactions returns the user's transactions, newest first, optionally
// restricted to the given period relative to the current time.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, period finance.Period) ([]finance.Transaction, error) {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.storage.Transactions.ListByUser(storeCtx, userID)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return rows, nil
	}
	return finance.FilterByPeriod(rows, s.now().UTC(), period), nil
}

// UpdateTransaction replaces one of the user's transactions. The stored
// creation time is preserved; everything else comes from the replacement.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id string, tx finance.Transaction) error {
	existing, err := s.GetTransaction(ctx, userID, id)
	if err != nil {
		return err
	}

	tx.ID = id
	tx.UserID = userID
	tx.CreatedAt = existing.CreatedAt
	if err := tx.Validate(); err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Transactions.Replace(ctx, tx)
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id string) error {
	if _, err := s.GetTransaction(ctx, userID, id); err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.storage.Transactions.Delete(ctx, id)
}

// Summarize computes balance, income and expense totals, and per-category
// totals over the user's transactions, optionally restricted to a period.
func (s *TransactionService) Summarize(ctx context.Context, userID string, period finance.Period) (*Summary, error) {
	rows, err := s.ListTransactions(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Balance:        finance.Balance(rows),
		TotalIncome:    finance.TotalIncome(rows),
		TotalExpenses:  finance.TotalExpenses(rows),
		CategoryTotals: finance.CategoryTotals(rows),
	}, nil
}
