package service

import (
	"context"
	"errors"
	"time"

	"github.com/cruzjeff225/GastoApp/internal/operator/actions"
	"github.com/cruzjeff225/GastoApp/internal/storage"
)

// ErrNotFound is returned when the requested record does not exist or does
// not belong to the requesting user. Both cases map to the same error so a
// caller cannot probe for other users' record IDs.
var ErrNotFound = errors.New("record not found")

// actionProcessor dispatches actions to the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Goal        *GoalService
}

// NewService creates a new Service with the given storage and operator.
// storeTimeout bounds every store round trip; zero disables the bound.
func NewService(store *storage.Storage, operator actionProcessor, storeTimeout time.Duration) *Service {
	return &Service{
		Transaction: NewTransactionService(store, storeTimeout),
		Goal:        NewGoalService(store, operator, storeTimeout),
	}
}

// storeContext derives the context store calls run under, bounded by the
// configured timeout so a hung store round trip cannot stall a request.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
