package actions

import (
	"context"

	"github.com/cruzjeff225/GastoApp/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
