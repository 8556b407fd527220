package transaction

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// mockUpdateService is a mock for transactionUpdater.
type mockUpdateService struct {
	mock.Mock
}

func (m *mockUpdateService) UpdateTransaction(ctx context.Context, userID, id string, tx finance.Transaction) error {
	args := m.Called(ctx, userID, id, tx)
	return args.Error(0)
}

func newUpdateTestAPI(t *testing.T, svc transactionUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	mockSvc := new(mockUpdateService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.Anything, "tx-1", mock.MatchedBy(func(tx finance.Transaction) bool {
		return tx.Amount.Equal(decimal.RequireFromString("9.99")) && tx.Category == "Transporte"
	})).Return(nil)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/tx-1", CreateTransactionBody{
		Type:     "EXPENSE",
		Amount:   "9.99",
		Category: "Transporte",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockUpdateService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.Anything, "missing", mock.Anything).
		Return(service.ErrNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/missing", CreateTransactionBody{
		Type:     "EXPENSE",
		Amount:   "9.99",
		Category: "Transporte",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockUpdateService)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/tx-1", CreateTransactionBody{
		Type:     "EXPENSE",
		Amount:   "not-a-decimal",
		Category: "Transporte",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateTransaction")
}
