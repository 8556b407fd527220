package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cruzjeff225/GastoApp/internal/finance"
	"github.com/cruzjeff225/GastoApp/internal/service"
)

// mockGetService is a mock for transactionGetter.
type mockGetService struct {
	mock.Mock
}

func (m *mockGetService) GetTransaction(ctx context.Context, userID, id string) (*finance.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	mockSvc := new(mockGetService)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything, "tx-1").
		Return(&finance.Transaction{
			ID:       "tx-1",
			Type:     finance.Expense,
			Amount:   decimal.RequireFromString("42.5"),
			Category: "Transporte",
			Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/tx-1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx-1", body.ID)
	assert.Equal(t, "42.5", body.Amount)
	assert.Equal(t, "EXPENSE", body.Type)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockGetService)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything, "missing").
		Return(nil, service.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
