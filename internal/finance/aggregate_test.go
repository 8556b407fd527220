package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(typ TransactionType, amount, category string, date time.Time) Transaction {
	return Transaction{
		Type:     typ,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestBalance_EmptyCollection(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
	assert.True(t, TotalIncome(nil).IsZero())
	assert.True(t, TotalExpenses(nil).IsZero())
}

func TestBalance_IncomeMinusExpenses(t *testing.T) {
	d0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx(Income, "1000", "Salario", d0),
		tx(Expense, "200", "Comida", d0),
	}

	assert.True(t, Balance(txs).Equal(decimal.RequireFromString("800")))
	assert.True(t, TotalIncome(txs).Equal(decimal.RequireFromString("1000")))
	assert.True(t, TotalExpenses(txs).Equal(decimal.RequireFromString("200")))

	totals := CategoryTotals(txs)
	assert.Len(t, totals, 2)
	assert.True(t, totals["Salario"].Equal(decimal.RequireFromString("1000")))
	assert.True(t, totals["Comida"].Equal(decimal.RequireFromString("200")))
}

func TestBalance_EqualsIncomeMinusExpensesIdentity(t *testing.T) {
	d0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	collections := [][]Transaction{
		nil,
		{tx(Income, "0.01", "Otros", d0)},
		{tx(Expense, "42.42", "Comida", d0)},
		{
			tx(Income, "150.75", "Freelance", d0),
			tx(Expense, "99.99", "Transporte", d0),
			tx(Income, "12.34", "Regalo", d0),
			tx(Expense, "0.01", "Otros", d0),
		},
	}

	for _, txs := range collections {
		assert.True(t, Balance(txs).Equal(TotalIncome(txs).Sub(TotalExpenses(txs))))
		assert.False(t, TotalIncome(txs).IsNegative())
		assert.False(t, TotalExpenses(txs).IsNegative())
	}
}

func TestBalance_OrderIndependent(t *testing.T) {
	d0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := tx(Income, "10.50", "Salario", d0)
	b := tx(Expense, "3.25", "Comida", d0)
	c := tx(Expense, "1.00", "Comida", d0)

	assert.True(t, Balance([]Transaction{a, b, c}).Equal(Balance([]Transaction{c, a, b})))
}

func TestCategoryTotals_Empty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
	assert.Empty(t, CategoryTotals([]Transaction{}))
}

// Income and expense sharing a category name combine in one bucket. This is
// deliberate; see CategoryTotals.
func TestCategoryTotals_TypeBlind(t *testing.T) {
	d0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx(Expense, "30", "Otros", d0),
		tx(Income, "70", "Otros", d0),
	}

	totals := CategoryTotals(txs)
	assert.Len(t, totals, 1)
	assert.True(t, totals["Otros"].Equal(decimal.RequireFromString("100")))
}

func TestTransactionValidate(t *testing.T) {
	d0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, tx(Income, "10", "Salario", d0).Validate())
	assert.ErrorIs(t, tx(Income, "0", "Salario", d0).Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, tx(Expense, "-5", "Comida", d0).Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, tx(Expense, "5", "  ", d0).Validate(), ErrEmptyCategory)
	assert.ErrorIs(t, tx("TRANSFER", "5", "Comida", d0).Validate(), ErrInvalidType)
}
