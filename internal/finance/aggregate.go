package finance

import "github.com/shopspring/decimal"

// Balance returns total income minus total expenses.
func Balance(transactions []Transaction) decimal.Decimal {
	return TotalIncome(transactions).Sub(TotalExpenses(transactions))
}

// TotalIncome sums the amounts of all INCOME transactions. Zero for an empty
// collection.
func TotalIncome(transactions []Transaction) decimal.Decimal {
	return sumByType(transactions, Income)
}

// TotalExpenses sums the amounts of all EXPENSE transactions. Zero for an
// empty collection.
func TotalExpenses(transactions []Transaction) decimal.Decimal {
	return sumByType(transactions, Expense)
}

func sumByType(transactions []Transaction, typ TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == typ {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryTotals maps each category name to the summed amount across all
// transaction types. Income and expenses under the same category name combine;
// category names are unique per type in the predefined catalog except "Otros",
// so callers displaying per-type breakdowns should filter by type first.
func CategoryTotals(transactions []Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
