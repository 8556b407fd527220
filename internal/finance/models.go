// Package finance holds the pure computation core: transaction aggregation,
// period filtering, and savings goal progress. Functions here never perform
// I/O and never fail; malformed input is rejected at the write boundary via
// the Validate methods.
package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidType     = errors.New("transaction type must be INCOME or EXPENSE")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidTarget   = errors.New("target amount must be positive")
	ErrNegativeCurrent = errors.New("current amount must not be negative")
)

// Transaction is a single recorded income or expense event.
type Transaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time // user-chosen occurrence instant
	CreatedAt   time.Time // store-assigned
}

// Validate checks the write-boundary preconditions for a transaction.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return ErrInvalidType
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// SavingsGoal is a target amount a user is saving toward, with an optional
// deadline. Completed is persisted redundantly; the source of truth is
// CurrentAmount >= TargetAmount.
type SavingsGoal struct {
	ID            string
	UserID        string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Icon          string
	Color         string // hex, e.g. "#7C3AED"
	Deadline      *time.Time
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Completed     bool
}

// Validate checks the write-boundary preconditions for a savings goal.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTarget
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeCurrent
	}
	return nil
}
