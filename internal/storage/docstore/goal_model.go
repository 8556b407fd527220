package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

// goalDoc is the Firestore document layout for a savings goal.
type goalDoc struct {
	UserID        string     `firestore:"userId"`
	Name          string     `firestore:"name"`
	TargetAmount  string     `firestore:"targetAmount"`
	CurrentAmount string     `firestore:"currentAmount"`
	Icon          string     `firestore:"icon"`
	Color         string     `firestore:"color"`
	Deadline      *time.Time `firestore:"deadline"`
	Description   string     `firestore:"description"`
	CreatedAt     time.Time  `firestore:"createdAt"`
	UpdatedAt     time.Time  `firestore:"updatedAt"`
	Completed     bool       `firestore:"isCompleted"`
}

//go:generate mockery --name IGoalCollection --output mock_IGoalCollection.go

// IGoalCollection defines the store operations for savings goals.
// ApplyDeposit is the only mutation that reads before writing; it must be
// atomic so concurrent deposits never lose an update.
type IGoalCollection interface {
	Insert(ctx context.Context, goal finance.SavingsGoal) (string, error)
	FindByID(ctx context.Context, id string) (*finance.SavingsGoal, error)
	ListByUser(ctx context.Context, userID string) ([]finance.SavingsGoal, error)
	Replace(ctx context.Context, goal finance.SavingsGoal) error
	Delete(ctx context.Context, id string) error
	ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal, now time.Time) (*finance.SavingsGoal, error)
}

func goalToDoc(goal finance.SavingsGoal) goalDoc {
	return goalDoc{
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Icon:          goal.Icon,
		Color:         goal.Color,
		Deadline:      goal.Deadline,
		Description:   goal.Description,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
		Completed:     goal.Completed,
	}
}

func goalFromDoc(id string, doc goalDoc) (*finance.SavingsGoal, error) {
	target, err := decimal.NewFromString(doc.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("goal %s has malformed target amount %q: %w", id, doc.TargetAmount, err)
	}
	current, err := decimal.NewFromString(doc.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("goal %s has malformed current amount %q: %w", id, doc.CurrentAmount, err)
	}
	return &finance.SavingsGoal{
		ID:            id,
		UserID:        doc.UserID,
		Name:          doc.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Icon:          doc.Icon,
		Color:         doc.Color,
		Deadline:      doc.Deadline,
		Description:   doc.Description,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		Completed:     doc.Completed,
	}, nil
}
