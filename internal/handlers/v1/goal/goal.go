package goal

import (
	"time"

	"github.com/cruzjeff225/GastoApp/internal/service"
)

// Goal is the API response model for a savings goal, including the derived
// progress figures.
type Goal struct {
	ID                 string `json:"id" doc:"Goal ID"`
	Name               string `json:"name" doc:"Goal name"`
	TargetAmount       string `json:"targetAmount" doc:"Decimal target amount"`
	CurrentAmount      string `json:"currentAmount" doc:"Decimal saved amount"`
	Icon               string `json:"icon" doc:"Icon identifier"`
	Color              string `json:"color" doc:"Hex display color"`
	Deadline           string `json:"deadline,omitempty" doc:"RFC3339 deadline, absent when open-ended"`
	Description        string `json:"description,omitempty" doc:"Free-form note"`
	ProgressPercentage int    `json:"progressPercentage" doc:"Whole percentage, 0-100"`
	RemainingAmount    string `json:"remainingAmount" doc:"Decimal amount still missing"`
	DaysRemaining      *int   `json:"daysRemaining,omitempty" doc:"Whole days until the deadline, absent when open-ended"`
	IsCompleted        bool   `json:"isCompleted" doc:"True once the target is reached"`
	CreatedAt          string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt          string `json:"updatedAt" doc:"RFC3339 last modification time"`
}

// FromDetail converts a service-layer goal detail into the API model.
func FromDetail(detail service.GoalDetail) Goal {
	g := detail.Goal
	out := Goal{
		ID:                 g.ID,
		Name:               g.Name,
		TargetAmount:       g.TargetAmount.String(),
		CurrentAmount:      g.CurrentAmount.String(),
		Icon:               g.Icon,
		Color:              g.Color,
		Description:        g.Description,
		ProgressPercentage: detail.ProgressPercentage,
		RemainingAmount:    detail.RemainingAmount.String(),
		DaysRemaining:      detail.DaysRemaining,
		IsCompleted:        g.Completed,
		CreatedAt:          g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          g.UpdatedAt.Format(time.RFC3339),
	}
	if g.Deadline != nil {
		out.Deadline = g.Deadline.Format(time.RFC3339)
	}
	return out
}
