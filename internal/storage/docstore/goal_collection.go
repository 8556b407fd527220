package docstore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/cruzjeff225/GastoApp/internal/finance"
)

var _ IGoalCollection = (*GoalsCollection)(nil)

type GoalsCollection struct {
	client *firestore.Client
}

func NewGoalsCollection(client *firestore.Client) *GoalsCollection {
	return &GoalsCollection{client: client}
}

func (c *GoalsCollection) col() *firestore.CollectionRef {
	return c.client.Collection(goalsCollection)
}

// Insert creates a new goal document and returns its assigned ID. Created and
// updated timestamps are assigned here.
func (c *GoalsCollection) Insert(ctx context.Context, goal finance.SavingsGoal) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if _, err := c.col().Doc(id.String()).Create(ctx, goalToDoc(goal)); err != nil {
		return "", mapError(err, "failed to create goal")
	}
	return id.String(), nil
}

func (c *GoalsCollection) FindByID(ctx context.Context, id string) (*finance.SavingsGoal, error) {
	snap, err := c.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, "failed to get goal")
	}

	var doc goalDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, mapError(err, "failed to decode goal")
	}
	return goalFromDoc(snap.Ref.ID, doc)
}

// ListByUser returns the user's goals, most recently created first. Ordering
// happens client-side; an OrderBy on a second field would require a composite
// index on the collection.
func (c *GoalsCollection) ListByUser(ctx context.Context, userID string) ([]finance.SavingsGoal, error) {
	iter := c.col().Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var goals []finance.SavingsGoal
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "failed to list goals")
		}

		var doc goalDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, mapError(err, "failed to decode goal")
		}
		goal, err := goalFromDoc(snap.Ref.ID, doc)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

// Replace overwrites the document, refreshing the updated timestamp.
func (c *GoalsCollection) Replace(ctx context.Context, goal finance.SavingsGoal) error {
	goal.UpdatedAt = time.Now().UTC()
	if _, err := c.col().Doc(goal.ID).Set(ctx, goalToDoc(goal)); err != nil {
		return mapError(err, "failed to update goal")
	}
	return nil
}

func (c *GoalsCollection) Delete(ctx context.Context, id string) error {
	if _, err := c.col().Doc(id).Delete(ctx); err != nil {
		return mapError(err, "failed to delete goal")
	}
	return nil
}

// ApplyDeposit adds amount to the goal's current amount inside a Firestore
// transaction, so two concurrent deposits both land instead of one clobbering
// the other. Returns the updated goal snapshot.
func (c *GoalsCollection) ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal, now time.Time) (*finance.SavingsGoal, error) {
	ref := c.col().Doc(id)

	var updated finance.SavingsGoal
	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapError(err, "failed to get goal")
		}

		var doc goalDoc
		if err := snap.DataTo(&doc); err != nil {
			return mapError(err, "failed to decode goal")
		}
		goal, err := goalFromDoc(snap.Ref.ID, doc)
		if err != nil {
			return err
		}

		updated = goal.Deposited(amount, now)
		return tx.Set(ref, goalToDoc(updated))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
