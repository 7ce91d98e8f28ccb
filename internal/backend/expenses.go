package backend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) Expenses(ctx context.Context) ([]entity.Expense, error) {
	var expenses []entity.Expense

	err := c.Get(ctx, Endpoints.Expenses).Decode(&expenses)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return expenses, nil
}

func (c *Client) CreateExpense(ctx context.Context, expense entity.Expense) (entity.Expense, error) {
	var created entity.Expense

	err := c.Post(ctx, Endpoints.Expenses, expense).Decode(&created)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	return created, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id uuid.UUID, expense entity.Expense) (entity.Expense, error) {
	var updated entity.Expense

	err := c.Put(ctx, Endpoints.Expenses+"/"+id.String(), expense).Decode(&updated)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	err := c.Delete(ctx, Endpoints.Expenses+"/"+id.String()).Err()
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	return nil
}
