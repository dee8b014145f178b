package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense. Expenses are
// append-only, so there is no update or delete.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
}
