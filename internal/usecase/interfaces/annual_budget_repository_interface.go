package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// IAnnualBudgetRepository persists the singleton annual cap. Get returns a
// zero-value AnnualBudget (cap 0) when none has been configured yet.

type IAnnualBudgetRepository interface {
	Get(ctx context.Context) (entities.AnnualBudget, error)
	Put(ctx context.Context, b entities.AnnualBudget) (entities.AnnualBudget, error)
}
