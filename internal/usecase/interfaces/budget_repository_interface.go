package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
}
