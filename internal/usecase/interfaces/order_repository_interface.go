package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Missing ids are signalled with a zero-value Order (empty ID), never with an
// error; the usecase layer translates that into its NotFound sentinel.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
