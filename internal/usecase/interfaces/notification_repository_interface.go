package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// MarkRead returns a zero-value Notification when the id is unknown.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	List(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) ([]entities.Notification, error)
}
