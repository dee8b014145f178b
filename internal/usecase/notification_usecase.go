package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrEmptyNotification     = errors.New("empty notification message")
)

// INotificationUseCase exposes the notification feed surfaced by the bell in
// the presentation layer. Emit is called by the order and budget usecases as
// a side effect of their mutations.

type INotificationUseCase interface {
	Emit(ctx context.Context, message string) (entities.Notification, error)
	List(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) Emit(ctx context.Context, message string) (entities.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Notification{}, ErrEmptyNotification
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, n)
}

// List returns the feed newest first.
func (u *NotificationUseCase) List(ctx context.Context) ([]entities.Notification, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context) ([]entities.Notification, error) {
	return u.repo.MarkAllRead(ctx)
}
