package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")
	ErrNoBudgetChanges     = errors.New("no budget changes provided")
)

// BudgetPatch is a partial update: nil fields are left untouched. An update
// with all three fields nil is rejected with ErrNoBudgetChanges so callers
// can tell "nothing to update" apart from success.
type BudgetPatch struct {
	Estado      *string
	Monto       *float64
	Observacion *string
}

// IBudgetUseCase exposes budget operations.

type IBudgetUseCase interface {
	GenerateFromOrder(ctx context.Context, orderID string) (entities.Budget, error)
	Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	orderRepo interfaces.IOrderRepository
	notifier  INotificationUseCase
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, orderRepo interfaces.IOrderRepository, notifier INotificationUseCase) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, orderRepo: orderRepo, notifier: notifier}
}

// GenerateFromOrder creates a new budget seeded from the order's current
// total. Calling it twice for the same order produces two budgets; callers
// are responsible for not duplicating requests.
func (u *BudgetUseCase) GenerateFromOrder(ctx context.Context, orderID string) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if order.ID == "" {
		return entities.Budget{}, ErrOrderNotFound
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Monto:       order.TotalCosto,
		Estado:      entities.BudgetStatusPendiente,
		Observacion: "",
		Order:       order.Snapshot(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	u.notify(ctx, fmt.Sprintf("Presupuesto generado para OT %s (%s)", order.Titulo, order.Patente))
	return created, nil
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if patch.Estado == nil && patch.Monto == nil && patch.Observacion == nil {
		return entities.Budget{}, ErrNoBudgetChanges
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	if patch.Estado != nil {
		estado, ok := entities.NormalizeBudgetStatus(*patch.Estado)
		if !ok {
			return entities.Budget{}, ErrInvalidBudgetStatus
		}
		b.Estado = estado
	}
	if patch.Monto != nil {
		monto := *patch.Monto
		if math.IsNaN(monto) || math.IsInf(monto, 0) || monto < 0 {
			return entities.Budget{}, ErrInvalidBudgetAmount
		}
		b.Monto = monto
	}
	if patch.Observacion != nil {
		obs := *patch.Observacion
		if runes := []rune(obs); len(runes) > entities.ObservacionMaxLen {
			obs = string(runes[:entities.ObservacionMaxLen])
		}
		b.Observacion = obs
	}
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

func (u *BudgetUseCase) notify(ctx context.Context, message string) {
	if u.notifier == nil {
		return
	}
	if _, err := u.notifier.Emit(ctx, message); err != nil {
		log.Printf("[budget][usecase] notification emit failed: %v", err)
	}
}
