package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrMissingOrderField  = errors.New("missing required order field")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidPartLine    = errors.New("invalid part line")
)

// OrderDraft carries the client-supplied creation fields. There is no Estado
// on purpose: creation always starts at Pendiente and any estado sent by the
// client is discarded before it reaches this layer.
type OrderDraft struct {
	Titulo         string
	Patente        string
	Mecanico       string
	Conductor      string
	ProveedorID    string
	Prioridad      string
	Descripcion    string
	FechaSolicitud string
	Repuestos      []entities.PartItem
}

// OrderPatch is a partial update: nil fields are left untouched.
type OrderPatch struct {
	Titulo         *string
	Patente        *string
	Mecanico       *string
	Conductor      *string
	ProveedorID    *string
	Estado         *string
	Prioridad      *string
	Descripcion    *string
	FechaSolicitud *string
	Repuestos      *[]entities.PartItem
}

// IOrderUseCase exposes the work order lifecycle.

type IOrderUseCase interface {
	Create(ctx context.Context, draft OrderDraft) (entities.Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ExportSnapshot(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier INotificationUseCase
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifier INotificationUseCase) *OrderUseCase {
	return &OrderUseCase{repo: repo, notifier: notifier}
}

func (u *OrderUseCase) Create(ctx context.Context, draft OrderDraft) (entities.Order, error) {
	titulo := strings.TrimSpace(draft.Titulo)
	patente := strings.TrimSpace(draft.Patente)
	mecanico := strings.TrimSpace(draft.Mecanico)
	proveedorID := strings.TrimSpace(draft.ProveedorID)
	if titulo == "" || patente == "" || mecanico == "" || proveedorID == "" {
		return entities.Order{}, ErrMissingOrderField
	}

	if err := validateParts(draft.Repuestos); err != nil {
		return entities.Order{}, err
	}

	fecha := strings.TrimSpace(draft.FechaSolicitud)
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	repuestos := draft.Repuestos
	if repuestos == nil {
		repuestos = []entities.PartItem{}
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:             uuid.NewString(),
		Titulo:         titulo,
		Patente:        patente,
		Mecanico:       mecanico,
		Conductor:      strings.TrimSpace(draft.Conductor),
		ProveedorID:    proveedorID,
		Prioridad:      entities.NormalizePriority(draft.Prioridad),
		Estado:         entities.OrderStatusPendiente,
		Descripcion:    strings.TrimSpace(draft.Descripcion),
		FechaSolicitud: fecha,
		Repuestos:      repuestos,
		TotalCosto:     entities.PartsTotal(repuestos),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	u.notify(ctx, fmt.Sprintf("Nueva OT creada: %s (%s)", created.Titulo, created.Patente))
	return created, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, patch OrderPatch) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	// Validate before applying: an invalid estado must leave the stored order
	// untouched.
	if patch.Estado != nil {
		estado, ok := entities.NormalizeOrderStatus(*patch.Estado)
		if !ok {
			return entities.Order{}, ErrInvalidOrderStatus
		}
		o.Estado = estado
	}
	if patch.Prioridad != nil {
		o.Prioridad = entities.NormalizePriority(*patch.Prioridad)
	}
	if patch.Repuestos != nil {
		if err := validateParts(*patch.Repuestos); err != nil {
			return entities.Order{}, err
		}
		repuestos := *patch.Repuestos
		if repuestos == nil {
			repuestos = []entities.PartItem{}
		}
		o.Repuestos = repuestos
		o.TotalCosto = entities.PartsTotal(repuestos)
	}
	if patch.Titulo != nil {
		o.Titulo = strings.TrimSpace(*patch.Titulo)
	}
	if patch.Patente != nil {
		o.Patente = strings.TrimSpace(*patch.Patente)
	}
	if patch.Mecanico != nil {
		o.Mecanico = strings.TrimSpace(*patch.Mecanico)
	}
	if patch.Conductor != nil {
		o.Conductor = strings.TrimSpace(*patch.Conductor)
	}
	if patch.ProveedorID != nil {
		o.ProveedorID = strings.TrimSpace(*patch.ProveedorID)
	}
	if patch.Descripcion != nil {
		o.Descripcion = strings.TrimSpace(*patch.Descripcion)
	}
	if patch.FechaSolicitud != nil {
		o.FechaSolicitud = strings.TrimSpace(*patch.FechaSolicitud)
	}
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// Delete removes the order. Budgets generated from it are left in place with
// their stale order snapshot; there is no cascade.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrOrderNotFound
	}
	return nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

// ExportSnapshot returns a serializable copy of the order for download.
func (u *OrderUseCase) ExportSnapshot(ctx context.Context, id string) (entities.Order, error) {
	return u.GetByID(ctx, id)
}

// notify is best effort: a failed notification never rolls back the mutation
// it announces.
func (u *OrderUseCase) notify(ctx context.Context, message string) {
	if u.notifier == nil {
		return
	}
	if _, err := u.notifier.Emit(ctx, message); err != nil {
		log.Printf("[order][usecase] notification emit failed: %v", err)
	}
}

func validateParts(parts []entities.PartItem) error {
	for _, p := range parts {
		if p.Cantidad < 0 || p.Costo < 0 {
			return ErrInvalidPartLine
		}
	}
	return nil
}
