package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_flota/internal/domain/entities"
	mock_interfaces "gestion_flota/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// newNotifier returns a real notification usecase backed by a permissive
// repository mock, so order/budget tests don't have to care about the side
// channel.
func newNotifier(ctrl *gomock.Controller) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository) {
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewNotificationUseCase(repo), repo
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		for _, draft := range []OrderDraft{
			{Patente: "AB-1234", Mecanico: "J. Perez", ProveedorID: "1"},
			{Titulo: "Cambio de frenos", Mecanico: "J. Perez", ProveedorID: "1"},
			{Titulo: "Cambio de frenos", Patente: "AB-1234", ProveedorID: "1"},
			{Titulo: "Cambio de frenos", Patente: "AB-1234", Mecanico: "   "},
		} {
			if _, err := uc.Create(context.Background(), draft); !errors.Is(err, ErrMissingOrderField) {
				t.Fatalf("expected ErrMissingOrderField, got %v", err)
			}
		}
	})

	t.Run("negative part line rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		draft := OrderDraft{
			Titulo: "OT", Patente: "AB-1234", Mecanico: "M", ProveedorID: "1",
			Repuestos: []entities.PartItem{{Nombre: "Pastillas", Cantidad: -1, Costo: 100}},
		}
		if _, err := uc.Create(context.Background(), draft); !errors.Is(err, ErrInvalidPartLine) {
			t.Fatalf("expected ErrInvalidPartLine, got %v", err)
		}
	})

	t.Run("create success forces Pendiente and computes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier, notifRepo := newNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Estado != entities.OrderStatusPendiente {
					t.Fatalf("expected Pendiente, got %q", o.Estado)
				}
				if o.TotalCosto != 60000 {
					t.Fatalf("expected total 60000, got %v", o.TotalCosto)
				}
				if o.Prioridad != entities.PriorityAlta {
					t.Fatalf("expected Alta, got %q", o.Prioridad)
				}
				if o.FechaSolicitud == "" {
					t.Fatalf("expected defaulted fechaSolicitud")
				}
				return o, nil
			},
		)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Message == "" || n.Read {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)

		created, err := uc.Create(context.Background(), OrderDraft{
			Titulo:      " Cambio de frenos ",
			Patente:     "AB-1234",
			Mecanico:    "J. Perez",
			ProveedorID: "1",
			Prioridad:   "ALTA",
			Repuestos:   []entities.PartItem{{Nombre: "Pastillas", Cantidad: 4, Costo: 15000}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Titulo != "Cambio de frenos" {
			t.Fatalf("expected trimmed titulo, got %q", created.Titulo)
		}
	})

	t.Run("empty priority defaults to Media", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Prioridad != entities.PriorityMedia {
					t.Fatalf("expected Media fallback, got %q", o.Prioridad)
				}
				if o.TotalCosto != 0 || len(o.Repuestos) != 0 {
					t.Fatalf("expected empty parts and zero total: %+v", o)
				}
				return o, nil
			},
		)

		if _, err := uc.Create(context.Background(), OrderDraft{
			Titulo: "OT", Patente: "AB-1234", Mecanico: "M", ProveedorID: "1",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	existing := entities.Order{
		ID:          "ot-1",
		Titulo:      "Cambio de frenos",
		Patente:     "AB-1234",
		Mecanico:    "J. Perez",
		ProveedorID: "1",
		Prioridad:   entities.PriorityMedia,
		Estado:      entities.OrderStatusPendiente,
		Repuestos:   []entities.PartItem{{Nombre: "Pastillas", Cantidad: 4, Costo: 15000}},
		TotalCosto:  60000,
	}

	strp := func(s string) *string { return &s }

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		if _, err := uc.Update(context.Background(), "missing", OrderPatch{Titulo: strp("x")}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("invalid estado leaves order unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		// No repo.Update expectation: the write must never happen.
		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(existing, nil)

		if _, err := uc.Update(context.Background(), "ot-1", OrderPatch{Estado: strp("inexistente")}); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("estado normalizes from synonyms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Estado != entities.OrderStatusEnProgreso {
					t.Fatalf("expected En progreso, got %q", o.Estado)
				}
				if o.TotalCosto != 60000 {
					t.Fatalf("total must not change on status update, got %v", o.TotalCosto)
				}
				return o, nil
			},
		)

		updated, err := uc.Update(context.Background(), "ot-1", OrderPatch{Estado: strp("en_progreso")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Estado != entities.OrderStatusEnProgreso {
			t.Fatalf("unexpected estado %q", updated.Estado)
		}
	})

	t.Run("repuestos recompute total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.TotalCosto != 17980 {
					t.Fatalf("expected recomputed total 17980, got %v", o.TotalCosto)
				}
				return o, nil
			},
		)

		parts := []entities.PartItem{{Nombre: "Filtro", Cantidad: 2, Costo: 8990}}
		if _, err := uc.Update(context.Background(), "ot-1", OrderPatch{Repuestos: &parts}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown priority falls back to Media", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		alta := existing
		alta.Prioridad = entities.PriorityAlta
		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(alta, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Prioridad != entities.PriorityMedia {
					t.Fatalf("expected Media fallback, got %q", o.Prioridad)
				}
				return o, nil
			},
		)

		if _, err := uc.Update(context.Background(), "ot-1", OrderPatch{Prioridad: strp("urgente")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "ot-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "ot-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("repeated reads return equal snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		stored := entities.Order{ID: "ot-1", Titulo: "OT", Patente: "AB-1234"}
		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(stored, nil).Times(2)

		first, err := uc.GetByID(context.Background(), "ot-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.GetByID(context.Background(), "ot-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != second.ID || first.Titulo != second.Titulo || first.Patente != second.Patente {
			t.Fatalf("snapshots differ: %+v vs %+v", first, second)
		}
	})

	t.Run("storage error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(entities.Order{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), "ot-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
