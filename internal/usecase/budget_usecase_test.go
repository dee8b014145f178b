package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gestion_flota/internal/domain/entities"
	mock_interfaces "gestion_flota/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_GenerateFromOrder(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.GenerateFromOrder(context.Background(), "   "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBudgetUseCase(nil, orderRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		if _, err := uc.GenerateFromOrder(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("seeds monto from order total and embeds snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier, notifRepo := newNotifier(ctrl)
		uc := NewBudgetUseCase(repo, orderRepo, notifier)

		order := entities.Order{
			ID:         "ot-1",
			Titulo:     "Cambio de frenos",
			Patente:    "AB-1234",
			TotalCosto: 60000,
		}
		orderRepo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(order, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.OrderID != "ot-1" {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.Monto != 60000 {
					t.Fatalf("expected monto 60000, got %v", b.Monto)
				}
				if b.Estado != entities.BudgetStatusPendiente {
					t.Fatalf("expected Pendiente, got %q", b.Estado)
				}
				if b.Order.Titulo != "Cambio de frenos" || b.Order.Patente != "AB-1234" {
					t.Fatalf("unexpected snapshot: %+v", b.Order)
				}
				return b, nil
			},
		)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				return n, nil
			},
		)

		created, err := uc.GenerateFromOrder(context.Background(), "ot-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Observacion != "" {
			t.Fatalf("expected empty observacion, got %q", created.Observacion)
		}
	})

	t.Run("regeneration appends a second budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBudgetUseCase(repo, orderRepo, nil)

		order := entities.Order{ID: "ot-1", TotalCosto: 100}
		orderRepo.EXPECT().GetByID(gomock.Any(), "ot-1").Return(order, nil).Times(2)

		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if seen[b.ID] {
					t.Fatalf("duplicate budget id %q", b.ID)
				}
				seen[b.ID] = true
				return b, nil
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.GenerateFromOrder(context.Background(), "ot-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	strp := func(s string) *string { return &s }
	fltp := func(f float64) *float64 { return &f }

	existing := entities.Budget{
		ID:      "pre-1",
		OrderID: "ot-1",
		Monto:   60000,
		Estado:  entities.BudgetStatusPendiente,
	}

	t.Run("no changes", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.Update(context.Background(), "pre-1", BudgetPatch{}); !errors.Is(err, ErrNoBudgetChanges) {
			t.Fatalf("expected ErrNoBudgetChanges, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, nil)

		if _, err := uc.Update(context.Background(), "missing", BudgetPatch{Monto: fltp(10)}); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("estado round trips through all canonical values", func(t *testing.T) {
		for _, estado := range []entities.BudgetStatus{
			entities.BudgetStatusPendiente,
			entities.BudgetStatusAprobado,
			entities.BudgetStatusParcial,
			entities.BudgetStatusRechazado,
		} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "pre-1").Return(existing, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
			)

			// Arbitrary case on input: normalization decides the stored value.
			updated, err := uc.Update(context.Background(), "pre-1", BudgetPatch{Estado: strp(strings.ToUpper(string(estado)))})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", estado, err)
			}
			if updated.Estado != estado {
				t.Fatalf("expected %q, got %q", estado, updated.Estado)
			}
			ctrl.Finish()
		}
	})

	t.Run("invalid estado leaves stored budget unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pre-1").Return(existing, nil)

		if _, err := uc.Update(context.Background(), "pre-1", BudgetPatch{Estado: strp("en progreso")}); !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("negative monto rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pre-1").Return(existing, nil)

		if _, err := uc.Update(context.Background(), "pre-1", BudgetPatch{Monto: fltp(-1)}); !errors.Is(err, ErrInvalidBudgetAmount) {
			t.Fatalf("expected ErrInvalidBudgetAmount, got %v", err)
		}
	})

	t.Run("observacion truncated at cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pre-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		long := strings.Repeat("x", entities.ObservacionMaxLen+50)
		updated, err := uc.Update(context.Background(), "pre-1", BudgetPatch{Observacion: &long})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Observacion) != entities.ObservacionMaxLen {
			t.Fatalf("expected %d chars, got %d", entities.ObservacionMaxLen, len(updated.Observacion))
		}
	})

	t.Run("monto edit does not touch estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		aprobado := existing
		aprobado.Estado = entities.BudgetStatusAprobado
		repo.EXPECT().GetByID(gomock.Any(), "pre-1").Return(aprobado, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		updated, err := uc.Update(context.Background(), "pre-1", BudgetPatch{Monto: fltp(75000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Monto != 75000 || updated.Estado != entities.BudgetStatusAprobado {
			t.Fatalf("unexpected budget: %+v", updated)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, nil)

		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}
