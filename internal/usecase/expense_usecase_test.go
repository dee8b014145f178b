package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"gestion_flota/internal/domain/entities"
	mock_interfaces "gestion_flota/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase_Record(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		for _, draft := range []ExpenseDraft{
			{Concepto: "Combustible", Costo: 100},
			{Patente: "AB-1234", Costo: 100},
			{Patente: "  ", Concepto: "Combustible", Costo: 100},
		} {
			if _, err := uc.Record(context.Background(), draft); !errors.Is(err, ErrMissingExpenseField) {
				t.Fatalf("expected ErrMissingExpenseField, got %v", err)
			}
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		for _, costo := range []float64{-1, math.NaN(), math.Inf(1)} {
			draft := ExpenseDraft{Patente: "AB-1234", Concepto: "Combustible", Costo: costo}
			if _, err := uc.Record(context.Background(), draft); !errors.Is(err, ErrInvalidExpenseAmount) {
				t.Fatalf("expected ErrInvalidExpenseAmount for %v, got %v", costo, err)
			}
		}
	})

	t.Run("zero cost accepted and fecha defaulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if len(e.Fecha) != 10 {
					t.Fatalf("expected defaulted YYYY-MM-DD fecha, got %q", e.Fecha)
				}
				return e, nil
			},
		)

		if _, err := uc.Record(context.Background(), ExpenseDraft{Patente: "AB-1234", Concepto: "Peaje", Costo: 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps attachment reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.BoletaPath != "boletas/2025/b-1.pdf" || e.ProveedorID != "prov-7" {
					t.Fatalf("unexpected expense: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.Record(context.Background(), ExpenseDraft{
			Patente:     "AB-1234",
			Concepto:    "Neumaticos",
			Costo:       250000,
			Fecha:       "2025-06-10",
			ProveedorID: "prov-7",
			BoletaPath:  "boletas/2025/b-1.pdf",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExpenseUseCase_FilterByPeriod(t *testing.T) {
	expenses := []entities.Expense{
		{ID: "1", Fecha: "2025-06-10", Costo: 100},
		{ID: "2", Fecha: "2025-06-28", Costo: 200},
		{ID: "3", Fecha: "2025-07-01", Costo: 300},
		{ID: "4", Fecha: "2024-12-31", Costo: 400},
		{ID: "5", Fecha: "", Costo: 500},
	}

	list := func(t *testing.T, filterType, filterValue string) []entities.Expense {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(expenses, nil)
		uc := NewExpenseUseCase(repo)

		got, err := uc.FilterByPeriod(context.Background(), filterType, filterValue)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return got
	}

	t.Run("todos returns everything", func(t *testing.T) {
		if got := list(t, PeriodAll, ""); len(got) != len(expenses) {
			t.Fatalf("expected %d, got %d", len(expenses), len(got))
		}
	})

	t.Run("month prefix", func(t *testing.T) {
		got := list(t, PeriodMonth, "2025-06")
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("year prefix", func(t *testing.T) {
		if got := list(t, PeriodYear, "2025"); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
	})

	t.Run("iso week", func(t *testing.T) {
		// 2025-06-10 is a Tuesday in ISO week 24.
		got := list(t, PeriodWeek, "2025-W24")
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("unknown filter kind rejected", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		if _, err := uc.FilterByPeriod(context.Background(), "quincena", "x"); !errors.Is(err, ErrInvalidPeriodFilter) {
			t.Fatalf("expected ErrInvalidPeriodFilter, got %v", err)
		}
	})
}

func TestIsoWeekString(t *testing.T) {
	cases := map[string]string{
		"2025-06-10": "2025-W24",
		// Year-boundary behavior: Jan 1st 2021 belongs to 2020-W53.
		"2021-01-01": "2020-W53",
		"2020-12-31": "2020-W53",
		// Dec 29th 2025 already belongs to 2026-W01.
		"2025-12-29": "2026-W01",
	}
	for fecha, want := range cases {
		got, ok := isoWeekString(fecha)
		if !ok || got != want {
			t.Fatalf("isoWeekString(%q) = %q, %v; want %q", fecha, got, ok, want)
		}
	}

	if _, ok := isoWeekString("not-a-date"); ok {
		t.Fatalf("expected malformed date to report false")
	}
}
