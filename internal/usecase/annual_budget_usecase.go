package usecase

import (
	"context"
	"errors"
	"math"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"
)

var ErrInvalidAnnualCap = errors.New("invalid annual cap")

// IAnnualBudgetUseCase owns the yearly spending cap and its consumption.

type IAnnualBudgetUseCase interface {
	SetCap(ctx context.Context, amount float64) (entities.AnnualBudgetStatus, error)
	Status(ctx context.Context) (entities.AnnualBudgetStatus, error)
}

type AnnualBudgetUseCase struct {
	repo        interfaces.IAnnualBudgetRepository
	expenseRepo interfaces.IExpenseRepository
}

var _ IAnnualBudgetUseCase = (*AnnualBudgetUseCase)(nil)

func NewAnnualBudgetUseCase(repo interfaces.IAnnualBudgetRepository, expenseRepo interfaces.IExpenseRepository) *AnnualBudgetUseCase {
	return &AnnualBudgetUseCase{repo: repo, expenseRepo: expenseRepo}
}

// SetCap replaces the annual cap and returns the recomputed status.
func (u *AnnualBudgetUseCase) SetCap(ctx context.Context, amount float64) (entities.AnnualBudgetStatus, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return entities.AnnualBudgetStatus{}, ErrInvalidAnnualCap
	}

	if _, err := u.repo.Put(ctx, entities.AnnualBudget{PresupuestoAnual: amount}); err != nil {
		return entities.AnnualBudgetStatus{}, err
	}
	return u.Status(ctx)
}

// Status re-derives spend from the expense ledger on every call; it is never
// cached, so later ledger corrections are always reflected. Disponible goes
// negative on overspend, it is not floored at zero.
func (u *AnnualBudgetUseCase) Status(ctx context.Context) (entities.AnnualBudgetStatus, error) {
	budget, err := u.repo.Get(ctx)
	if err != nil {
		return entities.AnnualBudgetStatus{}, err
	}

	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return entities.AnnualBudgetStatus{}, err
	}

	gastado := 0.0
	for _, e := range expenses {
		gastado += e.Costo
	}

	return entities.AnnualBudgetStatus{
		PresupuestoAnual: budget.PresupuestoAnual,
		Gastado:          gastado,
		Disponible:       budget.PresupuestoAnual - gastado,
	}, nil
}
