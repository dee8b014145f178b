package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingExpenseField  = errors.New("missing required expense field")
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")
	ErrInvalidPeriodFilter  = errors.New("invalid period filter")
)

// Period filter kinds accepted by FilterByPeriod.
const (
	PeriodAll   = "todos"
	PeriodMonth = "mes"
	PeriodYear  = "anio"
	PeriodWeek  = "semana"
)

// ExpenseDraft carries the client-supplied expense fields. BoletaPath is the
// reference returned by the attachment store, already resolved by the caller.
type ExpenseDraft struct {
	Patente     string
	Concepto    string
	Costo       float64
	Fecha       string
	ProveedorID string
	BoletaPath  string
}

// IExpenseUseCase exposes the append-only expense ledger.

type IExpenseUseCase interface {
	Record(ctx context.Context, draft ExpenseDraft) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	FilterByPeriod(ctx context.Context, filterType, filterValue string) ([]entities.Expense, error)
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) Record(ctx context.Context, draft ExpenseDraft) (entities.Expense, error) {
	patente := strings.TrimSpace(draft.Patente)
	concepto := strings.TrimSpace(draft.Concepto)
	if patente == "" || concepto == "" {
		return entities.Expense{}, ErrMissingExpenseField
	}
	if math.IsNaN(draft.Costo) || math.IsInf(draft.Costo, 0) || draft.Costo < 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	fecha := strings.TrimSpace(draft.Fecha)
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Patente:     patente,
		Concepto:    concepto,
		Costo:       draft.Costo,
		Fecha:       fecha,
		ProveedorID: strings.TrimSpace(draft.ProveedorID),
		BoletaPath:  strings.TrimSpace(draft.BoletaPath),
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) List(ctx context.Context) ([]entities.Expense, error) {
	return u.repo.List(ctx)
}

// FilterByPeriod lists expenses matching the given period. Month and year
// filters compare date-string prefixes; week filters compare the ISO-8601
// week string (YYYY-Www). An empty filter value returns everything.
func (u *ExpenseUseCase) FilterByPeriod(ctx context.Context, filterType, filterValue string) ([]entities.Expense, error) {
	filterType = strings.TrimSpace(filterType)
	filterValue = strings.TrimSpace(filterValue)

	switch filterType {
	case "", PeriodAll, PeriodMonth, PeriodYear, PeriodWeek:
	default:
		return nil, ErrInvalidPeriodFilter
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filterType == "" || filterType == PeriodAll || filterValue == "" {
		return items, nil
	}

	filtered := make([]entities.Expense, 0, len(items))
	for _, e := range items {
		if matchesPeriod(e.Fecha, filterType, filterValue) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func matchesPeriod(fecha, filterType, filterValue string) bool {
	if fecha == "" {
		return false
	}
	switch filterType {
	case PeriodMonth:
		return len(fecha) >= 7 && fecha[:7] == filterValue
	case PeriodYear:
		return len(fecha) >= 4 && fecha[:4] == filterValue
	case PeriodWeek:
		week, ok := isoWeekString(fecha)
		return ok && week == filterValue
	}
	return false
}

// isoWeekString renders the ISO-8601 week of a YYYY-MM-DD date as YYYY-Www.
// The week year can differ from the calendar year at year boundaries
// (2021-01-01 belongs to 2020-W53).
func isoWeekString(fecha string) (string, bool) {
	d, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "", false
	}
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), true
}
