package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"
)

// Lookahead windows for the "Por vencer" classification.
const (
	dueSoonDays = 30
	dueSoonKm   = 1000
)

// IReportUseCase builds the consolidated dashboard snapshot.

type IReportUseCase interface {
	BuildDashboard(ctx context.Context) (entities.DashboardReport, error)
}

// ReportUseCase is read-only and re-entrant: every call recomputes the report
// from current store state with no shared accumulator, so concurrent report
// requests are safe.
type ReportUseCase struct {
	orderRepo    interfaces.IOrderRepository
	expenseRepo  interfaces.IExpenseRepository
	annualBudget IAnnualBudgetUseCase
	fleetRef     interfaces.IFleetReferenceProvider

	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orderRepo interfaces.IOrderRepository,
	expenseRepo interfaces.IExpenseRepository,
	annualBudget IAnnualBudgetUseCase,
	fleetRef interfaces.IFleetReferenceProvider,
) *ReportUseCase {
	return &ReportUseCase{
		orderRepo:    orderRepo,
		expenseRepo:  expenseRepo,
		annualBudget: annualBudget,
		fleetRef:     fleetRef,
		now:          time.Now,
	}
}

// BuildDashboard assembles order counts, the monthly expense series, the
// annual budget status and the expiry alert lists. Empty stores produce the
// identity shapes (zero counts, empty series), never an error.
func (u *ReportUseCase) BuildDashboard(ctx context.Context) (entities.DashboardReport, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	budgetStatus, err := u.annualBudget.Status(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	documents, err := u.fleetRef.ListDocuments(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	tasks, err := u.fleetRef.ListMaintenanceTasks(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	today := truncateToDay(u.now().UTC())

	report := entities.DashboardReport{
		OT:            countOrders(orders),
		Documentacion: make([]entities.DocumentAlert, 0, len(documents)),
		Mantenciones:  make([]entities.MaintenanceAlert, 0, len(tasks)),
	}
	report.Gastos = entities.ExpenseReport{
		Mensual:     monthlySeries(expenses),
		Total:       totalSpend(expenses),
		Presupuesto: budgetStatus,
	}
	for _, doc := range documents {
		report.Documentacion = append(report.Documentacion, classifyDocument(doc, today))
	}
	for _, task := range tasks {
		report.Mantenciones = append(report.Mantenciones, classifyMaintenance(task, today))
	}
	return report, nil
}

func countOrders(orders []entities.Order) entities.OrderCounts {
	counts := entities.OrderCounts{
		PorEstado:    map[string]int{},
		PorPrioridad: map[string]int{},
	}
	for _, o := range orders {
		counts.PorEstado[string(o.Estado)]++
		counts.PorPrioridad[string(o.Prioridad)]++
	}
	return counts
}

// monthlySeries buckets expenses by YYYY-MM prefix, chronologically ordered.
// Expenses with malformed dates are left out of the series (they still count
// toward the total spend).
func monthlySeries(expenses []entities.Expense) []entities.MonthlyExpenseBucket {
	byPeriod := map[string]float64{}
	for _, e := range expenses {
		if len(e.Fecha) < 7 {
			continue
		}
		periodo := e.Fecha[:7]
		if _, err := time.Parse("2006-01", periodo); err != nil {
			continue
		}
		byPeriod[periodo] += e.Costo
	}

	series := make([]entities.MonthlyExpenseBucket, 0, len(byPeriod))
	for periodo, total := range byPeriod {
		series = append(series, entities.MonthlyExpenseBucket{Periodo: periodo, Total: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Periodo < series[j].Periodo
	})
	return series
}

func totalSpend(expenses []entities.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Costo
	}
	return total
}

func classifyDocument(doc entities.VehicleDocument, today time.Time) entities.DocumentAlert {
	alert := entities.DocumentAlert{
		ID:          doc.ID,
		Patente:     doc.Patente,
		Tipo:        doc.Tipo,
		Responsable: doc.Responsable,
		Vence:       doc.Vence,
	}

	dias, ok := daysUntil(doc.Vence, today)
	if !ok {
		alert.Estado = entities.AlertSinFecha
		return alert
	}
	alert.DiasParaVencer = &dias
	alert.Estado = classifyDays(dias)
	return alert
}

func classifyMaintenance(task entities.MaintenanceTask, today time.Time) entities.MaintenanceAlert {
	alert := entities.MaintenanceAlert{
		ID:          task.ID,
		Tarea:       task.Tarea,
		Patente:     task.Patente,
		TipoControl: task.TipoControl,
	}

	if task.TipoControl == entities.ControlKm {
		if task.ProximoKm <= 0 {
			alert.Estado = entities.AlertSinFecha
			return alert
		}
		remaining := task.ProximoKm - task.KmActual
		alert.ProximoControl = fmt.Sprintf("%d km", task.ProximoKm)
		alert.Dias = &remaining
		switch {
		case remaining <= 0:
			alert.Estado = entities.AlertVencido
		case remaining <= dueSoonKm:
			alert.Estado = entities.AlertPorVencer
		default:
			alert.Estado = entities.AlertVigente
		}
		return alert
	}

	dias, ok := daysUntil(task.ProximaFecha, today)
	if !ok {
		alert.Estado = entities.AlertSinFecha
		return alert
	}
	alert.ProximoControl = task.ProximaFecha
	alert.Dias = &dias
	alert.Estado = classifyDays(dias)
	return alert
}

func classifyDays(dias int) entities.AlertStatus {
	switch {
	case dias < 0:
		return entities.AlertVencido
	case dias <= dueSoonDays:
		return entities.AlertPorVencer
	default:
		return entities.AlertVigente
	}
}

// daysUntil returns whole days from today (midnight UTC) to the given
// YYYY-MM-DD date. Empty or malformed dates report false.
func daysUntil(fecha string, today time.Time) (int, bool) {
	if fecha == "" {
		return 0, false
	}
	due, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return 0, false
	}
	return int(due.Sub(today).Hours() / 24), true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
