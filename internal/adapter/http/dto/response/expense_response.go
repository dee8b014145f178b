package response

import (
	"time"

	"gestion_flota/internal/domain/entities"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Patente     string    `json:"patente"`
	Concepto    string    `json:"concepto"`
	Costo       float64   `json:"costo"`
	Fecha       string    `json:"fecha"`
	ProveedorID string    `json:"proveedorId,omitempty"`
	BoletaPath  string    `json:"boletaPath,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnnualBudgetStatusResponse struct {
	PresupuestoAnual float64 `json:"presupuestoAnual"`
	Gastado          float64 `json:"gastado"`
	Disponible       float64 `json:"disponible"`
}

// ExpenseListResponse is the envelope served by GET /api/expenses: the
// filtered ledger plus the annual budget snapshot the spend is judged
// against.
type ExpenseListResponse struct {
	Gastos      []ExpenseResponse          `json:"gastos"`
	Presupuesto AnnualBudgetStatusResponse `json:"presupuesto"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Patente:     e.Patente,
		Concepto:    e.Concepto,
		Costo:       e.Costo,
		Fecha:       e.Fecha,
		ProveedorID: e.ProveedorID,
		BoletaPath:  e.BoletaPath,
		CreatedAt:   e.CreatedAt,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

func FromAnnualBudgetStatus(s entities.AnnualBudgetStatus) AnnualBudgetStatusResponse {
	return AnnualBudgetStatusResponse{
		PresupuestoAnual: s.PresupuestoAnual,
		Gastado:          s.Gastado,
		Disponible:       s.Disponible,
	}
}
