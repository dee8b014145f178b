package entities

import "time"

// BudgetStatus represents the approval lifecycle of a budget (presupuesto).

type BudgetStatus string

const (
	BudgetStatusPendiente BudgetStatus = "Pendiente"
	BudgetStatusAprobado  BudgetStatus = "Aprobado"
	BudgetStatusParcial   BudgetStatus = "Parcial"
	BudgetStatusRechazado BudgetStatus = "Rechazado"
)

// ObservacionMaxLen caps the free-text observation; longer input is
// truncated, not rejected.
const ObservacionMaxLen = 400

// OrderSnapshot is the display-only summary of the owning order, captured at
// generation time. It is a copy, never a live reference: deleting the order
// leaves the budget holding this stale snapshot.
type OrderSnapshot struct {
	ID             string        `json:"id"`
	Titulo         string        `json:"titulo"`
	Patente        string        `json:"patente"`
	Mecanico       string        `json:"mecanico"`
	ProveedorID    string        `json:"proveedorId"`
	Prioridad      OrderPriority `json:"prioridad"`
	FechaSolicitud string        `json:"fechaSolicitud"`
	TotalCosto     float64       `json:"totalCosto"`
}

// Budget is the monetary approval request generated from an order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monto is seeded from the order's TotalCosto at generation time and stays
// independently editable afterwards (approvers may adjust it); later edits to
// the order never flow back into existing budgets.
type Budget struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"orderId"`
	Monto       float64       `json:"monto"`
	Estado      BudgetStatus  `json:"estado"`
	Observacion string        `json:"observacion"`
	Order       OrderSnapshot `json:"order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
