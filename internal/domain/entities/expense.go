package entities

import "time"

// Expense is an incurred cost, independent of any budget. Expenses are
// append-only facts: there is no state machine and no edit operation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Fecha is kept as a plain YYYY-MM-DD string; the period filters and the
// monthly report series operate on its prefixes.
type Expense struct {
	ID          string    `json:"id"`
	Patente     string    `json:"patente"`
	Concepto    string    `json:"concepto"`
	Costo       float64   `json:"costo"`
	Fecha       string    `json:"fecha"`
	ProveedorID string    `json:"proveedorId,omitempty"`
	BoletaPath  string    `json:"boletaPath,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
