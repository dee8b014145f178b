package entities

// AnnualBudget is the single configurable yearly spending cap.
//
// Storage model (DynamoDB):
//   - PK: id (fixed singleton key)
//
// Only the cap is persisted. Consumption is always re-derived from the
// expense ledger so later corrections can never drift from the stored value.
type AnnualBudget struct {
	PresupuestoAnual float64 `json:"presupuestoAnual"`
}

// AnnualBudgetStatus is the computed consumption snapshot. Disponible may go
// negative: overspend is reported, not prevented.
type AnnualBudgetStatus struct {
	PresupuestoAnual float64 `json:"presupuestoAnual"`
	Gastado          float64 `json:"gastado"`
	Disponible       float64 `json:"disponible"`
}
