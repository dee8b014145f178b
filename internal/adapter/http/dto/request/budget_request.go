package request

import "gestion_flota/internal/usecase"

// BudgetUpdateRequest is the payload for PUT /api/budgets/:id. All fields
// are optional; a payload carrying none of them is rejected downstream.
type BudgetUpdateRequest struct {
	Estado      *string  `json:"estado"`
	Monto       *float64 `json:"monto"`
	Observacion *string  `json:"observacion"`
}

func (r BudgetUpdateRequest) ToPatch() usecase.BudgetPatch {
	return usecase.BudgetPatch{
		Estado:      r.Estado,
		Monto:       r.Monto,
		Observacion: r.Observacion,
	}
}
