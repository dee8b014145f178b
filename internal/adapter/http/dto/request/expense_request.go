package request

import (
	"strings"

	"gestion_flota/internal/usecase"
)

// ExpenseCreateRequest is the multipart form for POST /api/expenses. The
// optional boleta file travels alongside these fields and is stored before
// the draft is recorded.
type ExpenseCreateRequest struct {
	Patente     string   `form:"patente" binding:"required"`
	Concepto    string   `form:"concepto" binding:"required"`
	Costo       *float64 `form:"costo" binding:"required"`
	Fecha       string   `form:"fecha"`
	ProveedorID string   `form:"proveedorId"`
}

func (r ExpenseCreateRequest) ToDraft(boletaPath string) usecase.ExpenseDraft {
	costo := 0.0
	if r.Costo != nil {
		costo = *r.Costo
	}
	return usecase.ExpenseDraft{
		Patente:     strings.TrimSpace(r.Patente),
		Concepto:    strings.TrimSpace(r.Concepto),
		Costo:       costo,
		Fecha:       strings.TrimSpace(r.Fecha),
		ProveedorID: strings.TrimSpace(r.ProveedorID),
		BoletaPath:  boletaPath,
	}
}

// AnnualBudgetRequest is the payload for PUT /api/expenses/presupuesto.
type AnnualBudgetRequest struct {
	PresupuestoAnual float64 `json:"presupuestoAnual" binding:"required"`
}
