package response

import (
	"testing"

	"gestion_flota/internal/domain/entities"
)

func TestFromExpenses(t *testing.T) {
	out := FromExpenses([]entities.Expense{
		{ID: "g-1", Patente: "ABCD12", Concepto: "Peaje", Costo: 4500, Fecha: "2025-06-10"},
		{ID: "g-2", Patente: "EFGH34", Concepto: "Combustible", Costo: 52000, Fecha: "2025-06-12", BoletaPath: "boletas/1-b.pdf"},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(out))
	}
	if out[0].Concepto != "Peaje" || out[0].Costo != 4500 {
		t.Fatalf("unexpected first response: %+v", out[0])
	}
	if out[1].BoletaPath != "boletas/1-b.pdf" {
		t.Fatalf("expected boleta path preserved, got %+v", out[1])
	}
}

func TestFromAnnualBudgetStatus(t *testing.T) {
	res := FromAnnualBudgetStatus(entities.AnnualBudgetStatus{
		PresupuestoAnual: 1000000,
		Gastado:          250000,
		Disponible:       750000,
	})
	if res.PresupuestoAnual != 1000000 || res.Gastado != 250000 || res.Disponible != 750000 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
