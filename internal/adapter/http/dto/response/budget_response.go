package response

import (
	"time"

	"gestion_flota/internal/domain/entities"
)

type OrderSnapshotResponse struct {
	ID             string  `json:"id"`
	Titulo         string  `json:"titulo"`
	Patente        string  `json:"patente"`
	Mecanico       string  `json:"mecanico"`
	ProveedorID    string  `json:"proveedorId"`
	Prioridad      string  `json:"prioridad"`
	FechaSolicitud string  `json:"fechaSolicitud"`
	TotalCosto     float64 `json:"totalCosto"`
}

type BudgetResponse struct {
	ID          string                `json:"id"`
	OrderID     string                `json:"orderId"`
	Monto       float64               `json:"monto"`
	Estado      string                `json:"estado"`
	Observacion string                `json:"observacion"`
	Order       OrderSnapshotResponse `json:"order"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		OrderID:     b.OrderID,
		Monto:       b.Monto,
		Estado:      string(b.Estado),
		Observacion: b.Observacion,
		Order: OrderSnapshotResponse{
			ID:             b.Order.ID,
			Titulo:         b.Order.Titulo,
			Patente:        b.Order.Patente,
			Mecanico:       b.Order.Mecanico,
			ProveedorID:    b.Order.ProveedorID,
			Prioridad:      string(b.Order.Prioridad),
			FechaSolicitud: b.Order.FechaSolicitud,
			TotalCosto:     b.Order.TotalCosto,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
