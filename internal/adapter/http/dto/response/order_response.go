package response

import (
	"time"

	"gestion_flota/internal/domain/entities"
)

type PartItemResponse struct {
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Costo    float64 `json:"costo"`
}

type OrderResponse struct {
	ID             string             `json:"id"`
	Titulo         string             `json:"titulo"`
	Patente        string             `json:"patente"`
	Mecanico       string             `json:"mecanico"`
	Conductor      string             `json:"conductor,omitempty"`
	ProveedorID    string             `json:"proveedorId"`
	Prioridad      string             `json:"prioridad"`
	Estado         string             `json:"estado"`
	Descripcion    string             `json:"descripcion,omitempty"`
	FechaSolicitud string             `json:"fechaSolicitud"`
	Repuestos      []PartItemResponse `json:"repuestos"`
	TotalCosto     float64            `json:"totalCosto"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	parts := make([]PartItemResponse, 0, len(o.Repuestos))
	for _, p := range o.Repuestos {
		parts = append(parts, PartItemResponse{Nombre: p.Nombre, Cantidad: p.Cantidad, Costo: p.Costo})
	}
	return OrderResponse{
		ID:             o.ID,
		Titulo:         o.Titulo,
		Patente:        o.Patente,
		Mecanico:       o.Mecanico,
		Conductor:      o.Conductor,
		ProveedorID:    o.ProveedorID,
		Prioridad:      string(o.Prioridad),
		Estado:         string(o.Estado),
		Descripcion:    o.Descripcion,
		FechaSolicitud: o.FechaSolicitud,
		Repuestos:      parts,
		TotalCosto:     o.TotalCosto,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
