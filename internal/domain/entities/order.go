package entities

import "time"

// OrderStatus represents the lifecycle of a work order (orden de trabajo).
//
// Domain notes:
//   - Creation always starts at Pendiente; a client-supplied estado is ignored.
//   - Any canonical status may follow any other: work can be reopened or
//     rejected at any point, so no adjacency restriction is enforced.

type OrderStatus string

const (
	OrderStatusPendiente  OrderStatus = "Pendiente"
	OrderStatusEnProgreso OrderStatus = "En progreso"
	OrderStatusFinalizada OrderStatus = "Finalizada"
	OrderStatusRechazada  OrderStatus = "Rechazada"
)

// OrderPriority is advisory: unknown input falls back to Media instead of
// failing, unlike OrderStatus which is load-bearing and rejected when unknown.

type OrderPriority string

const (
	PriorityAlta  OrderPriority = "Alta"
	PriorityMedia OrderPriority = "Media"
	PriorityBaja  OrderPriority = "Baja"
)

// PartItem is one repuesto line inside an order.
type PartItem struct {
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Costo    float64 `json:"costo"`
}

// Order is the work order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalCosto is derived from the repuestos lines and recomputed on every
//     write that touches them; it is never editable on its own.
type Order struct {
	ID             string        `json:"id"`
	Titulo         string        `json:"titulo"`
	Patente        string        `json:"patente"`
	Mecanico       string        `json:"mecanico"`
	Conductor      string        `json:"conductor,omitempty"`
	ProveedorID    string        `json:"proveedorId"`
	Prioridad      OrderPriority `json:"prioridad"`
	Estado         OrderStatus   `json:"estado"`
	Descripcion    string        `json:"descripcion,omitempty"`
	FechaSolicitud string        `json:"fechaSolicitud"`
	Repuestos      []PartItem    `json:"repuestos"`
	TotalCosto     float64       `json:"totalCosto"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PartsTotal sums cantidad × costo over the given lines. Lines with a
// negative quantity or cost contribute nothing.
func PartsTotal(parts []PartItem) float64 {
	total := 0.0
	for _, p := range parts {
		if p.Cantidad > 0 && p.Costo > 0 {
			total += float64(p.Cantidad) * p.Costo
		}
	}
	return total
}

// Snapshot returns the read-only order summary embedded in budgets.
func (o Order) Snapshot() OrderSnapshot {
	return OrderSnapshot{
		ID:             o.ID,
		Titulo:         o.Titulo,
		Patente:        o.Patente,
		Mecanico:       o.Mecanico,
		ProveedorID:    o.ProveedorID,
		Prioridad:      o.Prioridad,
		FechaSolicitud: o.FechaSolicitud,
		TotalCosto:     o.TotalCosto,
	}
}
