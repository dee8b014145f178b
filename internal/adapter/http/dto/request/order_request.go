package request

import (
	"strings"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase"
)

type PartItemRequest struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Cantidad int     `json:"cantidad"`
	Costo    float64 `json:"costo"`
}

// OrderCreateRequest is the payload for POST /api/ots. Estado is accepted
// but ignored: every order starts Pendiente.
type OrderCreateRequest struct {
	Titulo         string            `json:"titulo" binding:"required"`
	Patente        string            `json:"patente" binding:"required"`
	Mecanico       string            `json:"mecanico" binding:"required"`
	Conductor      string            `json:"conductor"`
	ProveedorID    string            `json:"proveedorId"`
	Prioridad      string            `json:"prioridad"`
	Estado         string            `json:"estado"`
	Descripcion    string            `json:"descripcion"`
	FechaSolicitud string            `json:"fechaSolicitud"`
	Repuestos      []PartItemRequest `json:"repuestos"`
}

func (r OrderCreateRequest) ToDraft() usecase.OrderDraft {
	return usecase.OrderDraft{
		Titulo:         strings.TrimSpace(r.Titulo),
		Patente:        strings.TrimSpace(r.Patente),
		Mecanico:       strings.TrimSpace(r.Mecanico),
		Conductor:      strings.TrimSpace(r.Conductor),
		ProveedorID:    strings.TrimSpace(r.ProveedorID),
		Prioridad:      r.Prioridad,
		Descripcion:    r.Descripcion,
		FechaSolicitud: strings.TrimSpace(r.FechaSolicitud),
		Repuestos:      toPartItems(r.Repuestos),
	}
}

// OrderUpdateRequest is the payload for PUT /api/ots/:id. Absent fields are
// left untouched.
type OrderUpdateRequest struct {
	Titulo         *string            `json:"titulo"`
	Patente        *string            `json:"patente"`
	Mecanico       *string            `json:"mecanico"`
	Conductor      *string            `json:"conductor"`
	ProveedorID    *string            `json:"proveedorId"`
	Estado         *string            `json:"estado"`
	Prioridad      *string            `json:"prioridad"`
	Descripcion    *string            `json:"descripcion"`
	FechaSolicitud *string            `json:"fechaSolicitud"`
	Repuestos      *[]PartItemRequest `json:"repuestos"`
}

func (r OrderUpdateRequest) ToPatch() usecase.OrderPatch {
	patch := usecase.OrderPatch{
		Titulo:         r.Titulo,
		Patente:        r.Patente,
		Mecanico:       r.Mecanico,
		Conductor:      r.Conductor,
		ProveedorID:    r.ProveedorID,
		Estado:         r.Estado,
		Prioridad:      r.Prioridad,
		Descripcion:    r.Descripcion,
		FechaSolicitud: r.FechaSolicitud,
	}
	if r.Repuestos != nil {
		parts := toPartItems(*r.Repuestos)
		patch.Repuestos = &parts
	}
	return patch
}

func toPartItems(items []PartItemRequest) []entities.PartItem {
	parts := make([]entities.PartItem, 0, len(items))
	for _, it := range items {
		parts = append(parts, entities.PartItem{
			Nombre:   strings.TrimSpace(it.Nombre),
			Cantidad: it.Cantidad,
			Costo:    it.Costo,
		})
	}
	return parts
}
