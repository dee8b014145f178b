package entities

// AlertStatus classifies a document or maintenance record against "now".

type AlertStatus string

const (
	AlertVencido   AlertStatus = "Vencido"
	AlertPorVencer AlertStatus = "Por vencer"
	AlertVigente   AlertStatus = "Vigente"
	AlertSinFecha  AlertStatus = "Sin fecha"
)

// ControlType distinguishes date-tracked maintenance from odometer-tracked.

type ControlType string

const (
	ControlFecha ControlType = "fecha"
	ControlKm    ControlType = "km"
)

// VehicleDocument is a per-plate document record exposed by the reference
// data provider (circulation permit, insurance, technical review, ...).
// Vence is a YYYY-MM-DD string; empty means no expiry on record.
type VehicleDocument struct {
	ID          string `json:"id"`
	Patente     string `json:"patente"`
	Tipo        string `json:"tipo"`
	Responsable string `json:"responsable,omitempty"`
	Vence       string `json:"vence,omitempty"`
}

// MaintenanceTask is a scheduled maintenance record per plate. Date-tracked
// tasks carry ProximaFecha; km-tracked tasks carry ProximoKm plus the
// vehicle's current odometer reading.
type MaintenanceTask struct {
	ID           string      `json:"id"`
	Tarea        string      `json:"tarea"`
	Patente      string      `json:"patente"`
	TipoControl  ControlType `json:"tipoControl"`
	ProximaFecha string      `json:"proximaFecha,omitempty"`
	ProximoKm    int         `json:"proximoKm,omitempty"`
	KmActual     int         `json:"kmActual,omitempty"`
}
