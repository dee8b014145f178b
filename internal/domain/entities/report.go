package entities

// Dashboard report shapes. The aggregator recomputes everything from current
// store state on every call; nothing here is cached.

// MonthlyExpenseBucket is one point of the monthly spend series.
// Periodo is a YYYY-MM string.
type MonthlyExpenseBucket struct {
	Periodo string  `json:"periodo"`
	Total   float64 `json:"total"`
}

// DocumentAlert is a classified document-expiry row.
type DocumentAlert struct {
	ID             string      `json:"id"`
	Patente        string      `json:"patente"`
	Tipo           string      `json:"tipo"`
	Responsable    string      `json:"responsable,omitempty"`
	Vence          string      `json:"vence,omitempty"`
	DiasParaVencer *int        `json:"diasParaVencer,omitempty"`
	Estado         AlertStatus `json:"estado"`
}

// MaintenanceAlert is a classified maintenance row. For km-tracked tasks
// ProximoControl carries the target odometer reading and Dias the remaining
// kilometers; for date-tracked tasks it is the due date and days remaining.
type MaintenanceAlert struct {
	ID             string      `json:"id"`
	Tarea          string      `json:"tarea"`
	Patente        string      `json:"patente"`
	TipoControl    ControlType `json:"tipoControl"`
	ProximoControl string      `json:"proximoControl,omitempty"`
	Dias           *int        `json:"dias,omitempty"`
	Estado         AlertStatus `json:"estado"`
}

// OrderCounts groups order tallies by estado and prioridad.
type OrderCounts struct {
	PorEstado    map[string]int `json:"porEstado"`
	PorPrioridad map[string]int `json:"porPrioridad"`
}

// ExpenseReport is the spend block of the dashboard.
type ExpenseReport struct {
	Mensual     []MonthlyExpenseBucket `json:"mensual"`
	Total       float64                `json:"total"`
	Presupuesto AnnualBudgetStatus     `json:"presupuesto"`
}

// DashboardReport is the consolidated operational snapshot.
type DashboardReport struct {
	OT            OrderCounts        `json:"ot"`
	Gastos        ExpenseReport      `json:"gastos"`
	Documentacion []DocumentAlert    `json:"documentacion"`
	Mantenciones  []MaintenanceAlert `json:"mantenciones"`
}
