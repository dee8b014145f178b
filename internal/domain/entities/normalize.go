package entities

import "strings"

// Free-text status input is trimmed and lower-cased, then resolved against a
// static synonym table. Anything outside the table is rejected by the caller;
// there is no silent defaulting for statuses.

var orderStatusSynonyms = map[string]OrderStatus{
	"pendiente":   OrderStatusPendiente,
	"en progreso": OrderStatusEnProgreso,
	"en_progreso": OrderStatusEnProgreso,
	"en-progreso": OrderStatusEnProgreso,
	"progreso":    OrderStatusEnProgreso,
	"finalizada":  OrderStatusFinalizada,
	"finalizado":  OrderStatusFinalizada,
	"finalizo":    OrderStatusFinalizada,
	"rechazada":   OrderStatusRechazada,
	"rechazado":   OrderStatusRechazada,
}

var budgetStatusSynonyms = map[string]BudgetStatus{
	"pendiente": BudgetStatusPendiente,
	"aprobado":  BudgetStatusAprobado,
	"parcial":   BudgetStatusParcial,
	"rechazado": BudgetStatusRechazado,
}

var prioritySynonyms = map[string]OrderPriority{
	"alta":  PriorityAlta,
	"media": PriorityMedia,
	"baja":  PriorityBaja,
}

// NormalizeOrderStatus maps free-text input to a canonical order status.
func NormalizeOrderStatus(input string) (OrderStatus, bool) {
	s, ok := orderStatusSynonyms[strings.ToLower(strings.TrimSpace(input))]
	return s, ok
}

// NormalizeBudgetStatus maps free-text input to a canonical budget status.
func NormalizeBudgetStatus(input string) (BudgetStatus, bool) {
	s, ok := budgetStatusSynonyms[strings.ToLower(strings.TrimSpace(input))]
	return s, ok
}

// NormalizePriority maps free-text input to a canonical priority. Priority is
// advisory, so unknown or empty input falls back to Media instead of failing.
func NormalizePriority(input string) OrderPriority {
	if p, ok := prioritySynonyms[strings.ToLower(strings.TrimSpace(input))]; ok {
		return p
	}
	return PriorityMedia
}
