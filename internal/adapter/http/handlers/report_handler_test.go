package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestion_flota/internal/adapter/http/handlers/mocks"
	"gestion_flota/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/api/reports/dashboard", h.GetDashboard)

		uc.EXPECT().BuildDashboard(gomock.Any()).Return(entities.DashboardReport{}, errors.New("table offline"))

		req := httptest.NewRequest(http.MethodGet, "/api/reports/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/api/reports/dashboard", h.GetDashboard)

		uc.EXPECT().BuildDashboard(gomock.Any()).Return(entities.DashboardReport{
			OT: entities.OrderCounts{
				PorEstado:    map[string]int{"Pendiente": 2},
				PorPrioridad: map[string]int{"Alta": 1, "Media": 1},
			},
			Gastos: entities.ExpenseReport{
				Mensual: []entities.MonthlyExpenseBucket{{Periodo: "2025-06", Total: 30}},
				Total:   30,
			},
			Documentacion: []entities.DocumentAlert{},
			Mantenciones:  []entities.MaintenanceAlert{},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/reports/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		ot, ok := resp["ot"].(map[string]any)
		if !ok {
			t.Fatalf("missing ot section: %v", resp)
		}
		porEstado, ok := ot["porEstado"].(map[string]any)
		if !ok || porEstado["Pendiente"] != float64(2) {
			t.Fatalf("unexpected porEstado: %v", ot["porEstado"])
		}
	})
}
