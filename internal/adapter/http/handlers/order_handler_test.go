package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestion_flota/internal/adapter/http/handlers/mocks"
	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/ots", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/ots", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/ots", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/ots", bytes.NewBufferString(`{"titulo":"Cambio de frenos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/ots", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.OrderDraft{})).DoAndReturn(
			func(_ any, draft usecase.OrderDraft) (entities.Order, error) {
				if draft.Titulo != "Cambio de frenos" || draft.Patente != "ABCD12" {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.Order{ID: "ot-1", Titulo: draft.Titulo, Patente: draft.Patente, Estado: entities.OrderStatusPendiente}, nil
			},
		)

		body := `{"titulo":"Cambio de frenos","patente":"ABCD12","mecanico":"Juan","estado":"Finalizada"}`
		req := httptest.NewRequest(http.MethodPost, "/api/ots", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["estado"] != "Pendiente" {
			t.Fatalf("expected estado Pendiente, got %v", resp["estado"])
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/ots/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/ots/missing", bytes.NewBufferString(`{"estado":"aprobado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/ots/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), "ot-1", gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPut, "/api/ots/ot-1", bytes.NewBufferString(`{"estado":"inexistente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/ots/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), "ot-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch usecase.OrderPatch) (entities.Order, error) {
				if patch.Estado == nil || *patch.Estado != "en_progreso" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Order{ID: "ot-1", Estado: entities.OrderStatusEnProgreso}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/api/ots/ot-1", bytes.NewBufferString(`{"estado":"en_progreso"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/api/ots/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/ots/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/api/ots/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), "ot-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/ots/ot-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DownloadOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.GET("/api/ots/:id/descargar", h.DownloadOrder)

	uc.EXPECT().ExportSnapshot(gomock.Any(), "ot-1").Return(entities.Order{ID: "ot-1", Patente: "ABCD12"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ots/ot-1/descargar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="ot-ABCD12-ot-1.json"` {
		t.Fatalf("unexpected content disposition: %q", got)
	}
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrMissingOrderField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapOrderError(usecase.ErrInvalidOrderStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
