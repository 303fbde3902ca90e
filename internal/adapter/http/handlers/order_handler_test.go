package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moto_garage/internal/adapter/http/handlers/mocks"
	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"

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
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative service cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		body := `{"mechanic_id":"m-1","client_id":"c-1","motorcycle_id":"moto-1","services":[{"name":"Chain","labor_cost":-5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateOrderCommand) (entities.Order, error) {
				if cmd.MechanicID != "m-1" || len(cmd.Services) != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.Services[0].LaborCost != 20000 {
					t.Fatalf("expected labor cost in cents, got %d", cmd.Services[0].LaborCost)
				}
				return entities.Order{ID: "o-1", OrderNumber: "OS-000001", Status: "received", TotalAmount: 30000}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		body := `{"mechanic_id":"m-1","client_id":"c-1","motorcycle_id":"moto-1","services":[{"name":"Chain","labor_cost":200,"parts_cost":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["order_number"] != "OS-000001" {
			t.Fatalf("expected order number in response, got %v", resp["order_number"])
		}
	})
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), "o-1", "in_repair", "").Return(entities.Order{}, usecase.ErrStatusConflict)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"in_repair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), "o-1", "polishing", "").Return(entities.Order{}, usecase.ErrUnknownStatus)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"polishing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_AdvanceStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Advance(gomock.Any(), "o-1", "").Return(entities.Order{ID: "o-1", Status: "in_repair"}, nil)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.AdvanceStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("terminal status maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Advance(gomock.Any(), "o-1", "").Return(entities.Order{}, usecase.ErrNoNextStatus)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.AdvanceStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_FinalizeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrAlreadyPaid)

		r := gin.New()
		r.POST("/v1/orders/:id/finalize", h.FinalizeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/finalize", bytes.NewBufferString(`{"labor_total":400}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("payment declined maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrPaymentDeclined)

		r := gin.New()
		r.POST("/v1/orders/:id/finalize", h.FinalizeOrder)

		body := `{"labor_total":400,"mp_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/finalize", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("finalize success converts totals to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.FinalizeOrderCommand) (entities.Order, error) {
				if cmd.OrderID != "o-1" || cmd.LaborTotal != 40000 || cmd.PartsTotal != 25000 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Order{ID: "o-1", IsPaid: true, TotalAmount: 65000}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/orders/:id/finalize", h.FinalizeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/finalize", bytes.NewBufferString(`{"labor_total":400,"parts_total":250}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_ResolveCancellation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing approve field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancellation", h.ResolveCancellation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancellation", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve without capability header maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ResolveCancellation(gomock.Any(), "o-1", true, false).Return(nil, usecase.ErrDeleteNotAllowed)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancellation", h.ResolveCancellation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancellation", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("approved deletion returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ResolveCancellation(gomock.Any(), "o-1", true, true).Return(nil, nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancellation", h.ResolveCancellation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancellation", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CanDeleteOrdersHeader, "true")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("rejection returns the restored order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		restored := entities.Order{ID: "o-1", Status: "in_repair"}
		uc.EXPECT().ResolveCancellation(gomock.Any(), "o-1", false, false).Return(&restored, nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancellation", h.ResolveCancellation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancellation", bytes.NewBufferString(`{"approve":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RequestCancellation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("second request maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().RequestCancellation(gomock.Any(), "o-1", "changed my mind").Return(entities.Order{}, usecase.ErrCancellationAlreadyRequested)

		r := gin.New()
		r.POST("/v1/orders/:id/cancellation", h.RequestCancellation)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/cancellation", bytes.NewBufferString(`{"reason":"changed my mind"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mechanic_id is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListByMechanic(gomock.Any(), "m-1").Return(nil, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?mechanic_id=m-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
