package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moto_garage/internal/adapter/http/handlers/mocks"
	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettlementHandler_GetEarnings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown mechanic maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().PendingEarnings(gomock.Any(), "ghost").Return(usecase.PendingEarnings{}, usecase.ErrMechanicNotFound)

		r := gin.New()
		r.GET("/v1/mechanics/:id/earnings", h.GetEarnings)

		req := httptest.NewRequest(http.MethodGet, "/v1/mechanics/ghost/earnings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("earnings in currency units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().PendingEarnings(gomock.Any(), "aux-1").Return(usecase.PendingEarnings{
			TotalOrders:    2,
			TotalLabor:     2000,
			PendingPayment: 200,
			Percentage:     10,
		}, nil)

		r := gin.New()
		r.GET("/v1/mechanics/:id/earnings", h.GetEarnings)

		req := httptest.NewRequest(http.MethodGet, "/v1/mechanics/aux-1/earnings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["pending_payment"] != 2.0 || body["total_labor"] != 20.0 {
			t.Fatalf("expected currency-unit amounts, got %v", body)
		}
	})
}

func TestSettlementHandler_InitiatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing auxiliary id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.POST("/v1/payment-requests", h.InitiatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests", bytes.NewBufferString(`{"master_id":"m-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("foreign master maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().InitiatePayment(gomock.Any(), "m-2", "aux-1", "").Return(entities.PaymentRequest{}, usecase.ErrNotMasterForAuxiliary)

		r := gin.New()
		r.POST("/v1/payment-requests", h.InitiatePayment)

		body := `{"master_id":"m-2","auxiliary_id":"aux-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("nothing to settle maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().InitiatePayment(gomock.Any(), "m-1", "aux-1", "").Return(entities.PaymentRequest{}, usecase.ErrNothingToSettle)

		r := gin.New()
		r.POST("/v1/payment-requests", h.InitiatePayment)

		body := `{"master_id":"m-1","auxiliary_id":"aux-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("initiate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().InitiatePayment(gomock.Any(), "m-1", "aux-1", "weekly settlement").Return(entities.PaymentRequest{
			ID: "pr-1", FromMasterID: "m-1", ToAuxiliaryID: "aux-1",
			LaborAmount: 2000, TotalAmount: 200, CommissionPercentage: 10,
			Status: entities.PaymentRequestPending,
		}, nil)

		r := gin.New()
		r.POST("/v1/payment-requests", h.InitiatePayment)

		body := `{"master_id":"m-1","auxiliary_id":"aux-1","notes":"weekly settlement"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestSettlementHandler_AcceptPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("double accept maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().Accept(gomock.Any(), "pr-1").Return(entities.PaymentRequest{}, usecase.ErrAlreadyAccepted)

		r := gin.New()
		r.POST("/v1/payment-requests/:id/accept", h.AcceptPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests/pr-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().Accept(gomock.Any(), "pr-1").Return(entities.PaymentRequest{
			ID: "pr-1", Status: entities.PaymentRequestAccepted,
		}, nil)

		r := gin.New()
		r.POST("/v1/payment-requests/:id/accept", h.AcceptPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-requests/pr-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSettlementHandler_ListPaymentRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("auxiliary_id is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		r := gin.New()
		r.GET("/v1/payment-requests", h.ListPaymentRequests)

		req := httptest.NewRequest(http.MethodGet, "/v1/payment-requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
