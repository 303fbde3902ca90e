package handlers

import (
	"bytes"
	"context"
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

func TestAuthorizationHandler_ProposeUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/updates", h.ProposeUpdate)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/updates", bytes.NewBufferString(`{"type":"diagnosis"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("propose success converts price to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().ProposeUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.ProposeUpdateCommand) (entities.ServiceUpdate, error) {
				if cmd.OrderID != "o-1" || cmd.EstimatedPrice != 12000 || !cmd.RequiresAuthorization {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.ServiceUpdate{
					ID: "su-1", OrderID: "o-1", Title: cmd.Title,
					EstimatedPrice:      cmd.EstimatedPrice,
					AuthorizationStatus: entities.AuthorizationPending,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/orders/:id/updates", h.ProposeUpdate)

		body := `{"type":"authorization","title":"Fork seals","estimated_price":120,"requires_authorization":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/updates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestAuthorizationHandler_GetPortal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad token is always 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().OrderByToken(gomock.Any(), "guessed").Return(
			entities.Order{}, nil, usecase.BalanceDue{}, usecase.ErrInvalidPublicToken)

		r := gin.New()
		r.GET("/v1/portal/:token", h.GetPortal)

		req := httptest.NewRequest(http.MethodGet, "/v1/portal/guessed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "INVALID_TOKEN" {
			t.Fatalf("expected INVALID_TOKEN, got %v", body["code"])
		}
	})

	t.Run("portal view hides staff-only fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		order := entities.Order{
			ID: "o-1", OrderNumber: "OS-000005", Status: "in_repair",
			MechanicID: "m-1", PublicToken: "tok", SettlementID: "pr-9", PaymentRef: "mp-3",
		}
		uc.EXPECT().OrderByToken(gomock.Any(), "tok").Return(order, nil, usecase.BalanceDue{FinalTotal: 30000, Balance: 30000}, nil)

		r := gin.New()
		r.GET("/v1/portal/:token", h.GetPortal)

		req := httptest.NewRequest(http.MethodGet, "/v1/portal/tok", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		orderView, ok := body["order"].(map[string]any)
		if !ok {
			t.Fatalf("expected order object, got %v", body["order"])
		}
		for _, field := range []string{"mechanic_id", "public_token", "settlement_id", "payment_ref"} {
			if v, present := orderView[field]; present && v != "" {
				t.Fatalf("expected %s hidden from portal, got %v", field, v)
			}
		}
		if orderView["order_number"] != "OS-000005" {
			t.Fatalf("expected order number visible, got %v", orderView["order_number"])
		}
	})
}

func TestAuthorizationHandler_ResolveUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("decision must be approve or reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/portal/:token/updates/:updateID", h.ResolveUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/portal/tok/updates/su-1", bytes.NewBufferString(`{"decision":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong token is 401 even for real updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().Resolve(gomock.Any(), "su-1", "wrong", "approve").Return(entities.ServiceUpdate{}, usecase.ErrInvalidPublicToken)

		r := gin.New()
		r.PATCH("/v1/portal/:token/updates/:updateID", h.ResolveUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/portal/wrong/updates/su-1", bytes.NewBufferString(`{"decision":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("double resolve maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().Resolve(gomock.Any(), "su-1", "tok", "reject").Return(entities.ServiceUpdate{}, usecase.ErrAlreadyResolved)

		r := gin.New()
		r.PATCH("/v1/portal/:token/updates/:updateID", h.ResolveUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/portal/tok/updates/su-1", bytes.NewBufferString(`{"decision":"reject"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().Resolve(gomock.Any(), "su-1", "tok", "approve").Return(entities.ServiceUpdate{
			ID: "su-1", OrderID: "o-1", AuthorizationStatus: entities.AuthorizationApproved,
		}, nil)

		r := gin.New()
		r.PATCH("/v1/portal/:token/updates/:updateID", h.ResolveUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/portal/tok/updates/su-1", bytes.NewBufferString(`{"decision":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["authorization_status"] != "approved" {
			t.Fatalf("expected approved, got %v", body["authorization_status"])
		}
	})
}

func TestAuthorizationHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("balance in currency units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc)

		uc.EXPECT().BalanceDue(gomock.Any(), "o-1").Return(usecase.BalanceDue{
			FinalTotal:     87000,
			ApprovedExtras: 12000,
			PendingExtras:  8000,
			AdvancePayment: 20000,
			Balance:        67000,
		}, nil)

		r := gin.New()
		r.GET("/v1/orders/:id/balance", h.GetBalance)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/balance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["final_total"] != 870.0 || body["balance"] != 670.0 {
			t.Fatalf("expected currency-unit totals, got %v", body)
		}
	})
}
