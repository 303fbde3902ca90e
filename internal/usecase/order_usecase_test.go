package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"moto_garage/internal/domain/entities"
	mock_interfaces "moto_garage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testFlow(t *testing.T) entities.StatusFlow {
	t.Helper()
	flow, err := entities.NewStatusFlow([]entities.Status{
		{Code: "received", Label: "Received"},
		{Code: "in_repair", Label: "In repair"},
		{Code: "ready", Label: "Ready", IsReady: true},
		{Code: "delivered", Label: "Delivered", IsTerminal: true, IsDelivered: true},
	})
	if err != nil {
		t.Fatalf("building test flow: %v", err)
	}
	return flow
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing references", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.Create(context.Background(), CreateOrderCommand{MechanicID: "m-1", ClientID: "  ", MotorcycleID: "moto-1"})
		if !errors.Is(err, ErrInvalidOrderData) {
			t.Fatalf("expected ErrInvalidOrderData, got %v", err)
		}
	})

	t.Run("negative advance", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.Create(context.Background(), CreateOrderCommand{
			MechanicID: "m-1", ClientID: "c-1", MotorcycleID: "moto-1", AdvancePayment: -1,
		})
		if !errors.Is(err, ErrInvalidAdvancePayment) {
			t.Fatalf("expected ErrInvalidAdvancePayment, got %v", err)
		}
	})

	t.Run("advance exceeding services total", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.Create(context.Background(), CreateOrderCommand{
			MechanicID: "m-1", ClientID: "c-1", MotorcycleID: "moto-1",
			AdvancePayment: 30001,
			Services:       []entities.OrderService{{Name: "Full service", LaborCost: 20000, PartsCost: 10000}},
		})
		if !errors.Is(err, ErrInvalidAdvancePayment) {
			t.Fatalf("expected ErrInvalidAdvancePayment, got %v", err)
		}
	})

	t.Run("invalid service", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.Create(context.Background(), CreateOrderCommand{
			MechanicID: "m-1", ClientID: "c-1", MotorcycleID: "moto-1",
			Services: []entities.OrderService{{Name: "  ", LaborCost: 100}},
		})
		if !errors.Is(err, ErrInvalidServiceData) {
			t.Fatalf("expected ErrInvalidServiceData, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().NextOrderNumber(gomock.Any()).Return("OS-000042", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.OrderNumber != "OS-000042" || o.Status != "received" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.PublicToken == "" || o.PublicToken == o.ID {
					t.Fatalf("expected independent public token, got %q", o.PublicToken)
				}
				if len(o.Services) != 1 {
					t.Fatalf("expected 1 service, got %d", len(o.Services))
				}
				svc := o.Services[0]
				if svc.ID == "" || svc.Price != 30000 {
					t.Fatalf("expected derived price 30000, got %+v", svc)
				}
				if o.TotalAmount != 30000 {
					t.Fatalf("expected total 30000, got %d", o.TotalAmount)
				}
				if len(o.History) != 1 || o.History[0].Status != "received" {
					t.Fatalf("expected creation history entry, got %+v", o.History)
				}
				return o, nil
			},
		)

		order, err := uc.Create(context.Background(), CreateOrderCommand{
			MechanicID:   " m-1 ",
			ClientID:     "c-1",
			MotorcycleID: "moto-1",
			Services:     []entities.OrderService{{Name: "Chain replacement", LaborCost: 20000, PartsCost: 10000}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.MechanicID != "m-1" {
			t.Fatalf("expected trimmed mechanic id, got %q", order.MechanicID)
		}
	})
}

func TestOrderUseCase_ChangeStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "received"}, nil)

		_, err := uc.ChangeStatus(context.Background(), "o-1", "polishing", "")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("no-op transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "in_repair"}, nil)

		_, err := uc.ChangeStatus(context.Background(), "o-1", "in_repair", "")
		if !errors.Is(err, ErrNoOpTransition) {
			t.Fatalf("expected ErrNoOpTransition, got %v", err)
		}
	})

	t.Run("concurrent move loses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "received"}, nil)
		repo.EXPECT().ChangeStatus(gomock.Any(), "o-1", "received", gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "o-1", "in_repair", "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("ready transition notifies client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), dispatcher, nil)

		updated := entities.Order{ID: "o-1", OrderNumber: "OS-000007", Status: "ready", ClientContact: "+5511999990000"}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "in_repair", ClientContact: "+5511999990000"}, nil)
		repo.EXPECT().ChangeStatus(gomock.Any(), "o-1", "in_repair", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, change entities.StatusChange) (entities.Order, error) {
				if change.Status != "ready" || change.ChangedAt.IsZero() {
					t.Fatalf("unexpected change: %+v", change)
				}
				return updated, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), "+5511999990000", TemplateOrderReady, gomock.Any()).Return(true, nil)

		order, err := uc.ChangeStatus(context.Background(), "o-1", "ready", "pickup anytime")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "ready" {
			t.Fatalf("expected ready, got %s", order.Status)
		}
	})

	t.Run("notification failure does not fail transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), dispatcher, nil)

		updated := entities.Order{ID: "o-1", Status: "delivered", ClientContact: "contact"}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "ready", ClientContact: "contact"}, nil)
		repo.EXPECT().ChangeStatus(gomock.Any(), "o-1", "ready", gomock.Any()).Return(updated, nil)
		dispatcher.EXPECT().Notify(gomock.Any(), "contact", TemplateOrderDelivered, gomock.Any()).Return(false, errors.New("bridge down"))

		order, err := uc.ChangeStatus(context.Background(), "o-1", "delivered", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "delivered" {
			t.Fatalf("expected delivered, got %s", order.Status)
		}
	})
}

func TestOrderUseCase_Advance(t *testing.T) {
	t.Run("terminal status has no next", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "delivered"}, nil)

		_, err := uc.Advance(context.Background(), "o-1", "")
		if !errors.Is(err, ErrNoNextStatus) {
			t.Fatalf("expected ErrNoNextStatus, got %v", err)
		}
	})

	t.Run("advance success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: "received"}, nil)
		repo.EXPECT().ChangeStatus(gomock.Any(), "o-1", "received", gomock.Any()).Return(entities.Order{ID: "o-1", Status: "in_repair"}, nil)

		order, err := uc.Advance(context.Background(), "o-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "in_repair" {
			t.Fatalf("expected in_repair, got %s", order.Status)
		}
	})
}

func TestOrderUseCase_Finalize(t *testing.T) {
	t.Run("negative totals", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.Finalize(context.Background(), FinalizeOrderCommand{OrderID: "o-1", LaborTotal: -1})
		if !errors.Is(err, ErrInvalidTotals) {
			t.Fatalf("expected ErrInvalidTotals, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", IsPaid: true}, nil)

		_, err := uc.Finalize(context.Background(), FinalizeOrderCommand{OrderID: "o-1", LaborTotal: 100})
		if !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("advance exceeding final total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", AdvancePayment: 20000}, nil)

		_, err := uc.Finalize(context.Background(), FinalizeOrderCommand{OrderID: "o-1", LaborTotal: 10000, PartsTotal: 5000})
		if !errors.Is(err, ErrInvalidTotals) {
			t.Fatalf("expected ErrInvalidTotals, got %v", err)
		}
	})

	t.Run("concurrent finalize loses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		repo.EXPECT().FinalizePayment(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.Finalize(context.Background(), FinalizeOrderCommand{OrderID: "o-1", LaborTotal: 100})
		if !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("sum of labor and parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		repo.EXPECT().FinalizePayment(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f entities.Finalization) (entities.Order, error) {
				if f.Total != 30000 || f.ManualApplied || f.PaidAt.IsZero() {
					t.Fatalf("unexpected finalization: %+v", f)
				}
				return entities.Order{ID: "o-1", IsPaid: true, TotalAmount: f.Total}, nil
			},
		)

		order, err := uc.Finalize(context.Background(), FinalizeOrderCommand{OrderID: "o-1", LaborTotal: 20000, PartsTotal: 10000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.IsPaid {
			t.Fatal("expected paid order")
		}
	})

	t.Run("manual total overrides sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		repo.EXPECT().FinalizePayment(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f entities.Finalization) (entities.Order, error) {
				if f.Total != 55000 || !f.ManualApplied {
					t.Fatalf("expected manual total 55000, got %+v", f)
				}
				return entities.Order{ID: "o-1", IsPaid: true}, nil
			},
		)

		if _, err := uc.Finalize(context.Background(), FinalizeOrderCommand{
			OrderID: "o-1", LaborTotal: 20000, PartsTotal: 10000, ManualTotal: 55000,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway charges balance net of advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", OrderNumber: "OS-000009", AdvancePayment: 10000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				// 65000 total minus 10000 advance, in currency units.
				if req["transaction_amount"] != 550.0 {
					t.Fatalf("expected transaction_amount 550, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "o-1" {
					t.Fatalf("expected external_reference o-1, got %v", req["external_reference"])
				}
				return "mp-77", "approved", payload, nil
			},
		)
		repo.EXPECT().FinalizePayment(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f entities.Finalization) (entities.Order, error) {
				if f.PaymentRef != "mp-77" {
					t.Fatalf("expected payment ref mp-77, got %q", f.PaymentRef)
				}
				return entities.Order{ID: "o-1", IsPaid: true, PaymentRef: f.PaymentRef}, nil
			},
		)

		order, err := uc.Finalize(context.Background(), FinalizeOrderCommand{
			OrderID: "o-1", LaborTotal: 40000, PartsTotal: 25000,
			MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentRef != "mp-77" {
			t.Fatalf("expected payment ref recorded, got %q", order.PaymentRef)
		}
	})

	t.Run("gateway decline aborts finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", nil, nil)

		_, err := uc.Finalize(context.Background(), FinalizeOrderCommand{
			OrderID: "o-1", LaborTotal: 40000, MPPayload: json.RawMessage(`{}`),
		})
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})
}

func TestOrderUseCase_AddService(t *testing.T) {
	t.Run("paid order rejects new services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", IsPaid: true}, nil)

		_, err := uc.AddService(context.Background(), "o-1", "Brake pads", 5000, 8000)
		if !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("derives price and grows total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		repo.EXPECT().AppendService(gomock.Any(), "o-1", gomock.Any(), false).DoAndReturn(
			func(_ context.Context, _ string, svc entities.OrderService, _ bool) (entities.Order, error) {
				if svc.ID == "" || svc.Price != 13000 {
					t.Fatalf("unexpected service: %+v", svc)
				}
				return entities.Order{ID: "o-1", TotalAmount: 13000}, nil
			},
		)

		order, err := uc.AddService(context.Background(), "o-1", " Brake pads ", 5000, 8000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.TotalAmount != 13000 {
			t.Fatalf("expected total 13000, got %d", order.TotalAmount)
		}
	})

	t.Run("manual override flags stale instead of recomputing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", ManualTotalApplied: true, TotalAmount: 50000}, nil)
		repo.EXPECT().AppendService(gomock.Any(), "o-1", gomock.Any(), true).Return(
			entities.Order{ID: "o-1", ManualTotalApplied: true, OverrideStale: true, TotalAmount: 50000}, nil)

		order, err := uc.AddService(context.Background(), "o-1", "Valve adjustment", 7000, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.OverrideStale || order.TotalAmount != 50000 {
			t.Fatalf("expected untouched manual total flagged stale, got %+v", order)
		}
	})
}

func TestOrderUseCase_Cancellation(t *testing.T) {
	t.Run("empty reason", func(t *testing.T) {
		uc := NewOrderUseCase(nil, testFlow(t), nil, nil)
		_, err := uc.RequestCancellation(context.Background(), "o-1", "   ")
		if !errors.Is(err, ErrEmptyCancellationReason) {
			t.Fatalf("expected ErrEmptyCancellationReason, got %v", err)
		}
	})

	t.Run("already pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		at := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", CancellationRequestedAt: &at}, nil)

		_, err := uc.RequestCancellation(context.Background(), "o-1", "client gave up")
		if !errors.Is(err, ErrCancellationAlreadyRequested) {
			t.Fatalf("expected ErrCancellationAlreadyRequested, got %v", err)
		}
	})

	t.Run("request success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		repo.EXPECT().SetCancellation(gomock.Any(), "o-1", "client gave up", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, reason string, at time.Time) (entities.Order, error) {
				return entities.Order{ID: "o-1", CancellationReason: reason, CancellationRequestedAt: &at}, nil
			},
		)

		order, err := uc.RequestCancellation(context.Background(), "o-1", " client gave up ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.CancellationPending() {
			t.Fatal("expected pending cancellation")
		}
	})

	t.Run("approve without delete capability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		at := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", CancellationRequestedAt: &at}, nil)

		_, err := uc.ResolveCancellation(context.Background(), "o-1", true, false)
		if !errors.Is(err, ErrDeleteNotAllowed) {
			t.Fatalf("expected ErrDeleteNotAllowed, got %v", err)
		}
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)

		_, err := uc.ResolveCancellation(context.Background(), "o-1", true, true)
		if !errors.Is(err, ErrNoCancellationPending) {
			t.Fatalf("expected ErrNoCancellationPending, got %v", err)
		}
	})

	t.Run("approve deletes order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		at := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", CancellationRequestedAt: &at}, nil)
		repo.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)

		order, err := uc.ResolveCancellation(context.Background(), "o-1", true, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order != nil {
			t.Fatalf("expected nil order after delete, got %+v", order)
		}
	})

	t.Run("reject clears request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, testFlow(t), nil, nil)

		at := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", CancellationReason: "r", CancellationRequestedAt: &at}, nil)
		repo.EXPECT().ClearCancellation(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)

		order, err := uc.ResolveCancellation(context.Background(), "o-1", false, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order == nil || order.CancellationPending() {
			t.Fatalf("expected cleared cancellation, got %+v", order)
		}
	})
}
