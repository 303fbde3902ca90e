package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentRequestNotFound = errors.New("payment request not found")
	ErrMechanicNotFound       = errors.New("mechanic not found")
	ErrNotMasterForAuxiliary  = errors.New("mechanic is not master for this auxiliary")
	ErrNothingToSettle        = errors.New("no pending commission to settle")
	ErrAlreadyAccepted        = errors.New("payment request already accepted")
)

const TemplatePaymentRequestCreated = "payment_request_created"

// PendingEarnings is the auxiliary's unsettled commission view, recomputed
// from stored orders on every call.
type PendingEarnings struct {
	TotalOrders    int
	TotalLabor     entities.Cents
	PendingPayment entities.Cents
	Percentage     int64
	Orders         []entities.OrderCommission
}

// ISettlementUseCase computes commission owed to an auxiliary mechanic and
// manages the request/accept lifecycle of paying it out.

type ISettlementUseCase interface {
	PendingEarnings(ctx context.Context, mechanicID string) (PendingEarnings, error)
	InitiatePayment(ctx context.Context, masterID, auxiliaryID, notes string) (entities.PaymentRequest, error)
	Accept(ctx context.Context, requestID string) (entities.PaymentRequest, error)
	ListForAuxiliary(ctx context.Context, auxiliaryID string) ([]entities.PaymentRequest, error)
}

type SettlementUseCase struct {
	orders     interfaces.IOrderRepository
	requests   interfaces.IPaymentRequestRepository
	directory  interfaces.IMechanicDirectory
	dispatcher interfaces.INotificationDispatcher
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	orders interfaces.IOrderRepository,
	requests interfaces.IPaymentRequestRepository,
	directory interfaces.IMechanicDirectory,
	dispatcher interfaces.INotificationDispatcher,
) *SettlementUseCase {
	return &SettlementUseCase{orders: orders, requests: requests, directory: directory, dispatcher: dispatcher}
}

func (u *SettlementUseCase) PendingEarnings(ctx context.Context, mechanicID string) (PendingEarnings, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return PendingEarnings{}, ErrMechanicNotFound
	}

	mech, err := u.directory.GetByID(ctx, mechanicID)
	if err != nil {
		return PendingEarnings{}, err
	}
	if mech.ID == "" {
		return PendingEarnings{}, ErrMechanicNotFound
	}
	pct := mech.CommissionRate()

	orders, err := u.orders.ListUnsettledPaid(ctx, mechanicID)
	if err != nil {
		return PendingEarnings{}, err
	}
	return earningsFromOrders(orders, pct), nil
}

// earningsFromOrders aggregates labor in cents first and divides once, so the
// pending payment never accumulates per-order rounding error. Per-order
// commissions in the list are display snapshots computed the same way.
func earningsFromOrders(orders []entities.Order, pct int64) PendingEarnings {
	e := PendingEarnings{Percentage: pct, Orders: make([]entities.OrderCommission, 0, len(orders))}
	for _, o := range orders {
		e.TotalOrders++
		e.TotalLabor += o.LaborTotal
		e.Orders = append(e.Orders, entities.OrderCommission{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			LaborTotal:  o.LaborTotal,
			Commission:  o.LaborTotal.Percent(pct),
		})
	}
	e.PendingPayment = e.TotalLabor.Percent(pct)
	return e
}

// InitiatePayment snapshots the auxiliary's unsettled commission into a new
// pending PaymentRequest. Settlement is optimistic: each order is claimed
// with an atomic check-and-mark the moment the request is built, so a
// concurrent InitiatePayment can never double-count an earning. Whoever
// marks an order first owns it, the loser simply skips it. If the request
// itself cannot be persisted the claims are released again, otherwise the
// marked orders would reference a request that does not exist.
func (u *SettlementUseCase) InitiatePayment(ctx context.Context, masterID, auxiliaryID, notes string) (entities.PaymentRequest, error) {
	masterID = strings.TrimSpace(masterID)
	auxiliaryID = strings.TrimSpace(auxiliaryID)
	if masterID == "" || auxiliaryID == "" {
		return entities.PaymentRequest{}, ErrMechanicNotFound
	}

	ok, err := u.directory.IsMasterFor(ctx, masterID, auxiliaryID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	if !ok {
		return entities.PaymentRequest{}, ErrNotMasterForAuxiliary
	}

	earnings, err := u.PendingEarnings(ctx, auxiliaryID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	if earnings.PendingPayment == 0 {
		return entities.PaymentRequest{}, ErrNothingToSettle
	}

	requestID := uuid.NewString()
	marked := make([]entities.OrderCommission, 0, len(earnings.Orders))
	earningIDs := make([]string, 0, len(earnings.Orders))
	var laborTotal entities.Cents
	for _, oc := range earnings.Orders {
		claimed, err := u.orders.MarkSettled(ctx, oc.OrderID, requestID)
		if err != nil {
			log.Printf("[settlement][usecase] mark-settled failed order_id=%s request_id=%s err=%v", oc.OrderID, requestID, err)
			// The failed write may still have landed; releasing is
			// conditional on our request id, so include it.
			u.releaseClaims(ctx, requestID, append(earningIDs, oc.OrderID))
			return entities.PaymentRequest{}, err
		}
		if !claimed {
			// Lost to a concurrent settlement; leave it to the other request.
			log.Printf("[settlement][usecase] order already claimed order_id=%s request_id=%s", oc.OrderID, requestID)
			continue
		}
		marked = append(marked, oc)
		earningIDs = append(earningIDs, oc.OrderID)
		laborTotal += oc.LaborTotal
	}
	if len(marked) == 0 {
		return entities.PaymentRequest{}, ErrNothingToSettle
	}

	pr := entities.PaymentRequest{
		ID:                   requestID,
		FromMasterID:         masterID,
		ToAuxiliaryID:        auxiliaryID,
		LaborAmount:          laborTotal,
		TotalAmount:          laborTotal.Percent(earnings.Percentage),
		CommissionPercentage: earnings.Percentage,
		OrdersSummary:        marked,
		EarningIDs:           earningIDs,
		Status:               entities.PaymentRequestPending,
		Notes:                strings.TrimSpace(notes),
		CreatedAt:            time.Now().UTC(),
	}
	created, err := u.requests.Create(ctx, pr)
	if err != nil {
		log.Printf("[settlement][usecase] create request failed request_id=%s err=%v", requestID, err)
		u.releaseClaims(ctx, requestID, earningIDs)
		return entities.PaymentRequest{}, err
	}
	log.Printf("[settlement][usecase] initiate success request_id=%s auxiliary_id=%s orders=%d total=%d", created.ID, auxiliaryID, len(earningIDs), int64(created.TotalAmount))

	u.notifyAuxiliary(ctx, created)
	return created, nil
}

// releaseClaims rolls back the check-and-mark claims of a request that could
// not be completed. Best effort: a claim that cannot be released is logged and
// left for reconciliation, its earning stays invisible until then.
func (u *SettlementUseCase) releaseClaims(ctx context.Context, requestID string, orderIDs []string) {
	for _, id := range orderIDs {
		if err := u.orders.UnmarkSettled(ctx, id, requestID); err != nil {
			log.Printf("[settlement][usecase] release claim failed order_id=%s request_id=%s err=%v", id, requestID, err)
		}
	}
}

func (u *SettlementUseCase) Accept(ctx context.Context, requestID string) (entities.PaymentRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PaymentRequest{}, ErrPaymentRequestNotFound
	}

	pr, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	if pr.ID == "" {
		return entities.PaymentRequest{}, ErrPaymentRequestNotFound
	}
	if pr.Status != entities.PaymentRequestPending {
		return entities.PaymentRequest{}, ErrAlreadyAccepted
	}

	accepted, err := u.requests.Accept(ctx, pr.ID, time.Now().UTC())
	if err != nil {
		log.Printf("[settlement][usecase] accept failed request_id=%s err=%v", pr.ID, err)
		return entities.PaymentRequest{}, err
	}
	if accepted.ID == "" {
		return entities.PaymentRequest{}, ErrAlreadyAccepted
	}
	log.Printf("[settlement][usecase] accept success request_id=%s", accepted.ID)
	return accepted, nil
}

func (u *SettlementUseCase) ListForAuxiliary(ctx context.Context, auxiliaryID string) ([]entities.PaymentRequest, error) {
	return u.requests.ListByAuxiliary(ctx, strings.TrimSpace(auxiliaryID))
}

func (u *SettlementUseCase) notifyAuxiliary(ctx context.Context, pr entities.PaymentRequest) {
	if u.dispatcher == nil {
		return
	}
	mech, err := u.directory.GetByID(ctx, pr.ToAuxiliaryID)
	if err != nil || mech.Contact == "" {
		return
	}
	params := map[string]string{
		"request_id": pr.ID,
		"amount":     pr.TotalAmount.String(),
	}
	delivered, err := u.dispatcher.Notify(context.Background(), mech.Contact, TemplatePaymentRequestCreated, params)
	if err != nil {
		log.Printf("[settlement][usecase] notification failed request_id=%s err=%v", pr.ID, err)
		return
	}
	if !delivered {
		log.Printf("[settlement][usecase] notification not delivered request_id=%s", pr.ID)
	}
}
