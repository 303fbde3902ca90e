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
	ErrRequestNotFound        = errors.New("order request not found")
	ErrInvalidRequestData     = errors.New("invalid order request data")
	ErrRequestAlreadyResolved = errors.New("order request already resolved")
	ErrEmptyRejectionNotes    = errors.New("rejection notes cannot be empty")
)

const (
	TemplateOrderRequestApproved = "order_request_approved"
	TemplateOrderRequestRejected = "order_request_rejected"
)

// SubmitOrderRequestCommand is an auxiliary's proposed order, snapshotted
// verbatim until the master resolves it.
type SubmitOrderRequestCommand struct {
	MechanicID string
	MasterID   string
	OrderData  entities.OrderDraft
}

// IOrderRequestUseCase lets a mechanic without order-creation rights submit a
// proposal and lets a master approve (materializing a real Order) or reject it.

type IOrderRequestUseCase interface {
	Submit(ctx context.Context, cmd SubmitOrderRequestCommand) (entities.OrderRequest, error)
	Approve(ctx context.Context, requestID string) (entities.OrderRequest, entities.Order, error)
	Reject(ctx context.Context, requestID, notes string) (entities.OrderRequest, error)
	ListPendingForMaster(ctx context.Context, masterID string) ([]entities.OrderRequest, error)
}

type OrderRequestUseCase struct {
	requests   interfaces.IOrderRequestRepository
	orders     IOrderUseCase
	orderRepo  interfaces.IOrderRepository
	directory  interfaces.IMechanicDirectory
	dispatcher interfaces.INotificationDispatcher
}

var _ IOrderRequestUseCase = (*OrderRequestUseCase)(nil)

func NewOrderRequestUseCase(
	requests interfaces.IOrderRequestRepository,
	orders IOrderUseCase,
	orderRepo interfaces.IOrderRepository,
	directory interfaces.IMechanicDirectory,
	dispatcher interfaces.INotificationDispatcher,
) *OrderRequestUseCase {
	return &OrderRequestUseCase{
		requests:   requests,
		orders:     orders,
		orderRepo:  orderRepo,
		directory:  directory,
		dispatcher: dispatcher,
	}
}

func (u *OrderRequestUseCase) Submit(ctx context.Context, cmd SubmitOrderRequestCommand) (entities.OrderRequest, error) {
	cmd.MechanicID = strings.TrimSpace(cmd.MechanicID)
	cmd.MasterID = strings.TrimSpace(cmd.MasterID)
	if cmd.MechanicID == "" || cmd.MasterID == "" {
		return entities.OrderRequest{}, ErrInvalidRequestData
	}
	if strings.TrimSpace(cmd.OrderData.ClientID) == "" || strings.TrimSpace(cmd.OrderData.MotorcycleID) == "" {
		return entities.OrderRequest{}, ErrInvalidOrderData
	}

	r := entities.OrderRequest{
		ID:         uuid.NewString(),
		MechanicID: cmd.MechanicID,
		MasterID:   cmd.MasterID,
		OrderData:  cmd.OrderData,
		Status:     entities.OrderRequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.requests.Create(ctx, r)
	if err != nil {
		log.Printf("[order-request][usecase] submit failed mechanic_id=%s err=%v", cmd.MechanicID, err)
		return entities.OrderRequest{}, err
	}
	log.Printf("[order-request][usecase] submit success request_id=%s mechanic_id=%s master_id=%s", created.ID, created.MechanicID, created.MasterID)
	return created, nil
}

// Approve materializes the snapshotted order data into a real Order, then
// resolves the request exactly once. If the resolve loses a race (someone
// else approved or rejected first) the freshly created order is deleted as
// compensation, keeping "approval is the only writer of created_order_id".
func (u *OrderRequestUseCase) Approve(ctx context.Context, requestID string) (entities.OrderRequest, entities.Order, error) {
	r, err := u.getPending(ctx, requestID)
	if err != nil {
		return entities.OrderRequest{}, entities.Order{}, err
	}

	order, err := u.orders.Create(ctx, CreateOrderCommand{
		MechanicID:     r.MechanicID,
		ApprovedBy:     r.MasterID,
		ClientID:       r.OrderData.ClientID,
		ClientContact:  r.OrderData.ClientContact,
		MotorcycleID:   r.OrderData.MotorcycleID,
		Services:       r.OrderData.Services,
		AdvancePayment: r.OrderData.AdvancePayment,
	})
	if err != nil {
		log.Printf("[order-request][usecase] approve order creation failed request_id=%s err=%v", r.ID, err)
		return entities.OrderRequest{}, entities.Order{}, err
	}

	resolved, err := u.requests.Resolve(ctx, r.ID, entities.OrderRequestApproved, order.ID, "", time.Now().UTC())
	if err != nil {
		return entities.OrderRequest{}, entities.Order{}, err
	}
	if resolved.ID == "" {
		if delErr := u.orderRepo.Delete(ctx, order.ID); delErr != nil {
			log.Printf("[order-request][usecase] compensation delete failed request_id=%s order_id=%s err=%v", r.ID, order.ID, delErr)
		}
		return entities.OrderRequest{}, entities.Order{}, ErrRequestAlreadyResolved
	}
	log.Printf("[order-request][usecase] approve success request_id=%s order_id=%s order_number=%s", resolved.ID, order.ID, order.OrderNumber)

	u.notifyMechanic(ctx, resolved, TemplateOrderRequestApproved, map[string]string{
		"request_id":   resolved.ID,
		"order_number": order.OrderNumber,
	})
	return resolved, order, nil
}

func (u *OrderRequestUseCase) Reject(ctx context.Context, requestID, notes string) (entities.OrderRequest, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return entities.OrderRequest{}, ErrEmptyRejectionNotes
	}

	r, err := u.getPending(ctx, requestID)
	if err != nil {
		return entities.OrderRequest{}, err
	}

	resolved, err := u.requests.Resolve(ctx, r.ID, entities.OrderRequestRejected, "", notes, time.Now().UTC())
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if resolved.ID == "" {
		return entities.OrderRequest{}, ErrRequestAlreadyResolved
	}
	log.Printf("[order-request][usecase] reject success request_id=%s", resolved.ID)

	u.notifyMechanic(ctx, resolved, TemplateOrderRequestRejected, map[string]string{
		"request_id": resolved.ID,
		"notes":      notes,
	})
	return resolved, nil
}

func (u *OrderRequestUseCase) ListPendingForMaster(ctx context.Context, masterID string) ([]entities.OrderRequest, error) {
	return u.requests.ListPendingByMaster(ctx, strings.TrimSpace(masterID))
}

func (u *OrderRequestUseCase) getPending(ctx context.Context, requestID string) (entities.OrderRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.OrderRequest{}, ErrRequestNotFound
	}
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if r.ID == "" {
		return entities.OrderRequest{}, ErrRequestNotFound
	}
	if r.Status != entities.OrderRequestPending {
		return entities.OrderRequest{}, ErrRequestAlreadyResolved
	}
	return r, nil
}

func (u *OrderRequestUseCase) notifyMechanic(ctx context.Context, r entities.OrderRequest, templateID string, params map[string]string) {
	if u.dispatcher == nil {
		return
	}
	mech, err := u.directory.GetByID(ctx, r.MechanicID)
	if err != nil || mech.Contact == "" {
		return
	}
	delivered, err := u.dispatcher.Notify(context.Background(), mech.Contact, templateID, params)
	if err != nil {
		log.Printf("[order-request][usecase] notification failed request_id=%s template=%s err=%v", r.ID, templateID, err)
		return
	}
	if !delivered {
		log.Printf("[order-request][usecase] notification not delivered request_id=%s template=%s", r.ID, templateID)
	}
}
