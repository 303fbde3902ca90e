package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound                = errors.New("order not found")
	ErrInvalidOrderData             = errors.New("missing client or motorcycle reference")
	ErrInvalidServiceData           = errors.New("invalid service data")
	ErrInvalidAdvancePayment        = errors.New("invalid advance payment")
	ErrUnknownStatus                = errors.New("status not in configured flow")
	ErrNoOpTransition               = errors.New("order already in requested status")
	ErrNoNextStatus                 = errors.New("order status has no next status in flow")
	ErrStatusConflict               = errors.New("order status changed concurrently")
	ErrAlreadyPaid                  = errors.New("order already paid")
	ErrInvalidTotals                = errors.New("invalid finalization totals")
	ErrPaymentDeclined              = errors.New("payment declined by provider")
	ErrEmptyCancellationReason      = errors.New("cancellation reason cannot be empty")
	ErrCancellationAlreadyRequested = errors.New("cancellation already requested")
	ErrNoCancellationPending        = errors.New("no cancellation pending")
	ErrDeleteNotAllowed             = errors.New("caller cannot delete orders")
)

// Notification templates sent over the external channel.
const (
	TemplateOrderReady     = "order_ready"
	TemplateOrderDelivered = "order_delivered"
)

// CreateOrderCommand is the input for direct order creation (master) and for
// materializing an approved order request (the snapshot maps 1:1).
type CreateOrderCommand struct {
	MechanicID     string
	ApprovedBy     string
	ClientID       string
	ClientContact  string
	MotorcycleID   string
	Services       []entities.OrderService
	AdvancePayment entities.Cents
}

// FinalizeOrderCommand closes an order's payment. ManualTotal > 0 overrides
// the labor+parts sum. MPPayload, when present and a gateway is configured,
// charges the outstanding balance through the provider first.
type FinalizeOrderCommand struct {
	OrderID     string
	LaborTotal  entities.Cents
	PartsTotal  entities.Cents
	ManualTotal entities.Cents
	MPPayload   json.RawMessage
}

// IOrderUseCase is the authoritative state machine for Order status, services
// and payment finalization.

type IOrderUseCase interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Order, error)
	ChangeStatus(ctx context.Context, orderID, newStatus, note string) (entities.Order, error)
	Advance(ctx context.Context, orderID, note string) (entities.Order, error)
	Finalize(ctx context.Context, cmd FinalizeOrderCommand) (entities.Order, error)
	AddService(ctx context.Context, orderID string, name string, laborCost, partsCost entities.Cents) (entities.Order, error)
	RequestCancellation(ctx context.Context, orderID, reason string) (entities.Order, error)
	ResolveCancellation(ctx context.Context, orderID string, approve, canDelete bool) (*entities.Order, error)
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	flow       entities.StatusFlow
	dispatcher interfaces.INotificationDispatcher
	gateway    interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	flow entities.StatusFlow,
	dispatcher interfaces.INotificationDispatcher,
	gateway interfaces.IPaymentGateway,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, flow: flow, dispatcher: dispatcher, gateway: gateway}
}

func (u *OrderUseCase) Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	cmd.MechanicID = strings.TrimSpace(cmd.MechanicID)
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	cmd.MotorcycleID = strings.TrimSpace(cmd.MotorcycleID)
	if cmd.MechanicID == "" || cmd.ClientID == "" || cmd.MotorcycleID == "" {
		return entities.Order{}, ErrInvalidOrderData
	}
	if cmd.AdvancePayment < 0 {
		return entities.Order{}, ErrInvalidAdvancePayment
	}

	services := make([]entities.OrderService, 0, len(cmd.Services))
	var servicesTotal entities.Cents
	for _, s := range cmd.Services {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" || s.LaborCost < 0 || s.PartsCost < 0 {
			return entities.Order{}, ErrInvalidServiceData
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Price == 0 {
			s.Price = s.LaborCost + s.PartsCost
		}
		servicesTotal += s.Price
		services = append(services, s)
	}
	// The advance can never exceed what the order is worth.
	if cmd.AdvancePayment > servicesTotal {
		return entities.Order{}, ErrInvalidAdvancePayment
	}

	number, err := u.repo.NextOrderNumber(ctx)
	if err != nil {
		log.Printf("[order][usecase] order number allocation failed err=%v", err)
		return entities.Order{}, err
	}

	token, err := newPublicToken()
	if err != nil {
		return entities.Order{}, err
	}

	initial := u.flow.Initial()
	now := time.Now().UTC()
	o := entities.Order{
		ID:             uuid.NewString(),
		OrderNumber:    number,
		MechanicID:     cmd.MechanicID,
		ApprovedBy:     strings.TrimSpace(cmd.ApprovedBy),
		ClientID:       cmd.ClientID,
		ClientContact:  strings.TrimSpace(cmd.ClientContact),
		MotorcycleID:   cmd.MotorcycleID,
		Services:       services,
		AdvancePayment: cmd.AdvancePayment,
		Status:         initial.Code,
		History: []entities.StatusChange{
			{Status: initial.Code, ChangedAt: now, Note: "order created"},
		},
		PublicToken: token,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.TotalAmount = o.ServicesTotal()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_number=%s err=%v", number, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s order_number=%s mechanic_id=%s", created.ID, created.OrderNumber, created.MechanicID)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Order, error) {
	return u.repo.ListByMechanic(ctx, strings.TrimSpace(mechanicID))
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, orderID, newStatus, note string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.changeStatus(ctx, o, newStatus, note)
}

// Advance moves the order to the next status in the configured flow; the
// standard UI path. ChangeStatus remains the administrative override.
func (u *OrderUseCase) Advance(ctx context.Context, orderID, note string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	next, ok := u.flow.Next(o.Status)
	if !ok {
		return entities.Order{}, ErrNoNextStatus
	}
	return u.changeStatus(ctx, o, next.Code, note)
}

func (u *OrderUseCase) changeStatus(ctx context.Context, o entities.Order, newStatus, note string) (entities.Order, error) {
	target, ok := u.flow.ByCode(newStatus)
	if !ok {
		return entities.Order{}, ErrUnknownStatus
	}
	if o.Status == newStatus {
		return entities.Order{}, ErrNoOpTransition
	}

	change := entities.StatusChange{Status: newStatus, ChangedAt: time.Now().UTC(), Note: note}
	updated, err := u.repo.ChangeStatus(ctx, o.ID, o.Status, change)
	if err != nil {
		log.Printf("[order][usecase] change-status failed order_id=%s from=%s to=%s err=%v", o.ID, o.Status, newStatus, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		// Someone else moved the order between our read and the conditional
		// write. The caller re-reads and decides.
		return entities.Order{}, ErrStatusConflict
	}
	log.Printf("[order][usecase] change-status success order_id=%s from=%s to=%s", o.ID, o.Status, newStatus)

	if target.IsReady {
		u.notifyClient(updated, TemplateOrderReady)
	}
	if target.IsDelivered {
		u.notifyClient(updated, TemplateOrderDelivered)
	}
	return updated, nil
}

func (u *OrderUseCase) Finalize(ctx context.Context, cmd FinalizeOrderCommand) (entities.Order, error) {
	if cmd.LaborTotal < 0 || cmd.PartsTotal < 0 || cmd.ManualTotal < 0 {
		return entities.Order{}, ErrInvalidTotals
	}

	o, err := u.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.IsPaid {
		return entities.Order{}, ErrAlreadyPaid
	}

	manualApplied := cmd.ManualTotal > 0
	total := cmd.LaborTotal + cmd.PartsTotal
	if manualApplied {
		total = cmd.ManualTotal
	}
	if total <= 0 {
		return entities.Order{}, ErrInvalidTotals
	}
	if o.AdvancePayment > total {
		return entities.Order{}, ErrInvalidTotals
	}

	paymentRef := ""
	if u.gateway != nil && len(cmd.MPPayload) > 0 {
		paymentRef, err = u.chargeBalance(ctx, o, total, cmd.MPPayload)
		if err != nil {
			return entities.Order{}, err
		}
	}

	f := entities.Finalization{
		LaborTotal:    cmd.LaborTotal,
		PartsTotal:    cmd.PartsTotal,
		Total:         total,
		ManualApplied: manualApplied,
		PaymentRef:    paymentRef,
		PaidAt:        time.Now().UTC(),
	}
	updated, err := u.repo.FinalizePayment(ctx, o.ID, f)
	if err != nil {
		log.Printf("[order][usecase] finalize failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrAlreadyPaid
	}
	log.Printf("[order][usecase] finalize success order_id=%s total=%d manual=%t payment_ref=%s", updated.ID, int64(total), manualApplied, paymentRef)
	return updated, nil
}

// chargeBalance runs the outstanding balance through the payment provider.
// The amount is always taken from stored order data, never from the payload.
func (u *OrderUseCase) chargeBalance(ctx context.Context, o entities.Order, total entities.Cents, payload json.RawMessage) (string, error) {
	if !json.Valid(payload) {
		return "", ErrInvalidTotals
	}
	balance := total - o.AdvancePayment
	if balance < 0 {
		balance = 0
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return "", ErrInvalidTotals
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = o.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", o.OrderNumber)
	}
	reqMap["transaction_amount"] = balance.Float64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}

	log.Printf("[order][usecase] charging balance order_id=%s balance=%d", o.ID, int64(balance))
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[order][usecase] provider charge failed order_id=%s err=%v", o.ID, err)
		return "", ErrPaymentDeclined
	}
	if providerStatus != "approved" {
		log.Printf("[order][usecase] provider charge not approved order_id=%s provider_status=%s", o.ID, providerStatus)
		return "", ErrPaymentDeclined
	}
	return providerPaymentID, nil
}

func (u *OrderUseCase) AddService(ctx context.Context, orderID, name string, laborCost, partsCost entities.Cents) (entities.Order, error) {
	name = strings.TrimSpace(name)
	if name == "" || laborCost < 0 || partsCost < 0 {
		return entities.Order{}, ErrInvalidServiceData
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.IsPaid {
		return entities.Order{}, ErrAlreadyPaid
	}

	svc := entities.OrderService{
		ID:        uuid.NewString(),
		Name:      name,
		LaborCost: laborCost,
		PartsCost: partsCost,
		Price:     laborCost + partsCost,
	}
	updated, err := u.repo.AppendService(ctx, o.ID, svc, o.ManualTotalApplied)
	if err != nil {
		log.Printf("[order][usecase] add-service failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.ManualTotalApplied {
		log.Printf("[order][usecase] add-service flagged stale override order_id=%s service_id=%s", o.ID, svc.ID)
	}
	return updated, nil
}

func (u *OrderUseCase) RequestCancellation(ctx context.Context, orderID, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Order{}, ErrEmptyCancellationReason
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.CancellationPending() {
		return entities.Order{}, ErrCancellationAlreadyRequested
	}

	updated, err := u.repo.SetCancellation(ctx, o.ID, reason, time.Now().UTC())
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrCancellationAlreadyRequested
	}
	log.Printf("[order][usecase] cancellation requested order_id=%s", updated.ID)
	return updated, nil
}

// ResolveCancellation approves (hard delete, irreversible) or rejects a
// pending cancellation. The delete capability is checked upstream and passed
// in; this engine only honors the flag.
func (u *OrderUseCase) ResolveCancellation(ctx context.Context, orderID string, approve, canDelete bool) (*entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.CancellationPending() {
		return nil, ErrNoCancellationPending
	}

	if approve {
		if !canDelete {
			return nil, ErrDeleteNotAllowed
		}
		if err := u.repo.Delete(ctx, o.ID); err != nil {
			log.Printf("[order][usecase] cancellation delete failed order_id=%s err=%v", o.ID, err)
			return nil, err
		}
		log.Printf("[order][usecase] cancellation approved, order deleted order_id=%s order_number=%s", o.ID, o.OrderNumber)
		return nil, nil
	}

	updated, err := u.repo.ClearCancellation(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		return nil, ErrOrderNotFound
	}
	log.Printf("[order][usecase] cancellation rejected order_id=%s", updated.ID)
	return &updated, nil
}

// notifyClient is fire-and-forget: delivery failures are logged, never
// surfaced, and never roll back the transition that triggered them.
func (u *OrderUseCase) notifyClient(o entities.Order, templateID string) {
	if u.dispatcher == nil || o.ClientContact == "" {
		return
	}
	params := map[string]string{
		"order_number": o.OrderNumber,
		"status":       o.Status,
	}
	delivered, err := u.dispatcher.Notify(context.Background(), o.ClientContact, templateID, params)
	if err != nil {
		log.Printf("[order][usecase] notification failed order_id=%s template=%s err=%v", o.ID, templateID, err)
		return
	}
	if !delivered {
		log.Printf("[order][usecase] notification not delivered order_id=%s template=%s", o.ID, templateID)
	}
}

// newPublicToken generates the per-order client-portal secret. It must not be
// derivable from the order id or number, so it never reuses the uuid space.
func newPublicToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
