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
	ErrUpdateNotFound        = errors.New("service update not found")
	ErrInvalidUpdateData     = errors.New("invalid service update data")
	ErrInvalidEstimatedPrice = errors.New("invalid estimated price")
	ErrAlreadyResolved       = errors.New("update already resolved")
	ErrInvalidDecision       = errors.New("decision must be approve or reject")
	ErrInvalidPublicToken    = errors.New("invalid access token")
)

const TemplateUpdateAuthorization = "service_update_authorization"

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// ProposeUpdateCommand is a mechanic's proposal of extra work on an order.
type ProposeUpdateCommand struct {
	OrderID               string
	Type                  string
	Title                 string
	Description           string
	EstimatedPrice        entities.Cents
	RequiresAuthorization bool
	Photos                []string
}

// BalanceDue is the client-facing money view, always recomputed from stored
// facts (services, resolved updates, advance payment); no cached total is
// authoritative unless a manual override is in effect.
type BalanceDue struct {
	FinalTotal     entities.Cents
	ApprovedExtras entities.Cents
	PendingExtras  entities.Cents
	AdvancePayment entities.Cents
	Balance        entities.Cents
	ManualOverride bool
	OverrideStale  bool
}

// IAuthorizationUseCase lets the bearer of an order's public token approve or
// reject proposed extra work, and keeps the order total consistent.

type IAuthorizationUseCase interface {
	ProposeUpdate(ctx context.Context, cmd ProposeUpdateCommand) (entities.ServiceUpdate, error)
	Resolve(ctx context.Context, updateID, token, decision string) (entities.ServiceUpdate, error)
	BalanceDue(ctx context.Context, orderID string) (BalanceDue, error)
	OrderByToken(ctx context.Context, token string) (entities.Order, []entities.ServiceUpdate, BalanceDue, error)
}

type AuthorizationUseCase struct {
	orders     interfaces.IOrderRepository
	updates    interfaces.IServiceUpdateRepository
	dispatcher interfaces.INotificationDispatcher
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(
	orders interfaces.IOrderRepository,
	updates interfaces.IServiceUpdateRepository,
	dispatcher interfaces.INotificationDispatcher,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{orders: orders, updates: updates, dispatcher: dispatcher}
}

func (u *AuthorizationUseCase) ProposeUpdate(ctx context.Context, cmd ProposeUpdateCommand) (entities.ServiceUpdate, error) {
	cmd.OrderID = strings.TrimSpace(cmd.OrderID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.OrderID == "" || cmd.Title == "" {
		return entities.ServiceUpdate{}, ErrInvalidUpdateData
	}
	if cmd.EstimatedPrice < 0 {
		return entities.ServiceUpdate{}, ErrInvalidEstimatedPrice
	}

	o, err := u.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return entities.ServiceUpdate{}, err
	}
	if o.ID == "" {
		return entities.ServiceUpdate{}, ErrOrderNotFound
	}

	status := entities.AuthorizationNotApplicable
	if cmd.RequiresAuthorization {
		status = entities.AuthorizationPending
	}
	su := entities.ServiceUpdate{
		ID:                    uuid.NewString(),
		OrderID:               o.ID,
		Type:                  strings.TrimSpace(cmd.Type),
		Title:                 cmd.Title,
		Description:           strings.TrimSpace(cmd.Description),
		EstimatedPrice:        cmd.EstimatedPrice,
		RequiresAuthorization: cmd.RequiresAuthorization,
		AuthorizationStatus:   status,
		Photos:                cmd.Photos,
		CreatedAt:             time.Now().UTC(),
	}

	created, err := u.updates.Create(ctx, su)
	if err != nil {
		log.Printf("[authorization][usecase] propose failed order_id=%s err=%v", o.ID, err)
		return entities.ServiceUpdate{}, err
	}
	log.Printf("[authorization][usecase] propose success order_id=%s update_id=%s requires_auth=%t", o.ID, created.ID, cmd.RequiresAuthorization)

	if cmd.RequiresAuthorization {
		u.notifyClient(o, created)
	}
	return created, nil
}

// Resolve records the client's decision exactly once. Concurrent
// double-submission loses the conditional write and gets ErrAlreadyResolved,
// so the losing tab can tell the race happened.
func (u *AuthorizationUseCase) Resolve(ctx context.Context, updateID, token, decision string) (entities.ServiceUpdate, error) {
	updateID = strings.TrimSpace(updateID)
	if updateID == "" {
		return entities.ServiceUpdate{}, ErrUpdateNotFound
	}

	var target entities.AuthorizationStatus
	switch decision {
	case DecisionApprove:
		target = entities.AuthorizationApproved
	case DecisionReject:
		target = entities.AuthorizationRejected
	default:
		return entities.ServiceUpdate{}, ErrInvalidDecision
	}

	su, err := u.updates.GetByID(ctx, updateID)
	if err != nil {
		return entities.ServiceUpdate{}, err
	}
	if su.ID == "" {
		return entities.ServiceUpdate{}, ErrUpdateNotFound
	}

	o, err := u.orders.GetByID(ctx, su.OrderID)
	if err != nil {
		return entities.ServiceUpdate{}, err
	}
	// Token mismatch is a security boundary: do not reveal whether the update
	// or its order exist.
	if o.ID == "" || o.PublicToken == "" || o.PublicToken != strings.TrimSpace(token) {
		return entities.ServiceUpdate{}, ErrInvalidPublicToken
	}

	if su.AuthorizationStatus != entities.AuthorizationPending {
		return entities.ServiceUpdate{}, ErrAlreadyResolved
	}

	resolved, err := u.updates.Resolve(ctx, su.ID, target, time.Now().UTC())
	if err != nil {
		log.Printf("[authorization][usecase] resolve failed update_id=%s err=%v", su.ID, err)
		return entities.ServiceUpdate{}, err
	}
	if resolved.ID == "" {
		return entities.ServiceUpdate{}, ErrAlreadyResolved
	}
	log.Printf("[authorization][usecase] resolve success update_id=%s order_id=%s decision=%s", su.ID, o.ID, decision)

	if target == entities.AuthorizationApproved {
		if err := u.creditApprovedExtra(ctx, o, su); err != nil {
			return entities.ServiceUpdate{}, err
		}
	}
	return resolved, nil
}

// creditApprovedExtra credits the approved estimate to the stored total. The
// approval is already committed when this runs, so the credit is retried once;
// if it still fails the error is logged for reconciliation and surfaced.
// Balance reads recompute from parts, so they stay correct in the meantime.
func (u *AuthorizationUseCase) creditApprovedExtra(ctx context.Context, o entities.Order, su entities.ServiceUpdate) error {
	_, err := u.orders.AddApprovedExtra(ctx, o.ID, su.EstimatedPrice, o.ManualTotalApplied)
	if err == nil {
		return nil
	}
	log.Printf("[authorization][usecase] total credit failed, retrying update_id=%s order_id=%s amount=%d err=%v", su.ID, o.ID, int64(su.EstimatedPrice), err)
	if _, err = u.orders.AddApprovedExtra(ctx, o.ID, su.EstimatedPrice, o.ManualTotalApplied); err != nil {
		log.Printf("[authorization][usecase] total credit needs reconciliation update_id=%s order_id=%s amount=%d err=%v", su.ID, o.ID, int64(su.EstimatedPrice), err)
		return err
	}
	return nil
}

func (u *AuthorizationUseCase) BalanceDue(ctx context.Context, orderID string) (BalanceDue, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return BalanceDue{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return BalanceDue{}, err
	}
	if o.ID == "" {
		return BalanceDue{}, ErrOrderNotFound
	}
	return u.balanceFor(ctx, o)
}

// OrderByToken is the public portal read: resolves the bearer token to
// exactly one order, refreshes the client-last-seen marker (best-effort) and
// returns the full client view.
func (u *AuthorizationUseCase) OrderByToken(ctx context.Context, token string) (entities.Order, []entities.ServiceUpdate, BalanceDue, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Order{}, nil, BalanceDue{}, ErrInvalidPublicToken
	}
	o, err := u.orders.GetByPublicToken(ctx, token)
	if err != nil {
		return entities.Order{}, nil, BalanceDue{}, err
	}
	if o.ID == "" {
		return entities.Order{}, nil, BalanceDue{}, ErrInvalidPublicToken
	}

	if err := u.orders.TouchClientSeen(ctx, o.ID, time.Now().UTC()); err != nil {
		log.Printf("[authorization][usecase] touch last-seen failed order_id=%s err=%v", o.ID, err)
	}

	updates, err := u.updates.ListByOrderID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, nil, BalanceDue{}, err
	}
	return o, updates, balanceDueFromParts(o, updates), nil
}

func (u *AuthorizationUseCase) balanceFor(ctx context.Context, o entities.Order) (BalanceDue, error) {
	updates, err := u.updates.ListByOrderID(ctx, o.ID)
	if err != nil {
		return BalanceDue{}, err
	}
	return balanceDueFromParts(o, updates), nil
}

func balanceDueFromParts(o entities.Order, updates []entities.ServiceUpdate) BalanceDue {
	var approved, pending entities.Cents
	for _, su := range updates {
		switch su.AuthorizationStatus {
		case entities.AuthorizationApproved:
			approved += su.EstimatedPrice
		case entities.AuthorizationPending:
			pending += su.EstimatedPrice
		}
	}

	finalTotal := o.ServicesTotal() + approved
	if o.ManualTotalApplied {
		finalTotal = o.TotalAmount
	}
	return BalanceDue{
		FinalTotal:     finalTotal,
		ApprovedExtras: approved,
		PendingExtras:  pending,
		AdvancePayment: o.AdvancePayment,
		Balance:        finalTotal - o.AdvancePayment,
		ManualOverride: o.ManualTotalApplied,
		OverrideStale:  o.OverrideStale,
	}
}

func (u *AuthorizationUseCase) notifyClient(o entities.Order, su entities.ServiceUpdate) {
	if u.dispatcher == nil || o.ClientContact == "" {
		return
	}
	params := map[string]string{
		"order_number": o.OrderNumber,
		"title":        su.Title,
		"price":        su.EstimatedPrice.String(),
	}
	delivered, err := u.dispatcher.Notify(context.Background(), o.ClientContact, TemplateUpdateAuthorization, params)
	if err != nil {
		log.Printf("[authorization][usecase] notification failed order_id=%s update_id=%s err=%v", o.ID, su.ID, err)
		return
	}
	if !delivered {
		log.Printf("[authorization][usecase] notification not delivered order_id=%s update_id=%s", o.ID, su.ID)
	}
}
