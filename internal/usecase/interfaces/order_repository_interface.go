package interfaces

import (
	"context"
	"time"

	"moto_garage/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Conditional-write semantics: every mutation that carries a state
// precondition (expected status, not yet paid, not yet cancelled, not yet
// settled) is implemented as a DynamoDB conditional update. A failed
// condition returns the zero Order (no error), matching the read methods'
// not-found convention; callers distinguish the two by reading first.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	NextOrderNumber(ctx context.Context) (string, error)

	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPublicToken(ctx context.Context, token string) (entities.Order, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Order, error)

	// ListUnsettledPaid returns the mechanic's paid orders whose commission
	// has not been claimed by any payment request.
	ListUnsettledPaid(ctx context.Context, mechanicID string) ([]entities.Order, error)

	// ChangeStatus appends the history entry and moves the order to
	// change.Status, conditioned on the current status being expectedStatus.
	ChangeStatus(ctx context.Context, id, expectedStatus string, change entities.StatusChange) (entities.Order, error)

	// FinalizePayment marks the order paid exactly once (condition: not paid).
	FinalizePayment(ctx context.Context, id string, f entities.Finalization) (entities.Order, error)

	// AppendService adds a service line. When overrideApplied, the stored
	// total is left alone and the override is flagged stale; otherwise the
	// total grows by the service price.
	AppendService(ctx context.Context, id string, svc entities.OrderService, overrideApplied bool) (entities.Order, error)

	// AddApprovedExtra credits an approved update's estimate to the order
	// (same override semantics as AppendService).
	AddApprovedExtra(ctx context.Context, id string, amount entities.Cents, overrideApplied bool) (entities.Order, error)

	// SetCancellation records a cancellation request (condition: none pending).
	SetCancellation(ctx context.Context, id, reason string, at time.Time) (entities.Order, error)
	ClearCancellation(ctx context.Context, id string) (entities.Order, error)
	Delete(ctx context.Context, id string) error

	// MarkSettled claims the order's commission for a payment request.
	// Returns false when another request already claimed it.
	MarkSettled(ctx context.Context, id, settlementID string) (bool, error)

	// UnmarkSettled releases a claim, but only if the order still points at
	// settlementID. Used to roll back partially built payment requests.
	UnmarkSettled(ctx context.Context, id, settlementID string) error

	TouchClientSeen(ctx context.Context, id string, at time.Time) error
}
