package entities

import "time"

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

// OrderService is a line of work agreed at (or after) order creation.
type OrderService struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LaborCost Cents  `json:"labor_cost"`
	PartsCost Cents  `json:"parts_cost"`
	Price     Cents  `json:"price"`
}

// Order is a unit of repair work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (mechanic_id-index): mechanic_id
//   - GSI2 (public_token-index): public_token
//
// Monetary representation: all amounts in Cents (minor units).
//
// TotalAmount is derived: sum(services.price) + ApprovedExtras, unless
// ManualTotalApplied is set, in which case TotalAmount is the explicit
// finalization total and OverrideStale tells callers the derived amount has
// moved since the override was recorded.

type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`

	MechanicID    string `json:"mechanic_id"`
	ApprovedBy    string `json:"approved_by,omitempty"`
	ClientID      string `json:"client_id"`
	ClientContact string `json:"client_contact,omitempty"`
	MotorcycleID  string `json:"motorcycle_id"`

	Services       []OrderService `json:"services"`
	LaborTotal     Cents          `json:"labor_total"`
	PartsTotal     Cents          `json:"parts_total"`
	ApprovedExtras Cents          `json:"approved_extras"`
	TotalAmount    Cents          `json:"total_amount"`
	AdvancePayment Cents          `json:"advance_payment"`

	ManualTotalApplied bool `json:"manual_total_applied"`
	OverrideStale      bool `json:"override_stale"`

	IsPaid     bool       `json:"is_paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	PaymentRef string     `json:"payment_ref,omitempty"`

	Status  string         `json:"status"`
	History []StatusChange `json:"history"`

	CancellationReason      string     `json:"cancellation_reason,omitempty"`
	CancellationRequestedAt *time.Time `json:"cancellation_requested_at,omitempty"`

	// SettlementID is set exactly once, when this order's commission is
	// claimed by a PaymentRequest. Absent means unsettled.
	SettlementID string `json:"settlement_id,omitempty"`

	PublicToken      string     `json:"public_token,omitempty"`
	ClientLastSeenAt *time.Time `json:"client_last_seen_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServicesTotal sums the agreed service prices.
func (o Order) ServicesTotal() Cents {
	var total Cents
	for _, s := range o.Services {
		total += s.Price
	}
	return total
}

// ComputedTotal is the derived total the invariant is stated against:
// services + approved extras. Ignores any manual override.
func (o Order) ComputedTotal() Cents {
	return o.ServicesTotal() + o.ApprovedExtras
}

// CancellationPending reports whether a cancellation request awaits resolution.
func (o Order) CancellationPending() bool {
	return o.CancellationRequestedAt != nil
}

// Finalization carries the one-shot payment closure of an order.
type Finalization struct {
	LaborTotal    Cents
	PartsTotal    Cents
	Total         Cents
	ManualApplied bool
	PaymentRef    string
	PaidAt        time.Time
}
