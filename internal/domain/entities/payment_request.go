package entities

import "time"

// PaymentRequestStatus is the settlement instrument lifecycle.
//
// There is deliberately no rejected state: the source product only ever moves
// a request from pending to accepted. Flagged to product as a possible gap;
// do not invent a rejection path here.

type PaymentRequestStatus string

const (
	PaymentRequestPending  PaymentRequestStatus = "pending"
	PaymentRequestAccepted PaymentRequestStatus = "accepted"
)

// OrderCommission is one order's snapshot inside a payment request summary.
type OrderCommission struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	LaborTotal  Cents  `json:"labor_total"`
	Commission  Cents  `json:"commission"`
}

// PaymentRequest settles the commission a master mechanic owes an auxiliary.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (to_auxiliary_id-index): to_auxiliary_id
//
// Invariant: TotalAmount == LaborAmount * CommissionPercentage / 100, and
// EarningIDs are disjoint across all requests for the same auxiliary (each
// earning settled at most once; enforced by the settlement_id mark on orders).

type PaymentRequest struct {
	ID            string `json:"id"`
	FromMasterID  string `json:"from_master_id"`
	ToAuxiliaryID string `json:"to_auxiliary_id"`

	TotalAmount          Cents `json:"total_amount"`
	LaborAmount          Cents `json:"labor_amount"`
	CommissionPercentage int64 `json:"commission_percentage"`

	OrdersSummary []OrderCommission `json:"orders_summary"`
	EarningIDs    []string          `json:"earning_ids"`

	Status PaymentRequestStatus `json:"status"`
	Notes  string               `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}
