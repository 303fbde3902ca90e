package entities

import "time"

// OrderRequestStatus is the approval lifecycle of a proposed order.
type OrderRequestStatus string

const (
	OrderRequestPending  OrderRequestStatus = "pending"
	OrderRequestApproved OrderRequestStatus = "approved"
	OrderRequestRejected OrderRequestStatus = "rejected"
)

// OrderDraft is the full order snapshot an auxiliary submits for approval.
// Approval materializes it into a real Order verbatim.
type OrderDraft struct {
	ClientID       string         `json:"client_id"`
	ClientContact  string         `json:"client_contact,omitempty"`
	MotorcycleID   string         `json:"motorcycle_id"`
	Services       []OrderService `json:"services"`
	AdvancePayment Cents          `json:"advance_payment"`
}

// OrderRequest is a proposed order from a mechanic without direct
// order-creation rights, resolved exactly once by a master.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (master_id-index): master_id
//
// Invariant: exactly one of {CreatedOrderID set, Status == rejected,
// Status == pending} holds at any time. Approval is the only writer of
// CreatedOrderID; once set it is immutable.

type OrderRequest struct {
	ID         string `json:"id"`
	MechanicID string `json:"mechanic_id"`
	MasterID   string `json:"master_id"`

	OrderData OrderDraft `json:"order_data"`

	Status         OrderRequestStatus `json:"status"`
	CreatedOrderID string             `json:"created_order_id,omitempty"`
	ResponseNotes  string             `json:"response_notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}
