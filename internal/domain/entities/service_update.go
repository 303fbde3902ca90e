package entities

import "time"

// AuthorizationStatus tracks the client's decision on a proposed update.
//
// Updates that never required authorization stay not-applicable forever and
// never contribute to the order total. Pending updates are terminal once
// approved or rejected.

type AuthorizationStatus string

const (
	AuthorizationNotApplicable AuthorizationStatus = "not_applicable"
	AuthorizationPending       AuthorizationStatus = "pending"
	AuthorizationApproved      AuthorizationStatus = "approved"
	AuthorizationRejected      AuthorizationStatus = "rejected"
)

// ServiceUpdate is additional work discovered after order creation, proposed
// to the client through the order's public link.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type ServiceUpdate struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	EstimatedPrice        Cents               `json:"estimated_price"`
	RequiresAuthorization bool                `json:"requires_authorization"`
	AuthorizationStatus   AuthorizationStatus `json:"authorization_status"`

	Photos []string `json:"photos,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
