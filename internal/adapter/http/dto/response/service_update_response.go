package response

import (
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
)

type ServiceUpdateResponse struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	EstimatedPrice        float64 `json:"estimated_price"`
	RequiresAuthorization bool    `json:"requires_authorization"`
	AuthorizationStatus   string  `json:"authorization_status"`

	Photos []string `json:"photos,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func FromServiceUpdate(u entities.ServiceUpdate) ServiceUpdateResponse {
	return ServiceUpdateResponse{
		ID:                    u.ID,
		OrderID:               u.OrderID,
		Type:                  u.Type,
		Title:                 u.Title,
		Description:           u.Description,
		EstimatedPrice:        u.EstimatedPrice.Float64(),
		RequiresAuthorization: u.RequiresAuthorization,
		AuthorizationStatus:   string(u.AuthorizationStatus),
		Photos:                u.Photos,
		CreatedAt:             u.CreatedAt,
		ResolvedAt:            u.ResolvedAt,
	}
}

func FromServiceUpdates(updates []entities.ServiceUpdate) []ServiceUpdateResponse {
	out := make([]ServiceUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, FromServiceUpdate(u))
	}
	return out
}

// BalanceDueResponse is the payment summary shown on the client portal and
// to staff preparing delivery.
type BalanceDueResponse struct {
	FinalTotal     float64 `json:"final_total"`
	ApprovedExtras float64 `json:"approved_extras"`
	PendingExtras  float64 `json:"pending_extras"`
	AdvancePayment float64 `json:"advance_payment"`
	Balance        float64 `json:"balance"`
	ManualOverride bool    `json:"manual_override"`
	OverrideStale  bool    `json:"override_stale"`
}

func FromBalanceDue(b usecase.BalanceDue) BalanceDueResponse {
	return BalanceDueResponse{
		FinalTotal:     b.FinalTotal.Float64(),
		ApprovedExtras: b.ApprovedExtras.Float64(),
		PendingExtras:  b.PendingExtras.Float64(),
		AdvancePayment: b.AdvancePayment.Float64(),
		Balance:        b.Balance.Float64(),
		ManualOverride: b.ManualOverride,
		OverrideStale:  b.OverrideStale,
	}
}

// PortalResponse is the full client view behind a public order link.
type PortalResponse struct {
	Order   OrderResponse           `json:"order"`
	Updates []ServiceUpdateResponse `json:"updates"`
	Balance BalanceDueResponse      `json:"balance"`
}
