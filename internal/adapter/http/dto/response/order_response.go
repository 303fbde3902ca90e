package response

import (
	"time"

	"moto_garage/internal/domain/entities"
)

type OrderServiceResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LaborCost float64 `json:"labor_cost"`
	PartsCost float64 `json:"parts_cost"`
	Price     float64 `json:"price"`
}

type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`

	MechanicID    string `json:"mechanic_id"`
	ApprovedBy    string `json:"approved_by,omitempty"`
	ClientID      string `json:"client_id"`
	ClientContact string `json:"client_contact,omitempty"`
	MotorcycleID  string `json:"motorcycle_id"`

	Services       []OrderServiceResponse `json:"services"`
	LaborTotal     float64                `json:"labor_total"`
	PartsTotal     float64                `json:"parts_total"`
	ApprovedExtras float64                `json:"approved_extras"`
	TotalAmount    float64                `json:"total_amount"`
	AdvancePayment float64                `json:"advance_payment"`

	ManualTotalApplied bool `json:"manual_total_applied"`
	OverrideStale      bool `json:"override_stale"`

	IsPaid     bool       `json:"is_paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	PaymentRef string     `json:"payment_ref,omitempty"`

	Status  string                 `json:"status"`
	History []StatusChangeResponse `json:"history"`

	CancellationReason      string     `json:"cancellation_reason,omitempty"`
	CancellationRequestedAt *time.Time `json:"cancellation_requested_at,omitempty"`

	SettlementID string `json:"settlement_id,omitempty"`

	PublicToken      string     `json:"public_token,omitempty"`
	ClientLastSeenAt *time.Time `json:"client_last_seen_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	services := make([]OrderServiceResponse, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, OrderServiceResponse{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: s.LaborCost.Float64(),
			PartsCost: s.PartsCost.Float64(),
			Price:     s.Price.Float64(),
		})
	}
	history := make([]StatusChangeResponse, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, StatusChangeResponse{
			Status:    h.Status,
			ChangedAt: h.ChangedAt,
			Note:      h.Note,
		})
	}

	return OrderResponse{
		ID:                      o.ID,
		OrderNumber:             o.OrderNumber,
		MechanicID:              o.MechanicID,
		ApprovedBy:              o.ApprovedBy,
		ClientID:                o.ClientID,
		ClientContact:           o.ClientContact,
		MotorcycleID:            o.MotorcycleID,
		Services:                services,
		LaborTotal:              o.LaborTotal.Float64(),
		PartsTotal:              o.PartsTotal.Float64(),
		ApprovedExtras:          o.ApprovedExtras.Float64(),
		TotalAmount:             o.TotalAmount.Float64(),
		AdvancePayment:          o.AdvancePayment.Float64(),
		ManualTotalApplied:      o.ManualTotalApplied,
		OverrideStale:           o.OverrideStale,
		IsPaid:                  o.IsPaid,
		PaidAt:                  o.PaidAt,
		PaymentRef:              o.PaymentRef,
		Status:                  o.Status,
		History:                 history,
		CancellationReason:      o.CancellationReason,
		CancellationRequestedAt: o.CancellationRequestedAt,
		SettlementID:            o.SettlementID,
		PublicToken:             o.PublicToken,
		ClientLastSeenAt:        o.ClientLastSeenAt,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

// FromOrderPublic is the client-portal projection. It hides staff-only
// fields: settlement mark, payment reference and the token itself.
func FromOrderPublic(o entities.Order) OrderResponse {
	resp := FromOrder(o)
	resp.SettlementID = ""
	resp.PaymentRef = ""
	resp.PublicToken = ""
	resp.MechanicID = ""
	resp.ApprovedBy = ""
	return resp
}
