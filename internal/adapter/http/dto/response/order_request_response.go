package response

import (
	"time"

	"moto_garage/internal/domain/entities"
)

type OrderDraftResponse struct {
	ClientID       string                 `json:"client_id"`
	ClientContact  string                 `json:"client_contact,omitempty"`
	MotorcycleID   string                 `json:"motorcycle_id"`
	Services       []OrderServiceResponse `json:"services"`
	AdvancePayment float64                `json:"advance_payment"`
}

type OrderRequestResponse struct {
	ID         string `json:"id"`
	MechanicID string `json:"mechanic_id"`
	MasterID   string `json:"master_id"`

	OrderData OrderDraftResponse `json:"order_data"`

	Status         string `json:"status"`
	CreatedOrderID string `json:"created_order_id,omitempty"`
	ResponseNotes  string `json:"response_notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromOrderRequest(r entities.OrderRequest) OrderRequestResponse {
	services := make([]OrderServiceResponse, 0, len(r.OrderData.Services))
	for _, s := range r.OrderData.Services {
		services = append(services, OrderServiceResponse{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: s.LaborCost.Float64(),
			PartsCost: s.PartsCost.Float64(),
			Price:     s.Price.Float64(),
		})
	}

	return OrderRequestResponse{
		ID:         r.ID,
		MechanicID: r.MechanicID,
		MasterID:   r.MasterID,
		OrderData: OrderDraftResponse{
			ClientID:       r.OrderData.ClientID,
			ClientContact:  r.OrderData.ClientContact,
			MotorcycleID:   r.OrderData.MotorcycleID,
			Services:       services,
			AdvancePayment: r.OrderData.AdvancePayment.Float64(),
		},
		Status:         string(r.Status),
		CreatedOrderID: r.CreatedOrderID,
		ResponseNotes:  r.ResponseNotes,
		CreatedAt:      r.CreatedAt,
		RespondedAt:    r.RespondedAt,
	}
}

func FromOrderRequests(requests []entities.OrderRequest) []OrderRequestResponse {
	out := make([]OrderRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromOrderRequest(r))
	}
	return out
}

// ApprovedOrderRequestResponse pairs the resolved request with the order it
// materialized.
type ApprovedOrderRequestResponse struct {
	Request OrderRequestResponse `json:"request"`
	Order   OrderResponse        `json:"order"`
}
