package request

import (
	"strings"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
)

// SubmitOrderRequestRequest is an auxiliary's proposed order, pending a
// master's approval. The order_data snapshot becomes the Order verbatim when
// approved.
type SubmitOrderRequestRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
	MasterID   string `json:"master_id" binding:"required"`
	OrderData  struct {
		ClientID       string                `json:"client_id" binding:"required"`
		ClientContact  string                `json:"client_contact"`
		MotorcycleID   string                `json:"motorcycle_id" binding:"required"`
		Services       []OrderServiceRequest `json:"services"`
		AdvancePayment float64               `json:"advance_payment"`
	} `json:"order_data" binding:"required"`
}

func (r SubmitOrderRequestRequest) ToCommand() (usecase.SubmitOrderRequestCommand, error) {
	services := make([]entities.OrderService, 0, len(r.OrderData.Services))
	for _, s := range r.OrderData.Services {
		svc, err := s.ToEntity()
		if err != nil {
			return usecase.SubmitOrderRequestCommand{}, err
		}
		services = append(services, svc)
	}
	return usecase.SubmitOrderRequestCommand{
		MechanicID: strings.TrimSpace(r.MechanicID),
		MasterID:   strings.TrimSpace(r.MasterID),
		OrderData: entities.OrderDraft{
			ClientID:       strings.TrimSpace(r.OrderData.ClientID),
			ClientContact:  strings.TrimSpace(r.OrderData.ClientContact),
			MotorcycleID:   strings.TrimSpace(r.OrderData.MotorcycleID),
			Services:       services,
			AdvancePayment: entities.CentsFromFloat(r.OrderData.AdvancePayment),
		},
	}, nil
}

// RejectOrderRequestRequest carries the mandatory explanation for a refusal.
type RejectOrderRequestRequest struct {
	Notes string `json:"notes" binding:"required"`
}
