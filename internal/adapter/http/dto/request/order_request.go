package request

import (
	"encoding/json"
	"errors"
	"strings"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
)

var (
	ErrInvalidServiceCost = errors.New("invalid service cost")
)

// OrderServiceRequest is one line of agreed work. Costs arrive in currency
// units and are converted to cents at the edge.
type OrderServiceRequest struct {
	Name      string  `json:"name" binding:"required"`
	LaborCost float64 `json:"labor_cost"`
	PartsCost float64 `json:"parts_cost"`
}

func (r OrderServiceRequest) ToEntity() (entities.OrderService, error) {
	if r.LaborCost < 0 || r.PartsCost < 0 {
		return entities.OrderService{}, ErrInvalidServiceCost
	}
	return entities.OrderService{
		Name:      strings.TrimSpace(r.Name),
		LaborCost: entities.CentsFromFloat(r.LaborCost),
		PartsCost: entities.CentsFromFloat(r.PartsCost),
	}, nil
}

type CreateOrderRequest struct {
	MechanicID     string                `json:"mechanic_id" binding:"required"`
	ClientID       string                `json:"client_id" binding:"required"`
	ClientContact  string                `json:"client_contact"`
	MotorcycleID   string                `json:"motorcycle_id" binding:"required"`
	Services       []OrderServiceRequest `json:"services"`
	AdvancePayment float64               `json:"advance_payment"`
}

func (r CreateOrderRequest) ToCommand() (usecase.CreateOrderCommand, error) {
	services := make([]entities.OrderService, 0, len(r.Services))
	for _, s := range r.Services {
		svc, err := s.ToEntity()
		if err != nil {
			return usecase.CreateOrderCommand{}, err
		}
		services = append(services, svc)
	}
	return usecase.CreateOrderCommand{
		MechanicID:     strings.TrimSpace(r.MechanicID),
		ClientID:       strings.TrimSpace(r.ClientID),
		ClientContact:  strings.TrimSpace(r.ClientContact),
		MotorcycleID:   strings.TrimSpace(r.MotorcycleID),
		Services:       services,
		AdvancePayment: entities.CentsFromFloat(r.AdvancePayment),
	}, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type AdvanceStatusRequest struct {
	Note string `json:"note"`
}

// FinalizeOrderRequest closes an order's payment. manual_total > 0 overrides
// labor_total + parts_total. mp_payload, when present, is forwarded to the
// payment provider to charge the outstanding balance.
type FinalizeOrderRequest struct {
	LaborTotal  float64         `json:"labor_total"`
	PartsTotal  float64         `json:"parts_total"`
	ManualTotal float64         `json:"manual_total"`
	MPPayload   json.RawMessage `json:"mp_payload,omitempty"`
}

func (r FinalizeOrderRequest) ToCommand(orderID string) usecase.FinalizeOrderCommand {
	return usecase.FinalizeOrderCommand{
		OrderID:     orderID,
		LaborTotal:  entities.CentsFromFloat(r.LaborTotal),
		PartsTotal:  entities.CentsFromFloat(r.PartsTotal),
		ManualTotal: entities.CentsFromFloat(r.ManualTotal),
		MPPayload:   r.MPPayload,
	}
}

type AddServiceRequest struct {
	Name      string  `json:"name" binding:"required"`
	LaborCost float64 `json:"labor_cost"`
	PartsCost float64 `json:"parts_cost"`
}

type CancellationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ResolveCancellationRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
