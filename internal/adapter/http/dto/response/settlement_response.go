package response

import (
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase"
)

type OrderCommissionResponse struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	LaborTotal  float64 `json:"labor_total"`
	Commission  float64 `json:"commission"`
}

type PaymentRequestResponse struct {
	ID            string `json:"id"`
	FromMasterID  string `json:"from_master_id"`
	ToAuxiliaryID string `json:"to_auxiliary_id"`

	TotalAmount          float64 `json:"total_amount"`
	LaborAmount          float64 `json:"labor_amount"`
	CommissionPercentage int64   `json:"commission_percentage"`

	OrdersSummary []OrderCommissionResponse `json:"orders_summary"`
	EarningIDs    []string                  `json:"earning_ids"`

	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromPaymentRequest(pr entities.PaymentRequest) PaymentRequestResponse {
	summary := make([]OrderCommissionResponse, 0, len(pr.OrdersSummary))
	for _, oc := range pr.OrdersSummary {
		summary = append(summary, OrderCommissionResponse{
			OrderID:     oc.OrderID,
			OrderNumber: oc.OrderNumber,
			LaborTotal:  oc.LaborTotal.Float64(),
			Commission:  oc.Commission.Float64(),
		})
	}

	return PaymentRequestResponse{
		ID:                   pr.ID,
		FromMasterID:         pr.FromMasterID,
		ToAuxiliaryID:        pr.ToAuxiliaryID,
		TotalAmount:          pr.TotalAmount.Float64(),
		LaborAmount:          pr.LaborAmount.Float64(),
		CommissionPercentage: pr.CommissionPercentage,
		OrdersSummary:        summary,
		EarningIDs:           pr.EarningIDs,
		Status:               string(pr.Status),
		Notes:                pr.Notes,
		CreatedAt:            pr.CreatedAt,
		RespondedAt:          pr.RespondedAt,
	}
}

func FromPaymentRequests(requests []entities.PaymentRequest) []PaymentRequestResponse {
	out := make([]PaymentRequestResponse, 0, len(requests))
	for _, pr := range requests {
		out = append(out, FromPaymentRequest(pr))
	}
	return out
}

// PendingEarningsResponse is the commission a mechanic has accrued on paid,
// not yet settled orders.
type PendingEarningsResponse struct {
	TotalOrders    int                       `json:"total_orders"`
	TotalLabor     float64                   `json:"total_labor"`
	PendingPayment float64                   `json:"pending_payment"`
	Percentage     int64                     `json:"percentage"`
	Orders         []OrderCommissionResponse `json:"orders"`
}

func FromPendingEarnings(e usecase.PendingEarnings) PendingEarningsResponse {
	orders := make([]OrderCommissionResponse, 0, len(e.Orders))
	for _, oc := range e.Orders {
		orders = append(orders, OrderCommissionResponse{
			OrderID:     oc.OrderID,
			OrderNumber: oc.OrderNumber,
			LaborTotal:  oc.LaborTotal.Float64(),
			Commission:  oc.Commission.Float64(),
		})
	}
	return PendingEarningsResponse{
		TotalOrders:    e.TotalOrders,
		TotalLabor:     e.TotalLabor.Float64(),
		PendingPayment: e.PendingPayment.Float64(),
		Percentage:     e.Percentage,
		Orders:         orders,
	}
}
