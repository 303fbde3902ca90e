package interfaces

import (
	"context"
	"time"

	"moto_garage/internal/domain/entities"
)

// IPaymentRequestRepository abstracts DynamoDB persistence for PaymentRequest.
//
// Accept is a conditional update on status == pending (accept-once).

type IPaymentRequestRepository interface {
	Create(ctx context.Context, pr entities.PaymentRequest) (entities.PaymentRequest, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRequest, error)
	ListByAuxiliary(ctx context.Context, auxiliaryID string) ([]entities.PaymentRequest, error)
	Accept(ctx context.Context, id string, at time.Time) (entities.PaymentRequest, error)
}
