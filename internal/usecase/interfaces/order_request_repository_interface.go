package interfaces

import (
	"context"
	"time"

	"moto_garage/internal/domain/entities"
)

// IOrderRequestRepository abstracts DynamoDB persistence for OrderRequest.
//
// Resolve is a conditional update on status == pending (resolve-once);
// createdOrderID is only ever written on the approved path.

type IOrderRequestRepository interface {
	Create(ctx context.Context, r entities.OrderRequest) (entities.OrderRequest, error)
	GetByID(ctx context.Context, id string) (entities.OrderRequest, error)
	ListPendingByMaster(ctx context.Context, masterID string) ([]entities.OrderRequest, error)
	Resolve(ctx context.Context, id string, status entities.OrderRequestStatus, createdOrderID, notes string, at time.Time) (entities.OrderRequest, error)
}
