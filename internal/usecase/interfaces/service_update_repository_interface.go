package interfaces

import (
	"context"
	"time"

	"moto_garage/internal/domain/entities"
)

// IServiceUpdateRepository abstracts DynamoDB persistence for ServiceUpdate.
//
// Resolve is a conditional update on authorization_status == pending; the
// zero entity return signals the race loser.

type IServiceUpdateRepository interface {
	Create(ctx context.Context, u entities.ServiceUpdate) (entities.ServiceUpdate, error)
	GetByID(ctx context.Context, id string) (entities.ServiceUpdate, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ServiceUpdate, error)
	Resolve(ctx context.Context, id string, status entities.AuthorizationStatus, at time.Time) (entities.ServiceUpdate, error)
}
