package interfaces

import (
	"context"

	"moto_garage/internal/domain/entities"
)

// IMechanicDirectory answers the identity questions the workflow engines
// need: commission rates, contact info, and who supervises whom. The actual
// permission model lives upstream; callers pass capability flags per call.

type IMechanicDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	IsMasterFor(ctx context.Context, masterID, auxiliaryID string) (bool, error)
}
