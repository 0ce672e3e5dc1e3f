package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IMechanicRepository abstracts remote-store persistence for Mechanic.
//
// Update overwrites every listing field of an existing record (upsert second leg).

type IMechanicRepository interface {
	ListAll(ctx context.Context) ([]entities.Mechanic, error)
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
}
