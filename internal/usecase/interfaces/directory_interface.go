package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IMechanicDirectory resolves mechanics by email (apperr.ErrNotFound on miss).
// InvalidateMechanics drops any cached snapshot after a local write.
type IMechanicDirectory interface {
	FindMechanicByEmail(ctx context.Context, email string) (entities.Mechanic, error)
	InvalidateMechanics()
}

// IUserDirectory resolves accounts by email (apperr.ErrNotFound on miss).
type IUserDirectory interface {
	FindUserByEmail(ctx context.Context, email string) (entities.User, error)
}
