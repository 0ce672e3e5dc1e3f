package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IUserRepository abstracts remote-store persistence for User.

type IUserRepository interface {
	ListAll(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
	UpdateProfile(ctx context.Context, recordKey, name, phone string) error
	UpdatePasswordHash(ctx context.Context, recordKey, passwordHash string) error
}
