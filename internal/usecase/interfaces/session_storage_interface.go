package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// ISessionStorage persists the single device session under a well-known key.
//
// Load returns ok=false when no session is stored.
type ISessionStorage interface {
	Save(ctx context.Context, s entities.Session) error
	Load(ctx context.Context) (s entities.Session, ok bool, err error)
	Delete(ctx context.Context) error
}
