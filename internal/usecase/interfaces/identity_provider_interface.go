package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IIdentityProvider exposes the current session identity to the scheduler and the pipeline.
//
// Current returns ok=false without error when nobody is logged in or the session expired.
// RequireIdentity fails with apperr.ErrUnauthenticated in that case.
type IIdentityProvider interface {
	Current(ctx context.Context) (entities.Identity, bool, error)
	RequireIdentity(ctx context.Context) (entities.Identity, error)
}

// ISessionManager is the full session contract used by the account flows.
type ISessionManager interface {
	IIdentityProvider
	Establish(ctx context.Context, identity entities.Identity) (entities.Session, error)
	Clear(ctx context.Context) error
	UpdateIdentity(ctx context.Context, name, phone string) (entities.Identity, error)
}
