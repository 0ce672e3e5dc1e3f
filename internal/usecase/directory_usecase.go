package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

var (
	ErrUserNotFound     = fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	ErrMechanicNotFound = fmt.Errorf("%w: mechanic not found", apperr.ErrNotFound)
)

// IDirectoryUseCase looks up users and mechanics by email.
//
// The remote store has no query capability, so every lookup scans a full collection.
// Mechanic snapshots are cached for cacheTTL (0 disables); a listing written elsewhere
// can therefore stay invisible for up to cacheTTL. Local mechanic writes invalidate the
// cache immediately. User lookups always hit the store.

type IDirectoryUseCase interface {
	interfaces.IMechanicDirectory
	interfaces.IUserDirectory
	ListMechanics(ctx context.Context, excludeEmail string) ([]entities.Mechanic, error)
	SearchMechanics(ctx context.Context, excludeEmail, query string) ([]entities.Mechanic, error)
	IsMechanic(ctx context.Context, email string) (bool, error)
}

type DirectoryUseCase struct {
	users     interfaces.IUserRepository
	mechanics interfaces.IMechanicRepository
	cacheTTL  time.Duration
	now       func() time.Time

	group      singleflight.Group
	mu         sync.Mutex
	snapshot   []entities.Mechanic
	fetchedAt  time.Time
	generation uint64
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(users interfaces.IUserRepository, mechanics interfaces.IMechanicRepository, cacheTTL time.Duration) *DirectoryUseCase {
	return &DirectoryUseCase{users: users, mechanics: mechanics, cacheTTL: cacheTTL, now: time.Now}
}

func (u *DirectoryUseCase) FindUserByEmail(ctx context.Context, email string) (entities.User, error) {
	if entities.NormalizeEmail(email) == "" {
		return entities.User{}, apperr.Validation("email is required")
	}
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, usr := range users {
		if entities.SameEmail(usr.Email, email) {
			return usr, nil
		}
	}
	return entities.User{}, ErrUserNotFound
}

func (u *DirectoryUseCase) FindMechanicByEmail(ctx context.Context, email string) (entities.Mechanic, error) {
	if entities.NormalizeEmail(email) == "" {
		return entities.Mechanic{}, apperr.Validation("mechanic email is required")
	}
	all, err := u.allMechanics(ctx)
	if err != nil {
		return entities.Mechanic{}, err
	}
	for _, m := range all {
		if entities.SameEmail(m.Email, email) {
			return m, nil
		}
	}
	return entities.Mechanic{}, ErrMechanicNotFound
}

// ListMechanics returns every listing except excludeEmail's own.
func (u *DirectoryUseCase) ListMechanics(ctx context.Context, excludeEmail string) ([]entities.Mechanic, error) {
	return u.SearchMechanics(ctx, excludeEmail, "")
}

// SearchMechanics filters listings by a case-insensitive match on name, workshop,
// address or any service.
func (u *DirectoryUseCase) SearchMechanics(ctx context.Context, excludeEmail, query string) ([]entities.Mechanic, error) {
	all, err := u.allMechanics(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]entities.Mechanic, 0, len(all))
	for _, m := range all {
		if excludeEmail != "" && entities.SameEmail(m.Email, excludeEmail) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (u *DirectoryUseCase) IsMechanic(ctx context.Context, email string) (bool, error) {
	_, err := u.FindMechanicByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrMechanicNotFound) {
		return false, nil
	}
	return false, err
}

func (u *DirectoryUseCase) InvalidateMechanics() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snapshot = nil
	u.fetchedAt = time.Time{}
	u.generation++
}

func (u *DirectoryUseCase) allMechanics(ctx context.Context) ([]entities.Mechanic, error) {
	if u.cacheTTL <= 0 {
		return u.mechanics.ListAll(ctx)
	}

	u.mu.Lock()
	if u.snapshot != nil && u.now().Sub(u.fetchedAt) < u.cacheTTL {
		cached := u.snapshot
		u.mu.Unlock()
		return cached, nil
	}
	gen := u.generation
	u.mu.Unlock()

	// Waiters share this fetch, so one caller's cancellation must not fail the rest.
	// The store client bounds each request with its own timeout.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := u.group.Do("mechanics", func() (interface{}, error) {
		fresh, err := u.mechanics.ListAll(fetchCtx)
		if err != nil {
			return nil, err
		}
		u.mu.Lock()
		// An invalidation while fetching means this snapshot may predate a local write.
		if u.generation == gen {
			u.snapshot = fresh
			u.fetchedAt = u.now()
		}
		u.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	mechanics, ok := v.([]entities.Mechanic)
	if !ok {
		return nil, fmt.Errorf("unexpected type from mechanics singleflight: %T", v)
	}
	return mechanics, nil
}

func matchesQuery(m entities.Mechanic, query string) bool {
	fields := []string{m.Name, m.Address}
	if m.WorkshopName != nil {
		fields = append(fields, *m.WorkshopName)
	}
	fields = append(fields, m.Services...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
