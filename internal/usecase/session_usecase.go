package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"strings"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 24 * time.Hour

var (
	ErrNoSession    = fmt.Errorf("%w: please log in again", apperr.ErrUnauthenticated)
	ErrInvalidToken = fmt.Errorf("%w: session token does not match the active session", apperr.ErrUnauthenticated)
)

// ISessionUseCase manages the single device session.
//
// Expiry is checked lazily: every read compares loginTime with the clock and
// clears an expired record as a side effect.

type ISessionUseCase interface {
	interfaces.ISessionManager
	Authorize(ctx context.Context, token string) (entities.Identity, error)
}

type SessionUseCase struct {
	storage  interfaces.ISessionStorage
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

// NewSessionUseCase builds the session store. A nil clock means time.Now.
func NewSessionUseCase(storage interfaces.ISessionStorage, ttl time.Duration, now func() time.Time) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SessionUseCase{storage: storage, ttl: ttl, now: now, newToken: uuid.NewString}
}

func (u *SessionUseCase) Establish(ctx context.Context, identity entities.Identity) (entities.Session, error) {
	identity.Email = entities.NormalizeEmail(identity.Email)
	if identity.Email == "" {
		return entities.Session{}, apperr.Validation("session email is required")
	}
	identity.LoginTime = u.now().UTC()

	s := entities.Session{Token: u.newToken(), Identity: identity}
	if err := u.storage.Save(ctx, s); err != nil {
		log.Printf("[session][usecase] save failed email=%s err=%v", identity.Email, err)
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] established email=%s", identity.Email)
	return s, nil
}

func (u *SessionUseCase) Current(ctx context.Context) (entities.Identity, bool, error) {
	s, ok, err := u.load(ctx)
	if err != nil || !ok {
		return entities.Identity{}, false, err
	}
	return s.Identity, true, nil
}

func (u *SessionUseCase) Clear(ctx context.Context) error {
	if err := u.storage.Delete(ctx); err != nil {
		log.Printf("[session][usecase] clear failed err=%v", err)
		return err
	}
	return nil
}

func (u *SessionUseCase) RequireIdentity(ctx context.Context) (entities.Identity, error) {
	identity, ok, err := u.Current(ctx)
	if err != nil {
		return entities.Identity{}, err
	}
	if !ok {
		return entities.Identity{}, ErrNoSession
	}
	return identity, nil
}

// Authorize checks a bearer token against the active session.
func (u *SessionUseCase) Authorize(ctx context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, ErrNoSession
	}
	s, ok, err := u.load(ctx)
	if err != nil {
		return entities.Identity{}, err
	}
	if !ok {
		return entities.Identity{}, ErrNoSession
	}
	if subtle.ConstantTimeCompare([]byte(s.Token), []byte(token)) != 1 {
		return entities.Identity{}, ErrInvalidToken
	}
	return s.Identity, nil
}

// UpdateIdentity rewrites the profile fields of the live session; loginTime is kept.
func (u *SessionUseCase) UpdateIdentity(ctx context.Context, name, phone string) (entities.Identity, error) {
	s, ok, err := u.load(ctx)
	if err != nil {
		return entities.Identity{}, err
	}
	if !ok {
		return entities.Identity{}, ErrNoSession
	}
	s.Identity.Name = name
	s.Identity.Phone = phone
	if err := u.storage.Save(ctx, s); err != nil {
		return entities.Identity{}, err
	}
	return s.Identity, nil
}

func (u *SessionUseCase) load(ctx context.Context) (entities.Session, bool, error) {
	s, ok, err := u.storage.Load(ctx)
	if err != nil {
		log.Printf("[session][usecase] load failed err=%v", err)
		return entities.Session{}, false, err
	}
	if !ok {
		return entities.Session{}, false, nil
	}
	if s.Expired(u.now(), u.ttl) {
		log.Printf("[session][usecase] expired email=%s login_time=%s", s.Identity.Email, s.Identity.LoginTime.Format(time.RFC3339))
		if err := u.storage.Delete(ctx); err != nil {
			log.Printf("[session][usecase] clearing expired session failed err=%v", err)
		}
		return entities.Session{}, false, nil
	}
	return s, true, nil
}
