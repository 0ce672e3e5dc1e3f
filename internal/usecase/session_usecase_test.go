package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	mock_interfaces "car_maintenance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var sessionNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestSessionUseCase(t *testing.T) (*SessionUseCase, *mock_interfaces.MockISessionStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock_interfaces.NewMockISessionStorage(ctrl)
	uc := NewSessionUseCase(storage, 24*time.Hour, func() time.Time { return sessionNow })
	uc.newToken = func() string { return "token-1" }
	return uc, storage
}

func TestSessionUseCase_Establish(t *testing.T) {
	t.Run("stores normalized identity with login time", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) error {
			if s.Token != "token-1" || s.Identity.Email != "ann@example.com" || !s.Identity.LoginTime.Equal(sessionNow) {
				t.Fatalf("unexpected session: %+v", s)
			}
			return nil
		})

		s, err := uc.Establish(context.Background(), entities.Identity{Email: " Ann@Example.com ", Name: "Ann"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "token-1" {
			t.Fatalf("expected token, got %q", s.Token)
		}
	})

	t.Run("email required", func(t *testing.T) {
		uc, _ := newTestSessionUseCase(t)
		_, err := uc.Establish(context.Background(), entities.Identity{})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestSessionUseCase_Current(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(entities.Session{}, false, nil)

		_, ok, err := uc.Current(context.Background())
		if err != nil || ok {
			t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("live session", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(entities.Session{
			Token:    "t",
			Identity: entities.Identity{Email: "a@b.com", LoginTime: sessionNow.Add(-23 * time.Hour)},
		}, true, nil)

		id, ok, err := uc.Current(context.Background())
		if err != nil || !ok || id.Email != "a@b.com" {
			t.Fatalf("expected live identity, got %+v ok=%v err=%v", id, ok, err)
		}
	})

	t.Run("expired session is cleared on read", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(entities.Session{
			Token:    "t",
			Identity: entities.Identity{Email: "a@b.com", LoginTime: sessionNow.Add(-25 * time.Hour)},
		}, true, nil)
		storage.EXPECT().Delete(gomock.Any()).Return(nil)

		_, ok, err := uc.Current(context.Background())
		if err != nil || ok {
			t.Fatalf("expected expired session to read as none, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(entities.Session{}, false, errors.New("disk"))

		_, _, err := uc.Current(context.Background())
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}

func TestSessionUseCase_RequireIdentity(t *testing.T) {
	uc, storage := newTestSessionUseCase(t)
	storage.EXPECT().Load(gomock.Any()).Return(entities.Session{}, false, nil)

	_, err := uc.RequireIdentity(context.Background())
	if !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestSessionUseCase_Authorize(t *testing.T) {
	live := entities.Session{Token: "good", Identity: entities.Identity{Email: "a@b.com", LoginTime: sessionNow}}

	t.Run("matching token", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(live, true, nil)
		id, err := uc.Authorize(context.Background(), "good")
		if err != nil || id.Email != "a@b.com" {
			t.Fatalf("expected identity, got %+v err=%v", id, err)
		}
	})

	t.Run("mismatched token", func(t *testing.T) {
		uc, storage := newTestSessionUseCase(t)
		storage.EXPECT().Load(gomock.Any()).Return(live, true, nil)
		_, err := uc.Authorize(context.Background(), "stale")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		uc, _ := newTestSessionUseCase(t)
		_, err := uc.Authorize(context.Background(), " ")
		if !errors.Is(err, apperr.ErrUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})
}

func TestSessionUseCase_UpdateIdentityKeepsLoginTime(t *testing.T) {
	uc, storage := newTestSessionUseCase(t)
	login := sessionNow.Add(-time.Hour)
	storage.EXPECT().Load(gomock.Any()).Return(entities.Session{
		Token:    "t",
		Identity: entities.Identity{Email: "a@b.com", Name: "Old", LoginTime: login},
	}, true, nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) error {
		if s.Token != "t" || s.Identity.Name != "New" || !s.Identity.LoginTime.Equal(login) {
			t.Fatalf("unexpected saved session: %+v", s)
		}
		return nil
	})

	id, err := uc.UpdateIdentity(context.Background(), "New", "5551234567")
	if err != nil || id.Phone != "5551234567" {
		t.Fatalf("unexpected result %+v err=%v", id, err)
	}
}
