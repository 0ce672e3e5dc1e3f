package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
	mock_interfaces "car_maintenance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type mechanicFixture struct {
	uc        *MechanicUseCase
	mechanics *mock_interfaces.MockIMechanicRepository
	directory *mock_interfaces.MockIMechanicDirectory
	identity  *mock_interfaces.MockIIdentityProvider
	media     *mock_interfaces.MockIMediaStorage
}

func newMechanicFixture(t *testing.T, withMedia bool) *mechanicFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &mechanicFixture{
		mechanics: mock_interfaces.NewMockIMechanicRepository(ctrl),
		directory: mock_interfaces.NewMockIMechanicDirectory(ctrl),
		identity:  mock_interfaces.NewMockIIdentityProvider(ctrl),
		media:     mock_interfaces.NewMockIMediaStorage(ctrl),
	}
	var media interfaces.IMediaStorage
	if withMedia {
		media = f.media
	}
	f.uc = NewMechanicUseCase(f.mechanics, f.directory, f.identity, media)
	f.identity.EXPECT().RequireIdentity(gomock.Any()).Return(mechanicIden, nil).AnyTimes()
	return f
}

func validProfile() MechanicProfileInput {
	return MechanicProfileInput{
		Name:         "Mo",
		WorkshopName: "Mo's Garage",
		Phone:        "5552223333",
		Address:      "1 Main St",
		Services:     []string{" Brakes ", "Oil Change", "Brakes", ""},
		Price:        45.5,
		ImageRef:     "logos/mo/1.png",
		Active:       true,
	}
}

func TestMechanicUseCase_UpsertMyProfile_CreatesFirstListing(t *testing.T) {
	f := newMechanicFixture(t, false)
	gomock.InOrder(
		f.mechanics.EXPECT().ListAll(gomock.Any()).Return([]entities.Mechanic{{Email: "other@garage.com", RecordKey: "-o1"}}, nil),
		f.mechanics.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
			if m.Email != mechanicIden.Email || m.Status != entities.MechanicStatusActive {
				t.Fatalf("unexpected listing %+v", m)
			}
			if strings.Join(m.Services, ",") != "Brakes,Oil Change" {
				t.Fatalf("services not normalized: %v", m.Services)
			}
			if m.WorkshopName == nil || *m.WorkshopName != "Mo's Garage" {
				t.Fatalf("unexpected workshop %v", m.WorkshopName)
			}
			m.RecordKey = "-m1"
			return m, nil
		}),
		f.directory.EXPECT().InvalidateMechanics(),
	)

	got, err := f.uc.UpsertMyProfile(context.Background(), validProfile())
	if err != nil || got.RecordKey != "-m1" {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}

func TestMechanicUseCase_UpsertMyProfile_UpdatesExistingListing(t *testing.T) {
	f := newMechanicFixture(t, false)
	f.mechanics.EXPECT().ListAll(gomock.Any()).Return([]entities.Mechanic{{Email: strings.ToUpper(mechanicIden.Email), RecordKey: "-m1"}}, nil)
	f.mechanics.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
		if m.RecordKey != "-m1" || m.Status != entities.MechanicStatusInactive {
			t.Fatalf("unexpected listing %+v", m)
		}
		return m, nil
	})
	f.directory.EXPECT().InvalidateMechanics()

	in := validProfile()
	in.Active = false
	if _, err := f.uc.UpsertMyProfile(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMechanicUseCase_UpsertMyProfile_Failures(t *testing.T) {
	t.Run("lookup failure is not treated as a new listing", func(t *testing.T) {
		f := newMechanicFixture(t, false)
		f.mechanics.EXPECT().ListAll(gomock.Any()).Return(nil, apperr.ErrNetwork)

		if _, err := f.uc.UpsertMyProfile(context.Background(), validProfile()); !errors.Is(err, apperr.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})

	t.Run("write failure keeps the cache", func(t *testing.T) {
		f := newMechanicFixture(t, false)
		f.mechanics.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.mechanics.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Mechanic{}, apperr.ErrIndeterminate)

		if _, err := f.uc.UpsertMyProfile(context.Background(), validProfile()); !errors.Is(err, apperr.ErrIndeterminate) {
			t.Fatalf("expected indeterminate error, got %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*MechanicProfileInput)
		want   error
	}{
		{"no name", func(in *MechanicProfileInput) { in.Name = "" }, ErrNameRequired},
		{"no workshop", func(in *MechanicProfileInput) { in.WorkshopName = " " }, ErrWorkshopRequired},
		{"bad phone", func(in *MechanicProfileInput) { in.Phone = "12" }, ErrInvalidPhone},
		{"no address", func(in *MechanicProfileInput) { in.Address = "" }, ErrAddressMissing},
		{"zero price", func(in *MechanicProfileInput) { in.Price = 0 }, ErrInvalidPrice},
		{"no services", func(in *MechanicProfileInput) { in.Services = []string{" "} }, ErrServicesRequired},
		{"no logo", func(in *MechanicProfileInput) { in.ImageRef = "" }, ErrLogoRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newMechanicFixture(t, false)
			in := validProfile()
			tc.mutate(&in)

			_, err := f.uc.UpsertMyProfile(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("disabled mechanic needs no workshop", func(t *testing.T) {
		f := newMechanicFixture(t, false)
		f.mechanics.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.mechanics.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
			if m.WorkshopName != nil || !m.Disabled {
				t.Fatalf("unexpected listing %+v", m)
			}
			return m, nil
		})
		f.directory.EXPECT().InvalidateMechanics()

		in := validProfile()
		in.WorkshopName = ""
		in.Disabled = true
		if _, err := f.uc.UpsertMyProfile(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMechanicUseCase_UpsertMyProfile_IgnoresStaleDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
	identity.EXPECT().RequireIdentity(gomock.Any()).Return(mechanicIden, nil).AnyTimes()

	directory := NewDirectoryUseCase(users, mechanics, time.Hour)
	uc := NewMechanicUseCase(mechanics, directory, identity, nil)

	gomock.InOrder(
		mechanics.EXPECT().ListAll(gomock.Any()).Return([]entities.Mechanic{}, nil),
		mechanics.EXPECT().ListAll(gomock.Any()).Return([]entities.Mechanic{{Email: mechanicIden.Email, RecordKey: "-existing"}}, nil),
		mechanics.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
			if m.RecordKey != "-existing" {
				t.Fatalf("expected update of -existing, got %+v", m)
			}
			return m, nil
		}),
	)
	mechanics.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	if listed, err := directory.ListMechanics(context.Background(), ""); err != nil || len(listed) != 0 {
		t.Fatalf("expected an empty snapshot, got %v err=%v", listed, err)
	}
	got, err := uc.UpsertMyProfile(context.Background(), validProfile())
	if err != nil || got.RecordKey != "-existing" {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}

func TestMechanicUseCase_GetMyProfile(t *testing.T) {
	f := newMechanicFixture(t, false)
	f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), mechanicIden.Email).Return(mechanicMo, nil)

	got, err := f.uc.GetMyProfile(context.Background())
	if err != nil || got.RecordKey != mechanicMo.RecordKey {
		t.Fatalf("unexpected listing %+v err=%v", got, err)
	}
}

func TestMechanicUseCase_UploadLogo(t *testing.T) {
	logo := func(name string, size int64) interfaces.MediaUpload {
		return interfaces.MediaUpload{Filename: name, Size: size, Body: strings.NewReader("png")}
	}

	t.Run("stores under the owner", func(t *testing.T) {
		f := newMechanicFixture(t, true)
		f.media.EXPECT().Put(gomock.Any(), mechanicIden.Email, gomock.Any()).Return("logos/mo/1_logo.png", nil)

		key, err := f.uc.UploadLogo(context.Background(), logo("logo.PNG", 3))
		if err != nil || key != "logos/mo/1_logo.png" {
			t.Fatalf("unexpected key %q err=%v", key, err)
		}
	})

	t.Run("rejected formats and sizes", func(t *testing.T) {
		f := newMechanicFixture(t, true)
		for _, l := range []interfaces.MediaUpload{logo("logo.gif", 3), logo("logo.png", MaxLogoSize+1)} {
			if _, err := f.uc.UploadLogo(context.Background(), l); !errors.Is(err, ErrInvalidLogo) {
				t.Fatalf("%s: expected ErrInvalidLogo, got %v", l.Filename, err)
			}
		}
		if _, err := f.uc.UploadLogo(context.Background(), interfaces.MediaUpload{Filename: "a.png"}); !errors.Is(err, ErrLogoRequired) {
			t.Fatalf("expected ErrLogoRequired, got %v", err)
		}
	})

	t.Run("no storage configured", func(t *testing.T) {
		f := newMechanicFixture(t, false)
		if _, err := f.uc.UploadLogo(context.Background(), logo("logo.png", 3)); !errors.Is(err, ErrMediaNotAvailable) {
			t.Fatalf("expected ErrMediaNotAvailable, got %v", err)
		}
	})
}

func TestMechanicUseCase_ImageURL(t *testing.T) {
	f := newMechanicFixture(t, true)
	f.media.EXPECT().URL(gomock.Any(), "logos/mo/1.png").Return("https://bucket/signed", nil)
	f.media.EXPECT().URL(gomock.Any(), "logos/mo/broken.png").Return("", errors.New("no creds"))

	if got := f.uc.ImageURL(context.Background(), "logos/mo/1.png"); got != "https://bucket/signed" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := f.uc.ImageURL(context.Background(), "logos/mo/broken.png"); got != "" {
		t.Fatalf("expected empty url on failure, got %q", got)
	}
	if got := f.uc.ImageURL(context.Background(), ""); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}

	plain := newMechanicFixture(t, false)
	if got := plain.uc.ImageURL(context.Background(), "file:///logo.png"); got != "file:///logo.png" {
		t.Fatalf("without storage the ref is returned as is, got %q", got)
	}
}
