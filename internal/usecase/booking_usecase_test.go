package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
	mock_interfaces "car_maintenance/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	bookingNow   = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	scheduledAt  = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	customer     = entities.Identity{Email: "cus@example.com", Name: "Cus", Phone: "5550001111"}
	mechanicIden = entities.Identity{Email: "mo@garage.com", Name: "Mo"}
	mechanicMo   = entities.Mechanic{RecordKey: "-m1", Email: "mo@garage.com", Name: "Mo", Phone: "5552223333", Services: []string{"Oil Change", "Brakes"}}
)

type bookingFixture struct {
	uc        *BookingUseCase
	bookings  *mock_interfaces.MockIBookingRepository
	claims    *mock_interfaces.MockISlotClaimRepository
	identity  *mock_interfaces.MockIIdentityProvider
	directory *mock_interfaces.MockIMechanicDirectory
}

func newBookingFixture(t *testing.T, withClaims bool) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		bookings:  mock_interfaces.NewMockIBookingRepository(ctrl),
		claims:    mock_interfaces.NewMockISlotClaimRepository(ctrl),
		identity:  mock_interfaces.NewMockIIdentityProvider(ctrl),
		directory: mock_interfaces.NewMockIMechanicDirectory(ctrl),
	}
	var claims interfaces.ISlotClaimRepository
	if withClaims {
		claims = f.claims
	}
	f.uc = NewBookingUseCase(f.bookings, claims, f.identity, f.directory, time.Minute)
	f.uc.now = func() time.Time { return bookingNow }
	seq := 0
	f.uc.newID = func() (uuid.UUID, error) {
		seq++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-7000-8000-%012d", seq)), nil
	}
	return f
}

func (f *bookingFixture) loggedInAs(id entities.Identity) {
	f.identity.EXPECT().RequireIdentity(gomock.Any()).Return(id, nil).AnyTimes()
}

// backWithSlice makes the booking repository behave like the remote store over *store.
func (f *bookingFixture) backWithSlice(store *[]entities.Booking) {
	f.bookings.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(context.Context) ([]entities.Booking, error) {
		return append([]entities.Booking(nil), *store...), nil
	}).AnyTimes()
	f.bookings.EXPECT().GetByKey(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) (entities.Booking, error) {
		for _, b := range *store {
			if b.RecordKey == key {
				return b, nil
			}
		}
		return entities.Booking{}, nil
	}).AnyTimes()
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
		b.RecordKey = fmt.Sprintf("-K%d", len(*store)+1)
		*store = append(*store, b)
		return b, nil
	}).AnyTimes()
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string, s entities.BookingStatus) error {
		for i := range *store {
			if (*store)[i].RecordKey == key {
				(*store)[i].Status = s
			}
		}
		return nil
	}).AnyTimes()
	f.bookings.EXPECT().UpdateRating(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string, stars int) error {
		for i := range *store {
			if (*store)[i].RecordKey == key {
				v := stars
				(*store)[i].Rating = &v
			}
		}
		return nil
	}).AnyTimes()
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		MechanicEmail: "mo@garage.com",
		Service:       "Brakes",
		ScheduledAt:   scheduledAt,
		Address:       "12 Elm St",
		Comment:       "  squeaks  ",
	}
}

func TestBookingUseCase_CreateBooking_Validation(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.identity.EXPECT().RequireIdentity(gomock.Any()).Return(entities.Identity{}, ErrNoSession)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, apperr.ErrUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
		want   error
	}{
		{"empty address", func(in *CreateBookingInput) { in.Address = "   " }, ErrAddressRequired},
		{"empty service", func(in *CreateBookingInput) { in.Service = "" }, ErrServiceRequired},
		{"no schedule", func(in *CreateBookingInput) { in.ScheduledAt = time.Time{} }, ErrScheduleRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t, false)
			f.loggedInAs(customer)
			in := validInput()
			tc.mutate(&in)

			_, err := f.uc.CreateBooking(context.Background(), in)
			if !errors.Is(err, tc.want) || !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown mechanic", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), "mo@garage.com").Return(entities.Mechanic{}, ErrMechanicNotFound)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("service not offered", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		in := validInput()
		in.Service = "Paint"

		_, err := f.uc.CreateBooking(context.Background(), in)
		if !errors.Is(err, ErrServiceNotOffered) {
			t.Fatalf("expected ErrServiceNotOffered, got %v", err)
		}
	})

	t.Run("cannot book yourself", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(mechanicIden)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, ErrSelfBooking) {
			t.Fatalf("expected ErrSelfBooking, got %v", err)
		}
	})
}

func TestBookingUseCase_CreateBooking_PersistsProcessingBooking(t *testing.T) {
	f := newBookingFixture(t, false)
	f.loggedInAs(customer)
	f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
	var store []entities.Booking
	f.backWithSlice(&store)

	b, err := f.uc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.RecordKey == "" || b.BookingID != "BK-00000000-0000-7000-8000-000000000001" {
		t.Fatalf("unexpected identifiers: %+v", b)
	}
	if b.Status != entities.BookingStatusProcessing || b.Date != "10/15/2026" || b.Time != "9:30:00 AM" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.SenderEmail != customer.Email || b.SenderName != "Cus" || b.ReceiverEmail != "mo@garage.com" || b.MechanicNumber != "5552223333" {
		t.Fatalf("unexpected parties: %+v", b)
	}
	if b.Comment == nil || *b.Comment != "squeaks" {
		t.Fatalf("expected trimmed comment, got %v", b.Comment)
	}
}

func TestBookingUseCase_CreateBooking_SecondBookingSameDayConflicts(t *testing.T) {
	f := newBookingFixture(t, false)
	f.loggedInAs(customer)
	f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil).AnyTimes()
	var store []entities.Booking
	f.backWithSlice(&store)

	if _, err := f.uc.CreateBooking(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	later := validInput()
	later.ScheduledAt = scheduledAt.Add(5 * time.Hour)
	_, err := f.uc.CreateBooking(context.Background(), later)
	if !errors.Is(err, ErrSlotFull) || !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected slot_full conflict, got %v", err)
	}
	if len(store) != 1 {
		t.Fatalf("expected a single stored booking, got %d", len(store))
	}

	nextDay := validInput()
	nextDay.ScheduledAt = scheduledAt.Add(24 * time.Hour)
	if _, err := f.uc.CreateBooking(context.Background(), nextDay); err != nil {
		t.Fatalf("next day should be free: %v", err)
	}
}

func TestBookingUseCase_CreateBooking_TerminalBookingFreesTheDay(t *testing.T) {
	for _, status := range []entities.BookingStatus{entities.BookingStatusCancelled, entities.BookingStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			f := newBookingFixture(t, false)
			f.loggedInAs(customer)
			f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
			store := []entities.Booking{{
				RecordKey: "-old", BookingID: "BK-old", ReceiverEmail: "MO@garage.com", Date: "10/15/2026", Status: status,
			}}
			f.backWithSlice(&store)

			if _, err := f.uc.CreateBooking(context.Background(), validInput()); err != nil {
				t.Fatalf("expected success after %s booking, got %v", status, err)
			}
			if len(store) != 2 {
				t.Fatalf("expected new booking stored, got %d", len(store))
			}
		})
	}
}

func TestBookingUseCase_CreateBooking_SlotClaims(t *testing.T) {
	slot := entities.SlotKey("mo@garage.com", "10/15/2026")

	t.Run("claim taken then booking written", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		var store []entities.Booking
		f.backWithSlice(&store)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.SlotClaim) error {
			if c.SlotKey != slot || c.BookingID == "" || !c.ClaimedAt.Equal(bookingNow) {
				t.Fatalf("unexpected claim: %+v", c)
			}
			return nil
		})

		if _, err := f.uc.CreateBooking(context.Background(), validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent winner holds a fresh claim", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		f.bookings.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(interfaces.ErrSlotClaimed)
		f.claims.EXPECT().Get(gomock.Any(), slot).Return(entities.SlotClaim{SlotKey: slot, BookingID: "BK-winner", ClaimedAt: bookingNow.Add(-time.Second)}, nil)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, ErrSlotFull) {
			t.Fatalf("expected ErrSlotFull, got %v", err)
		}
	})

	t.Run("claim of a finished booking is taken over", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		store := []entities.Booking{{RecordKey: "-old", BookingID: "BK-old", ReceiverEmail: "mo@garage.com", Date: "10/15/2026", Status: entities.BookingStatusCancelled}}
		f.backWithSlice(&store)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(interfaces.ErrSlotClaimed)
		f.claims.EXPECT().Get(gomock.Any(), slot).Return(entities.SlotClaim{SlotKey: slot, BookingID: "BK-old", ClaimedAt: bookingNow}, nil)
		f.claims.EXPECT().Takeover(gomock.Any(), "BK-old", gomock.Any()).Return(nil)

		if _, err := f.uc.CreateBooking(context.Background(), validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("orphaned claim past grace is taken over", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		var store []entities.Booking
		f.backWithSlice(&store)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(interfaces.ErrSlotClaimed)
		f.claims.EXPECT().Get(gomock.Any(), slot).Return(entities.SlotClaim{SlotKey: slot, BookingID: "BK-lost", ClaimedAt: bookingNow.Add(-10 * time.Minute)}, nil)
		f.claims.EXPECT().Takeover(gomock.Any(), "BK-lost", gomock.Any()).Return(nil)

		if _, err := f.uc.CreateBooking(context.Background(), validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store) != 1 {
			t.Fatalf("expected booking stored")
		}
	})

	t.Run("takeover race lost", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		f.bookings.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(interfaces.ErrSlotClaimed)
		f.claims.EXPECT().Get(gomock.Any(), slot).Return(entities.SlotClaim{SlotKey: slot, BookingID: "BK-lost", ClaimedAt: bookingNow.Add(-time.Hour)}, nil)
		f.claims.EXPECT().Takeover(gomock.Any(), "BK-lost", gomock.Any()).Return(interfaces.ErrSlotClaimed)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, ErrSlotFull) {
			t.Fatalf("expected ErrSlotFull, got %v", err)
		}
	})

	t.Run("claim store failure is a network error", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		f.bookings.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, apperr.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})

	t.Run("clean write failure releases the claim", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		f.bookings.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, fmt.Errorf("%w: status 500", apperr.ErrNetwork))
		f.claims.EXPECT().Release(gomock.Any(), slot, "BK-00000000-0000-7000-8000-000000000001").Return(nil)

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, apperr.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})

	t.Run("indeterminate write keeps the claim", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		f.directory.EXPECT().FindMechanicByEmail(gomock.Any(), gomock.Any()).Return(mechanicMo, nil)
		f.bookings.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.claims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, fmt.Errorf("%w: timeout", apperr.ErrIndeterminate))

		_, err := f.uc.CreateBooking(context.Background(), validInput())
		if !errors.Is(err, apperr.ErrIndeterminate) {
			t.Fatalf("expected indeterminate error, got %v", err)
		}
	})
}

func TestBookingUseCase_CheckAvailability(t *testing.T) {
	store := []entities.Booking{
		{ReceiverEmail: "mo@garage.com", Date: "10/15/2026", Status: entities.BookingStatusConfirmed},
		{ReceiverEmail: "mo@garage.com", Date: "10/16/2026", Status: entities.BookingStatusCompleted},
		{ReceiverEmail: "zed@garage.com", Date: "10/17/2026", Status: entities.BookingStatusProcessing},
	}
	f := newBookingFixture(t, false)
	f.backWithSlice(&store)

	cases := []struct {
		day  time.Time
		want bool
	}{
		{bookingNow, false},
		{bookingNow.Add(24 * time.Hour), true},
		{bookingNow.Add(48 * time.Hour), true},
	}
	for _, tc := range cases {
		got, err := f.uc.CheckAvailability(context.Background(), "mo@garage.com", tc.day)
		if err != nil || got != tc.want {
			t.Fatalf("%s: expected %v, got %v err=%v", entities.BookingDate(tc.day), tc.want, got, err)
		}
	}

	today, err := f.uc.CheckAvailabilityToday(context.Background(), "MO@garage.com")
	if err != nil || today {
		t.Fatalf("expected today to be booked, got %v err=%v", today, err)
	}
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	base := entities.Booking{
		RecordKey: "-k", BookingID: "BK-1", SenderEmail: customer.Email, ReceiverEmail: mechanicMo.Email, Date: "10/15/2026",
	}

	t.Run("mechanic confirms", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(mechanicIden)
		b := base
		b.Status = entities.BookingStatusProcessing
		store := []entities.Booking{b}
		f.backWithSlice(&store)

		got, err := f.uc.UpdateStatus(context.Background(), "-k", entities.BookingStatusConfirmed, entities.ActorReceiver)
		if err != nil || got.Status != entities.BookingStatusConfirmed || store[0].Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %+v err=%v", got, err)
		}
	})

	t.Run("terminal transition releases the slot claim", func(t *testing.T) {
		f := newBookingFixture(t, true)
		f.loggedInAs(customer)
		b := base
		b.Status = entities.BookingStatusConfirmed
		store := []entities.Booking{b}
		f.backWithSlice(&store)
		f.claims.EXPECT().Release(gomock.Any(), entities.SlotKey(mechanicMo.Email, "10/15/2026"), "BK-1").Return(errors.New("ignored"))

		got, err := f.uc.UpdateStatus(context.Background(), "-k", entities.BookingStatusCancelled, entities.ActorSender)
		if err != nil || got.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %+v err=%v", got, err)
		}
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		b := base
		b.Status = entities.BookingStatusProcessing
		f.bookings.EXPECT().GetByKey(gomock.Any(), "-k").Return(b, nil)

		_, err := f.uc.UpdateStatus(context.Background(), "-k", entities.BookingStatusConfirmed, entities.ActorSender)
		if !errors.Is(err, apperr.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("role must match the session identity", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		b := base
		b.Status = entities.BookingStatusProcessing
		f.bookings.EXPECT().GetByKey(gomock.Any(), "-k").Return(b, nil)

		_, err := f.uc.UpdateStatus(context.Background(), "-k", entities.BookingStatusConfirmed, entities.ActorReceiver)
		if !errors.Is(err, ErrNotParticipant) {
			t.Fatalf("expected ErrNotParticipant, got %v", err)
		}
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		f.bookings.EXPECT().GetByKey(gomock.Any(), "-nope").Return(entities.Booking{}, nil)

		_, err := f.uc.UpdateStatus(context.Background(), "-nope", entities.BookingStatusCancelled, entities.ActorSender)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("bad input", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		if _, err := f.uc.UpdateStatus(context.Background(), "-k", "Done", entities.ActorSender); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if _, err := f.uc.UpdateStatus(context.Background(), "-k", entities.BookingStatusCancelled, "admin"); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
		if _, err := f.uc.UpdateStatus(context.Background(), " ", entities.BookingStatusCancelled, entities.ActorSender); !errors.Is(err, ErrInvalidRecordKey) {
			t.Fatalf("expected ErrInvalidRecordKey, got %v", err)
		}
	})
}

func TestBookingUseCase_TerminalBookingsNeverChange(t *testing.T) {
	all := []entities.BookingStatus{
		entities.BookingStatusProcessing, entities.BookingStatusConfirmed,
		entities.BookingStatusCompleted, entities.BookingStatusCancelled,
	}
	for _, from := range []entities.BookingStatus{entities.BookingStatusCompleted, entities.BookingStatusCancelled} {
		for _, to := range all {
			for _, role := range []entities.ActorRole{entities.ActorSender, entities.ActorReceiver} {
				t.Run(fmt.Sprintf("%s to %s by %s", from, to, role), func(t *testing.T) {
					f := newBookingFixture(t, true)
					actor := customer
					if role == entities.ActorReceiver {
						actor = mechanicIden
					}
					f.loggedInAs(actor)
					f.bookings.EXPECT().GetByKey(gomock.Any(), "-k").Return(entities.Booking{
						RecordKey: "-k", SenderEmail: customer.Email, ReceiverEmail: mechanicMo.Email, Status: from,
					}, nil)

					_, err := f.uc.UpdateStatus(context.Background(), "-k", to, role)
					if !errors.Is(err, apperr.ErrInvalidTransition) {
						t.Fatalf("expected invalid transition, got %v", err)
					}
				})
			}
		}
	}
}

func TestBookingUseCase_ListBookingsFor(t *testing.T) {
	store := []entities.Booking{
		{RecordKey: "-1", SenderEmail: "a@x.com", ReceiverEmail: "m@x.com"},
		{RecordKey: "-2", SenderEmail: "b@x.com", ReceiverEmail: "m@x.com"},
		{RecordKey: "-3", SenderEmail: "A@x.com", ReceiverEmail: "n@x.com"},
	}
	f := newBookingFixture(t, false)
	f.backWithSlice(&store)

	got, err := f.uc.ListBookingsFor(context.Background(), "a@x.com", entities.ActorSender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := map[string]bool{}
	for _, b := range got {
		keys[b.RecordKey] = true
	}
	if len(keys) != 2 || !keys["-1"] || !keys["-3"] {
		t.Fatalf("expected {-1,-3}, got %v", keys)
	}

	got, err = f.uc.ListBookingsFor(context.Background(), "m@x.com", entities.ActorReceiver)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected two receiver bookings, got %d err=%v", len(got), err)
	}

	if _, err := f.uc.ListBookingsFor(context.Background(), "a@x.com", "owner"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestBookingUseCase_ListMyBookings(t *testing.T) {
	store := []entities.Booking{{RecordKey: "-1", SenderEmail: customer.Email}}
	f := newBookingFixture(t, false)
	f.loggedInAs(customer)
	f.backWithSlice(&store)

	got, err := f.uc.ListMyBookings(context.Background(), entities.ActorSender)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected own booking, got %+v err=%v", got, err)
	}
}

func TestBookingUseCase_Rate(t *testing.T) {
	newStore := func(status entities.BookingStatus) []entities.Booking {
		return []entities.Booking{{RecordKey: "-k", SenderEmail: customer.Email, ReceiverEmail: mechanicMo.Email, Status: status}}
	}

	t.Run("completed booking keeps the rating", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(customer)
		store := newStore(entities.BookingStatusCompleted)
		f.backWithSlice(&store)

		got, err := f.uc.Rate(context.Background(), "-k", 3)
		if err != nil || got.Rating == nil || *got.Rating != 3 {
			t.Fatalf("expected rating 3, got %+v err=%v", got, err)
		}
		for i := 0; i < 2; i++ {
			again, err := f.uc.getBooking(context.Background(), "-k")
			if err != nil || again.Rating == nil || *again.Rating != 3 {
				t.Fatalf("expected stored rating 3, got %+v err=%v", again, err)
			}
		}
	})

	for _, status := range []entities.BookingStatus{entities.BookingStatusProcessing, entities.BookingStatusConfirmed, entities.BookingStatusCancelled} {
		t.Run("rejected when "+string(status), func(t *testing.T) {
			f := newBookingFixture(t, false)
			f.loggedInAs(customer)
			store := newStore(status)
			f.backWithSlice(&store)

			_, err := f.uc.Rate(context.Background(), "-k", 3)
			if !errors.Is(err, ErrNotRateable) {
				t.Fatalf("expected ErrNotRateable, got %v", err)
			}
			if store[0].Rating != nil {
				t.Fatalf("rating must not be written")
			}
		})
	}

	t.Run("stars out of range", func(t *testing.T) {
		f := newBookingFixture(t, false)
		for _, stars := range []int{0, 6, -1} {
			_, err := f.uc.Rate(context.Background(), "-k", stars)
			if !errors.Is(err, ErrInvalidRating) || !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("stars=%d: expected ErrInvalidRating, got %v", stars, err)
			}
		}
	})

	t.Run("only the customer rates", func(t *testing.T) {
		f := newBookingFixture(t, false)
		f.loggedInAs(mechanicIden)
		store := newStore(entities.BookingStatusCompleted)
		f.backWithSlice(&store)

		_, err := f.uc.Rate(context.Background(), "-k", 5)
		if !errors.Is(err, ErrNotParticipant) {
			t.Fatalf("expected ErrNotParticipant, got %v", err)
		}
	})
}
