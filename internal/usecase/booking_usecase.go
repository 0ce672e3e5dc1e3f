package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	bookingIDPrefix        = "BK-"
	DefaultSlotClaimGrace  = 2 * time.Minute
	conflictStageScreening = "screening"
	conflictStageClaim     = "claim"
)

var (
	ErrSlotFull          = fmt.Errorf("%w: slot_full", apperr.ErrConflict)
	ErrBookingNotFound   = fmt.Errorf("%w: booking not found", apperr.ErrNotFound)
	ErrNotParticipant    = fmt.Errorf("%w: you are not a party to this booking", apperr.ErrForbidden)
	ErrNotRateable       = fmt.Errorf("%w: only completed bookings can be rated", apperr.ErrInvalidTransition)
	ErrInvalidRating     = fmt.Errorf("%w: rating must be between %d and %d", apperr.ErrValidation, entities.MinRating, entities.MaxRating)
	ErrAddressRequired   = fmt.Errorf("%w: address is required", apperr.ErrValidation)
	ErrServiceRequired   = fmt.Errorf("%w: service is required", apperr.ErrValidation)
	ErrServiceNotOffered = fmt.Errorf("%w: the mechanic does not offer this service", apperr.ErrValidation)
	ErrScheduleRequired  = fmt.Errorf("%w: date and time are required", apperr.ErrValidation)
	ErrSelfBooking       = fmt.Errorf("%w: you cannot book your own listing", apperr.ErrValidation)
	ErrInvalidRole       = fmt.Errorf("%w: role must be sender or receiver", apperr.ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: unknown booking status", apperr.ErrValidation)
	ErrInvalidRecordKey  = fmt.Errorf("%w: booking key is required", apperr.ErrValidation)
)

// CreateBookingInput is what a customer submits from the booking form.
// ScheduledAt carries the customer's local wall clock; Date and Time are derived from it.
type CreateBookingInput struct {
	MechanicEmail string
	Service       string
	ScheduledAt   time.Time
	Address       string
	Comment       string
}

// IBookingUseCase is the booking lifecycle and the per-day slot scheduler.
//
// A mechanic takes at most one active booking per calendar day. A booking stops holding
// its day once it is Completed or Cancelled; both the availability screening and
// CreateBooking use that same rule.
//
// When a slot-claim repository is configured, CreateBooking additionally takes an atomic
// claim on (mechanic email, date) before writing, so two concurrent requests cannot both
// pass the read-then-write check. Concurrent status updates remain last-write-wins.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	CheckAvailability(ctx context.Context, mechanicEmail string, day time.Time) (bool, error)
	CheckAvailabilityToday(ctx context.Context, mechanicEmail string) (bool, error)
	UpdateStatus(ctx context.Context, recordKey string, next entities.BookingStatus, role entities.ActorRole) (entities.Booking, error)
	ListBookingsFor(ctx context.Context, email string, role entities.ActorRole) ([]entities.Booking, error)
	ListMyBookings(ctx context.Context, role entities.ActorRole) ([]entities.Booking, error)
	Rate(ctx context.Context, recordKey string, stars int) (entities.Booking, error)
}

type BookingUseCase struct {
	bookings   interfaces.IBookingRepository
	claims     interfaces.ISlotClaimRepository
	identity   interfaces.IIdentityProvider
	directory  interfaces.IMechanicDirectory
	claimGrace time.Duration
	now        func() time.Time
	newID      func() (uuid.UUID, error)
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase wires the scheduler. claims may be nil, which leaves the
// read-then-write conflict check as the only guard.
func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	claims interfaces.ISlotClaimRepository,
	identity interfaces.IIdentityProvider,
	directory interfaces.IMechanicDirectory,
	claimGrace time.Duration,
) *BookingUseCase {
	if claimGrace <= 0 {
		claimGrace = DefaultSlotClaimGrace
	}
	return &BookingUseCase{
		bookings:   bookings,
		claims:     claims,
		identity:   identity,
		directory:  directory,
		claimGrace: claimGrace,
		now:        time.Now,
		newID:      uuid.NewV7,
	}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	customer, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return entities.Booking{}, err
	}

	address := strings.TrimSpace(in.Address)
	service := strings.TrimSpace(in.Service)
	switch {
	case address == "":
		return entities.Booking{}, ErrAddressRequired
	case service == "":
		return entities.Booking{}, ErrServiceRequired
	case in.ScheduledAt.IsZero():
		return entities.Booking{}, ErrScheduleRequired
	}

	mechanic, err := u.directory.FindMechanicByEmail(ctx, in.MechanicEmail)
	if err != nil {
		return entities.Booking{}, err
	}
	if entities.SameEmail(mechanic.Email, customer.Email) {
		return entities.Booking{}, ErrSelfBooking
	}
	if !mechanic.Offers(service) {
		return entities.Booking{}, ErrServiceNotOffered
	}

	date := entities.BookingDate(in.ScheduledAt)
	existing, conflict, err := u.findConflict(ctx, mechanic.Email, date)
	if err != nil {
		return entities.Booking{}, err
	}
	if conflict {
		slotConflictsTotal.WithLabelValues(conflictStageScreening).Inc()
		log.Printf("[booking][usecase] slot full mechanic=%s date=%s", mechanic.Email, date)
		return entities.Booking{}, ErrSlotFull
	}

	id, err := u.newID()
	if err != nil {
		return entities.Booking{}, fmt.Errorf("generate booking id: %w", err)
	}
	bookingID := bookingIDPrefix + id.String()

	slotKey := entities.SlotKey(mechanic.Email, date)
	if err := u.claimSlot(ctx, slotKey, bookingID, existing); err != nil {
		if errors.Is(err, ErrSlotFull) {
			slotConflictsTotal.WithLabelValues(conflictStageClaim).Inc()
			log.Printf("[booking][usecase] slot claim lost mechanic=%s date=%s", mechanic.Email, date)
		}
		return entities.Booking{}, err
	}

	var comment *string
	if c := strings.TrimSpace(in.Comment); c != "" {
		comment = &c
	}
	b := entities.Booking{
		BookingID:      bookingID,
		MechanicName:   mechanic.Name,
		MechanicNumber: mechanic.Phone,
		Service:        service,
		Date:           date,
		Time:           entities.BookingTime(in.ScheduledAt),
		Address:        address,
		Comment:        comment,
		SenderName:     customer.Name,
		SenderEmail:    customer.Email,
		SenderPhone:    customer.Phone,
		ReceiverEmail:  mechanic.Email,
		Status:         entities.BookingStatusProcessing,
	}

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		if errors.Is(err, apperr.ErrIndeterminate) {
			// The record may exist; keeping the claim blocks the day until the grace period
			// lets a later request verify it.
			log.Printf("[booking][usecase] create outcome unknown booking_id=%s err=%v", bookingID, err)
			return entities.Booking{}, err
		}
		u.releaseSlot(ctx, slotKey, bookingID)
		log.Printf("[booking][usecase] create failed booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}

	bookingsCreatedTotal.Inc()
	log.Printf("[booking][usecase] created booking_id=%s record_key=%s mechanic=%s date=%s", created.BookingID, created.RecordKey, mechanic.Email, date)
	return created, nil
}

// CheckAvailability is the screening step shown before the booking form.
func (u *BookingUseCase) CheckAvailability(ctx context.Context, mechanicEmail string, day time.Time) (bool, error) {
	if entities.NormalizeEmail(mechanicEmail) == "" {
		return false, apperr.Validation("mechanic email is required")
	}
	if day.IsZero() {
		return false, ErrScheduleRequired
	}
	_, conflict, err := u.findConflict(ctx, mechanicEmail, entities.BookingDate(day))
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (u *BookingUseCase) CheckAvailabilityToday(ctx context.Context, mechanicEmail string) (bool, error) {
	return u.CheckAvailability(ctx, mechanicEmail, u.now())
}

func (u *BookingUseCase) UpdateStatus(ctx context.Context, recordKey string, next entities.BookingStatus, role entities.ActorRole) (entities.Booking, error) {
	actor, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return entities.Booking{}, err
	}
	recordKey = strings.TrimSpace(recordKey)
	switch {
	case recordKey == "":
		return entities.Booking{}, ErrInvalidRecordKey
	case !next.IsValid():
		return entities.Booking{}, ErrInvalidStatus
	case !role.IsValid():
		return entities.Booking{}, ErrInvalidRole
	}

	b, err := u.getBooking(ctx, recordKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if !b.IsParty(actor.Email, role) {
		return entities.Booking{}, ErrNotParticipant
	}
	if !b.Status.CanTransition(next, role) {
		return entities.Booking{}, fmt.Errorf("%w: %s cannot move a %s booking to %s", apperr.ErrInvalidTransition, role, b.Status, next)
	}

	if err := u.bookings.UpdateStatus(ctx, recordKey, next); err != nil {
		log.Printf("[booking][usecase] status update failed record_key=%s status=%s err=%v", recordKey, next, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] status updated record_key=%s from=%s to=%s by=%s", recordKey, b.Status, next, role)
	b.Status = next
	bookingTransitionsTotal.WithLabelValues(string(next)).Inc()

	if next.IsTerminal() {
		u.releaseSlot(ctx, entities.SlotKey(b.ReceiverEmail, b.Date), b.BookingID)
	}
	return b, nil
}

func (u *BookingUseCase) ListBookingsFor(ctx context.Context, email string, role entities.ActorRole) ([]entities.Booking, error) {
	if entities.NormalizeEmail(email) == "" {
		return nil, apperr.Validation("email is required")
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	all, err := u.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Booking, 0)
	for _, b := range all {
		if b.IsParty(email, role) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (u *BookingUseCase) ListMyBookings(ctx context.Context, role entities.ActorRole) ([]entities.Booking, error) {
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return u.ListBookingsFor(ctx, me.Email, role)
}

// Rate lets the customer score a completed booking. Rating again overwrites the score.
func (u *BookingUseCase) Rate(ctx context.Context, recordKey string, stars int) (entities.Booking, error) {
	if stars < entities.MinRating || stars > entities.MaxRating {
		return entities.Booking{}, ErrInvalidRating
	}
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return entities.Booking{}, err
	}
	recordKey = strings.TrimSpace(recordKey)
	if recordKey == "" {
		return entities.Booking{}, ErrInvalidRecordKey
	}

	b, err := u.getBooking(ctx, recordKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if !b.IsParty(me.Email, entities.ActorSender) {
		return entities.Booking{}, ErrNotParticipant
	}
	if b.Status != entities.BookingStatusCompleted {
		return entities.Booking{}, ErrNotRateable
	}

	if err := u.bookings.UpdateRating(ctx, recordKey, stars); err != nil {
		log.Printf("[booking][usecase] rating failed record_key=%s err=%v", recordKey, err)
		return entities.Booking{}, err
	}
	b.Rating = &stars
	log.Printf("[booking][usecase] rated record_key=%s stars=%d", recordKey, stars)
	return b, nil
}

func (u *BookingUseCase) getBooking(ctx context.Context, recordKey string) (entities.Booking, error) {
	b, err := u.bookings.GetByKey(ctx, recordKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.RecordKey == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// findConflict returns the mechanic's bookings and whether one of them holds date.
func (u *BookingUseCase) findConflict(ctx context.Context, mechanicEmail, date string) ([]entities.Booking, bool, error) {
	all, err := u.bookings.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	mine := make([]entities.Booking, 0)
	conflict := false
	for _, b := range all {
		if !entities.SameEmail(b.ReceiverEmail, mechanicEmail) {
			continue
		}
		mine = append(mine, b)
		if b.OccupiesSlot(mechanicEmail, date) {
			conflict = true
		}
	}
	return mine, conflict, nil
}

// claimSlot takes the atomic claim for slotKey. A claim left by a booking that is now
// terminal, or by a booking that never appeared within the grace period, is taken over.
func (u *BookingUseCase) claimSlot(ctx context.Context, slotKey, bookingID string, mechanicBookings []entities.Booking) error {
	if u.claims == nil {
		return nil
	}
	claim := entities.SlotClaim{SlotKey: slotKey, BookingID: bookingID, ClaimedAt: u.now().UTC()}

	err := u.claims.Claim(ctx, claim)
	if err == nil {
		return nil
	}
	if !errors.Is(err, interfaces.ErrSlotClaimed) {
		return claimStoreError(err)
	}

	holder, err := u.claims.Get(ctx, slotKey)
	if err != nil {
		return claimStoreError(err)
	}
	if holder.BookingID == "" {
		// Released between our write and our read.
		if err := u.claims.Claim(ctx, claim); err != nil {
			if errors.Is(err, interfaces.ErrSlotClaimed) {
				return ErrSlotFull
			}
			return claimStoreError(err)
		}
		return nil
	}
	if !u.claimIsStale(holder, mechanicBookings) {
		return ErrSlotFull
	}

	if err := u.claims.Takeover(ctx, holder.BookingID, claim); err != nil {
		if errors.Is(err, interfaces.ErrSlotClaimed) {
			return ErrSlotFull
		}
		return claimStoreError(err)
	}
	slotClaimTakeoversTotal.Inc()
	log.Printf("[booking][usecase] took over stale slot claim slot=%s from=%s to=%s", slotKey, holder.BookingID, bookingID)
	return nil
}

func (u *BookingUseCase) claimIsStale(holder entities.SlotClaim, mechanicBookings []entities.Booking) bool {
	for _, b := range mechanicBookings {
		if b.BookingID == holder.BookingID {
			return b.Status.IsTerminal()
		}
	}
	return u.now().Sub(holder.ClaimedAt) > u.claimGrace
}

func (u *BookingUseCase) releaseSlot(ctx context.Context, slotKey, bookingID string) {
	if u.claims == nil {
		return
	}
	if err := u.claims.Release(ctx, slotKey, bookingID); err != nil {
		log.Printf("[booking][usecase] warning: slot claim release failed slot=%s booking_id=%s err=%v", slotKey, bookingID, err)
	}
}

func claimStoreError(err error) error {
	return fmt.Errorf("%w: slot claim store: %v", apperr.ErrNetwork, err)
}
