package request

import (
	"errors"
	"strings"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase"
)

var (
	ErrInvalidScheduledAt = errors.New("invalid scheduled_at")
	ErrInvalidDate        = errors.New("invalid date")
)

// scheduleLayouts are tried in order. The zone-less forms are the customer's wall clock.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// CreateBookingRequest is the booking form submitted by a customer.
type CreateBookingRequest struct {
	MechanicEmail string `json:"mechanic_email" binding:"required"`
	Service       string `json:"service" binding:"required"`
	ScheduledAt   string `json:"scheduled_at" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Comment       string `json:"comment"`
}

func (r CreateBookingRequest) ToInput() (usecase.CreateBookingInput, error) {
	at, err := ParseScheduledAt(r.ScheduledAt)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	return usecase.CreateBookingInput{
		MechanicEmail: strings.TrimSpace(r.MechanicEmail),
		Service:       r.Service,
		ScheduledAt:   at,
		Address:       r.Address,
		Comment:       r.Comment,
	}, nil
}

// ParseScheduledAt keeps the wall clock as written; an offset, when present, is not converted.
func ParseScheduledAt(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidScheduledAt
}

// ParseDay reads the availability query date (YYYY-MM-DD). Empty means "not given".
func ParseDay(v string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, false, ErrInvalidDate
	}
	return t, true, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (r UpdateBookingStatusRequest) Resolve() (entities.BookingStatus, entities.ActorRole) {
	return entities.BookingStatus(strings.TrimSpace(r.Status)), ResolveRole(r.Role)
}

type RateBookingRequest struct {
	Stars int `json:"stars" binding:"required"`
}

// ResolveRole maps the role query/body value; an empty value means the customer side.
func ResolveRole(v string) entities.ActorRole {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return entities.ActorSender
	}
	return entities.ActorRole(v)
}
