package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IBookingRepository abstracts remote-store persistence for Booking.
//
// GetByKey returns a zero Booking (empty RecordKey) when the record does not exist.

type IBookingRepository interface {
	ListAll(ctx context.Context) ([]entities.Booking, error)
	GetByKey(ctx context.Context, recordKey string) (entities.Booking, error)
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	UpdateStatus(ctx context.Context, recordKey string, status entities.BookingStatus) error
	UpdateRating(ctx context.Context, recordKey string, stars int) error
}
