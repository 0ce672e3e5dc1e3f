package interfaces

import (
	"context"
	"errors"

	"car_maintenance/internal/domain/entities"
)

// ErrSlotClaimed is returned when a conditional claim write loses against another holder.
var ErrSlotClaimed = errors.New("slot already claimed")

// ISlotClaimRepository is the atomic compare-and-swap primitive keyed by
// (receiver email, date) that guards booking creation.
//
//   - Claim creates the claim only if none exists; otherwise ErrSlotClaimed
//   - Get returns a zero SlotClaim when the slot is free
//   - Takeover replaces the claim only if it is still held by fromBookingID
//   - Release deletes the claim only if it is still held by bookingID (no-op otherwise)

type ISlotClaimRepository interface {
	Claim(ctx context.Context, c entities.SlotClaim) error
	Get(ctx context.Context, slotKey string) (entities.SlotClaim, error)
	Takeover(ctx context.Context, fromBookingID string, c entities.SlotClaim) error
	Release(ctx context.Context, slotKey, bookingID string) error
}
