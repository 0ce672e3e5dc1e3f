package entities

import "time"

// SlotClaim is the atomic reservation of a mechanic's day.
//
// Storage model (DynamoDB):
//   - PK: slot_key (lower(receiver email) + "#" + booking date)
//
// At most one claim exists per slot key. It is written with a conditional put before the
// booking record is created, which closes the check-then-write race of the remote store.
type SlotClaim struct {
	SlotKey   string    `json:"slot_key"`
	BookingID string    `json:"booking_id"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// SlotKey builds the claim key for a mechanic and booking date.
func SlotKey(mechanicEmail, date string) string {
	return NormalizeEmail(mechanicEmail) + "#" + date
}
