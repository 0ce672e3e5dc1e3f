package entities

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle of a booking.
//
// Processing is the initial state. Completed and Cancelled are terminal:
// a booking in either state is history and never changes status again.
type BookingStatus string

const (
	BookingStatusProcessing BookingStatus = "Processing"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// ActorRole is the side of the booking issuing a command.
// The sender is the customer, the receiver is the mechanic.
type ActorRole string

const (
	ActorSender   ActorRole = "sender"
	ActorReceiver ActorRole = "receiver"
)

const (
	MinRating = 1
	MaxRating = 5
)

// bookingDateLayout and bookingTimeLayout mirror the en-US locale strings stored by the
// mobile client, so records written by either side compare equal.
const (
	bookingDateLayout = "1/2/2006"
	bookingTimeLayout = "3:04:05 PM"
)

// transitions lists, per current status, the statuses each role may move a booking to.
var transitions = map[BookingStatus]map[BookingStatus][]ActorRole{
	BookingStatusProcessing: {
		BookingStatusConfirmed: {ActorReceiver},
		BookingStatusCancelled: {ActorReceiver, ActorSender},
	},
	BookingStatusConfirmed: {
		BookingStatusCompleted: {ActorReceiver},
		BookingStatusCancelled: {ActorSender},
	},
}

// Booking is a service appointment between a customer (sender) and a mechanic (receiver).
//
// Storage model (remote JSON store, collection "Booking"):
//   - RecordKey: key assigned by the store on POST
//   - BookingID: client-generated display identifier
//
// Comment and Rating are optional; Rating is only meaningful once Completed.
type Booking struct {
	RecordKey      string        `json:"record_key"`
	BookingID      string        `json:"booking_id"`
	MechanicName   string        `json:"mechanic_name"`
	MechanicNumber string        `json:"mechanic_number"`
	Service        string        `json:"service"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Address        string        `json:"address"`
	Comment        *string       `json:"comment,omitempty"`
	SenderName     string        `json:"sender_name"`
	SenderEmail    string        `json:"sender_email"`
	SenderPhone    string        `json:"sender_phone"`
	ReceiverEmail  string        `json:"receiver_email"`
	Status         BookingStatus `json:"status"`
	Rating         *int          `json:"rating,omitempty"`
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusProcessing, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// HoldsSlot reports whether a booking in this status occupies its mechanic's day.
// The same exclusion set is used by the availability screening and by booking creation.
func (s BookingStatus) HoldsSlot() bool {
	return !s.IsTerminal()
}

// CanTransition reports whether role may move a booking from s to next.
func (s BookingStatus) CanTransition(next BookingStatus, role ActorRole) bool {
	for _, allowed := range transitions[s][next] {
		if allowed == role {
			return true
		}
	}
	return false
}

func (r ActorRole) IsValid() bool {
	return r == ActorSender || r == ActorReceiver
}

// IsParty reports whether email is the booking party for role.
func (b Booking) IsParty(email string, role ActorRole) bool {
	switch role {
	case ActorSender:
		return SameEmail(b.SenderEmail, email)
	case ActorReceiver:
		return SameEmail(b.ReceiverEmail, email)
	}
	return false
}

// OccupiesSlot reports whether b blocks a new booking for mechanicEmail on date.
func (b Booking) OccupiesSlot(mechanicEmail, date string) bool {
	return SameEmail(b.ReceiverEmail, mechanicEmail) && b.Date == date && b.Status.HoldsSlot()
}

// BookingDate formats the calendar day of t as stored in Booking.Date.
func BookingDate(t time.Time) string {
	return t.Format(bookingDateLayout)
}

// BookingTime formats the time of day of t as stored in Booking.Time.
func BookingTime(t time.Time) string {
	return t.Format(bookingTimeLayout)
}

// NormalizeEmail is the canonical form used for every email comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SameEmail(a, b string) bool {
	return NormalizeEmail(a) != "" && NormalizeEmail(a) == NormalizeEmail(b)
}
