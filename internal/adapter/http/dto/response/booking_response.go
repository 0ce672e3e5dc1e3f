package response

import "car_maintenance/internal/domain/entities"

type BookingResponse struct {
	RecordKey      string  `json:"record_key"`
	BookingID      string  `json:"booking_id"`
	MechanicName   string  `json:"mechanic_name"`
	MechanicNumber string  `json:"mechanic_number"`
	Service        string  `json:"service"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Address        string  `json:"address"`
	Comment        *string `json:"comment,omitempty"`
	SenderName     string  `json:"sender_name"`
	SenderEmail    string  `json:"sender_email"`
	SenderPhone    string  `json:"sender_phone"`
	ReceiverEmail  string  `json:"receiver_email"`
	Status         string  `json:"status"`
	Rating         *int    `json:"rating,omitempty"`
	Terminal       bool    `json:"terminal"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		RecordKey:      b.RecordKey,
		BookingID:      b.BookingID,
		MechanicName:   b.MechanicName,
		MechanicNumber: b.MechanicNumber,
		Service:        b.Service,
		Date:           b.Date,
		Time:           b.Time,
		Address:        b.Address,
		Comment:        b.Comment,
		SenderName:     b.SenderName,
		SenderEmail:    b.SenderEmail,
		SenderPhone:    b.SenderPhone,
		ReceiverEmail:  b.ReceiverEmail,
		Status:         string(b.Status),
		Rating:         b.Rating,
		Terminal:       b.Status.IsTerminal(),
	}
}

func FromBookings(in []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(in))
	for _, b := range in {
		out = append(out, FromBooking(b))
	}
	return out
}

type AvailabilityResponse struct {
	MechanicEmail string `json:"mechanic_email"`
	Date          string `json:"date"`
	Available     bool   `json:"available"`
}
