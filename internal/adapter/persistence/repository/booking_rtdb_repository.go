package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const bookingCollection = "Booking"

type bookingItem struct {
	BookingID      string          `json:"bookingId"`
	MechanicName   string          `json:"mechanicName"`
	MechanicNumber string          `json:"mechanicNumber"`
	Service        string          `json:"service"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Address        string          `json:"address"`
	Comment        string          `json:"comment,omitempty"`
	SenderName     string          `json:"senderName"`
	SenderEmail    string          `json:"senderEmail"`
	SenderPhone    string          `json:"senderPhone"`
	ReceiverEmail  string          `json:"receiverEmail"`
	Status         string          `json:"status"`
	Rating         *optionalRating `json:"rating,omitempty"`
}

// BookingStoreRepository persists Booking entities in the remote JSON store.
//
// Collection: Booking (record key assigned by the store).
// There is no server-side filtering: ListAll always downloads the whole collection.

type BookingStoreRepository struct {
	store interfaces.IRemoteStore
}

var _ interfaces.IBookingRepository = (*BookingStoreRepository)(nil)

func NewBookingStoreRepository(store interfaces.IRemoteStore) *BookingStoreRepository {
	return &BookingStoreRepository{store: store}
}

func (r *BookingStoreRepository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	raw, err := r.store.GetAll(ctx, bookingCollection)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Booking, 0, len(raw))
	for key, rec := range raw {
		var it bookingItem
		if err := json.Unmarshal(rec, &it); err != nil {
			log.Printf("[booking][repository] skipping malformed record key=%s err=%v", key, err)
			continue
		}
		items = append(items, fromBookingItem(key, it))
	}
	return items, nil
}

func (r *BookingStoreRepository) GetByKey(ctx context.Context, recordKey string) (entities.Booking, error) {
	raw, err := r.store.GetByKey(ctx, bookingCollection, recordKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if raw == nil {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := json.Unmarshal(raw, &it); err != nil {
		return entities.Booking{}, fmt.Errorf("%w: decode booking %s: %v", apperr.ErrNetwork, recordKey, err)
	}
	return fromBookingItem(recordKey, it), nil
}

func (r *BookingStoreRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	key, err := r.store.Post(ctx, bookingCollection, toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}
	b.RecordKey = key
	return b, nil
}

func (r *BookingStoreRepository) UpdateStatus(ctx context.Context, recordKey string, status entities.BookingStatus) error {
	return r.store.Patch(ctx, bookingCollection, recordKey, map[string]any{"status": string(status)})
}

func (r *BookingStoreRepository) UpdateRating(ctx context.Context, recordKey string, stars int) error {
	return r.store.Patch(ctx, bookingCollection, recordKey, map[string]any{"rating": stars})
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		BookingID:      b.BookingID,
		MechanicName:   b.MechanicName,
		MechanicNumber: b.MechanicNumber,
		Service:        b.Service,
		Date:           b.Date,
		Time:           b.Time,
		Address:        b.Address,
		Comment:        derefString(b.Comment),
		SenderName:     b.SenderName,
		SenderEmail:    b.SenderEmail,
		SenderPhone:    b.SenderPhone,
		ReceiverEmail:  b.ReceiverEmail,
		Status:         string(b.Status),
		Rating:         newOptionalRating(b.Rating),
	}
}

func fromBookingItem(key string, it bookingItem) entities.Booking {
	return entities.Booking{
		RecordKey:      key,
		BookingID:      it.BookingID,
		MechanicName:   it.MechanicName,
		MechanicNumber: it.MechanicNumber,
		Service:        it.Service,
		Date:           it.Date,
		Time:           it.Time,
		Address:        it.Address,
		Comment:        optionalString(it.Comment),
		SenderName:     it.SenderName,
		SenderEmail:    it.SenderEmail,
		SenderPhone:    it.SenderPhone,
		ReceiverEmail:  it.ReceiverEmail,
		Status:         entities.BookingStatus(it.Status),
		Rating:         it.Rating.Value(),
	}
}
