package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const mechanicCollection = "Mechanic"

type mechanicItem struct {
	Name         string    `json:"name"`
	WorkshopName string    `json:"workshopName,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Services     []string  `json:"services"`
	Price        flexFloat `json:"price"`
	Image        string    `json:"image"`
	Status       string    `json:"status"`
	Disabled     bool      `json:"disabled"`
}

// MechanicStoreRepository persists Mechanic listings in the remote JSON store.
//
// Collection: Mechanic. One record per email; Update patches the record found by the caller.

type MechanicStoreRepository struct {
	store interfaces.IRemoteStore
}

var _ interfaces.IMechanicRepository = (*MechanicStoreRepository)(nil)

func NewMechanicStoreRepository(store interfaces.IRemoteStore) *MechanicStoreRepository {
	return &MechanicStoreRepository{store: store}
}

func (r *MechanicStoreRepository) ListAll(ctx context.Context) ([]entities.Mechanic, error) {
	raw, err := r.store.GetAll(ctx, mechanicCollection)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Mechanic, 0, len(raw))
	for key, rec := range raw {
		var it mechanicItem
		if err := json.Unmarshal(rec, &it); err != nil {
			log.Printf("[mechanic][repository] skipping malformed record key=%s err=%v", key, err)
			continue
		}
		items = append(items, fromMechanicItem(key, it))
	}
	return items, nil
}

func (r *MechanicStoreRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	key, err := r.store.Post(ctx, mechanicCollection, toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
	}
	m.RecordKey = key
	return m, nil
}

func (r *MechanicStoreRepository) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	if m.RecordKey == "" {
		return entities.Mechanic{}, errors.New("mechanic record key is required for update")
	}
	if err := r.store.Patch(ctx, mechanicCollection, m.RecordKey, toMechanicItem(m)); err != nil {
		return entities.Mechanic{}, err
	}
	return m, nil
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	services := m.Services
	if services == nil {
		services = []string{}
	}
	return mechanicItem{
		Name:         m.Name,
		WorkshopName: derefString(m.WorkshopName),
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		Services:     services,
		Price:        flexFloat(m.Price),
		Image:        m.ImageRef,
		Status:       string(m.Status),
		Disabled:     m.Disabled,
	}
}

func fromMechanicItem(key string, it mechanicItem) entities.Mechanic {
	status := entities.MechanicStatus(it.Status)
	if status != entities.MechanicStatusActive {
		status = entities.MechanicStatusInactive
	}
	return entities.Mechanic{
		RecordKey:    key,
		Email:        it.Email,
		Name:         it.Name,
		WorkshopName: optionalString(it.WorkshopName),
		Phone:        it.Phone,
		Address:      it.Address,
		Services:     it.Services,
		Price:        float64(it.Price),
		ImageRef:     it.Image,
		Status:       status,
		Disabled:     it.Disabled,
	}
}
