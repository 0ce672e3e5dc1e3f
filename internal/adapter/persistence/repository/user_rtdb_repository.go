package repository

import (
	"context"
	"encoding/json"
	"log"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const userCollection = "users"

// userItem keeps the field names written by the mobile client.
// userPassword holds a bcrypt hash.
type userItem struct {
	UserName     string `json:"userName"`
	UserNumber   string `json:"userNumber"`
	UserEmail    string `json:"userEmail"`
	UserPassword string `json:"userPassword"`
}

// UserStoreRepository persists User entities in the remote JSON store.
//
// Collection: users. Lookups by email are a client-side scan over ListAll.

type UserStoreRepository struct {
	store interfaces.IRemoteStore
}

var _ interfaces.IUserRepository = (*UserStoreRepository)(nil)

func NewUserStoreRepository(store interfaces.IRemoteStore) *UserStoreRepository {
	return &UserStoreRepository{store: store}
}

func (r *UserStoreRepository) ListAll(ctx context.Context) ([]entities.User, error) {
	raw, err := r.store.GetAll(ctx, userCollection)
	if err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(raw))
	for key, rec := range raw {
		var it userItem
		if err := json.Unmarshal(rec, &it); err != nil {
			log.Printf("[user][repository] skipping malformed record key=%s err=%v", key, err)
			continue
		}
		users = append(users, entities.User{
			RecordKey:    key,
			Email:        it.UserEmail,
			Name:         it.UserName,
			Phone:        it.UserNumber,
			PasswordHash: it.UserPassword,
		})
	}
	return users, nil
}

func (r *UserStoreRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	key, err := r.store.Post(ctx, userCollection, userItem{
		UserName:     u.Name,
		UserNumber:   u.Phone,
		UserEmail:    u.Email,
		UserPassword: u.PasswordHash,
	})
	if err != nil {
		return entities.User{}, err
	}
	u.RecordKey = key
	return u, nil
}

func (r *UserStoreRepository) UpdateProfile(ctx context.Context, recordKey, name, phone string) error {
	return r.store.Patch(ctx, userCollection, recordKey, map[string]string{
		"userName":   name,
		"userNumber": phone,
	})
}

func (r *UserStoreRepository) UpdatePasswordHash(ctx context.Context, recordKey, passwordHash string) error {
	return r.store.Patch(ctx, userCollection, recordKey, map[string]string{"userPassword": passwordHash})
}
