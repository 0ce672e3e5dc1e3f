package response

import (
	"time"

	"car_maintenance/internal/domain/entities"
)

type UserResponse struct {
	RecordKey string `json:"record_key"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{RecordKey: u.RecordKey, Email: u.Email, Name: u.Name, Phone: u.Phone}
}

type IdentityResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	LoginTime time.Time `json:"login_time"`
}

func FromIdentity(i entities.Identity) IdentityResponse {
	return IdentityResponse{Email: i.Email, Name: i.Name, Phone: i.Phone, LoginTime: i.LoginTime}
}

// SessionResponse returns the bearer token for every later request.
type SessionResponse struct {
	Token    string           `json:"token"`
	Identity IdentityResponse `json:"identity"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{Token: s.Token, Identity: FromIdentity(s.Identity)}
}
