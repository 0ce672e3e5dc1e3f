package entities

import "time"

// Identity is the authenticated user carried by the session.
type Identity struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	LoginTime time.Time `json:"login_time"`
}

// Session is the single login record kept on the device.
type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

// Expired reports whether the session is older than ttl at now.
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.Identity.LoginTime) > ttl
}
