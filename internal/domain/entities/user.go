package entities

// User is a customer account, keyed by email.
//
// Storage model (remote JSON store, collection "users"):
//   - RecordKey: key assigned by the store
//   - PasswordHash: bcrypt hash, never the plaintext
type User struct {
	RecordKey    string `json:"record_key"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}
