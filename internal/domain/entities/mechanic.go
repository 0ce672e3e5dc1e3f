package entities

type MechanicStatus string

const (
	MechanicStatusActive   MechanicStatus = "Active"
	MechanicStatusInactive MechanicStatus = "Inactive"
)

// Mechanic is a mechanic listing, one per email.
//
// Storage model (remote JSON store, collection "Mechanic"):
//   - RecordKey: key assigned by the store on the first submission
//   - later submissions for the same email PATCH the same record (upsert)
//
// Disabled marks a mechanic without a workshop.
type Mechanic struct {
	RecordKey    string         `json:"record_key"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	WorkshopName *string        `json:"workshop_name,omitempty"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Services     []string       `json:"services"`
	Price        float64        `json:"price"`
	ImageRef     string         `json:"image_ref"`
	Status       MechanicStatus `json:"status"`
	Disabled     bool           `json:"disabled"`
}

// Offers reports whether service is one of the mechanic's services.
func (m Mechanic) Offers(service string) bool {
	for _, s := range m.Services {
		if s == service {
			return true
		}
	}
	return false
}
