package response

import "car_maintenance/internal/domain/entities"

type MechanicResponse struct {
	RecordKey    string   `json:"record_key"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	WorkshopName *string  `json:"workshop_name,omitempty"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Services     []string `json:"services"`
	Price        float64  `json:"price"`
	ImageRef     string   `json:"image_ref"`
	ImageURL     string   `json:"image_url"`
	Status       string   `json:"status"`
	Disabled     bool     `json:"disabled"`
}

// FromMechanic maps a listing; imageURL is the displayable form of ImageRef.
func FromMechanic(m entities.Mechanic, imageURL string) MechanicResponse {
	services := m.Services
	if services == nil {
		services = []string{}
	}
	return MechanicResponse{
		RecordKey:    m.RecordKey,
		Email:        m.Email,
		Name:         m.Name,
		WorkshopName: m.WorkshopName,
		Phone:        m.Phone,
		Address:      m.Address,
		Services:     services,
		Price:        m.Price,
		ImageRef:     m.ImageRef,
		ImageURL:     imageURL,
		Status:       string(m.Status),
		Disabled:     m.Disabled,
	}
}

type LogoResponse struct {
	ImageRef string `json:"image_ref"`
	ImageURL string `json:"image_url"`
}
