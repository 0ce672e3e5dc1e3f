package request

import "car_maintenance/internal/usecase"

// MechanicProfileRequest is the listing form. Validation happens in the use case so the
// same messages reach every client.
type MechanicProfileRequest struct {
	Name         string   `json:"name"`
	WorkshopName string   `json:"workshop_name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Services     []string `json:"services"`
	Price        float64  `json:"price"`
	ImageRef     string   `json:"image_ref"`
	Active       bool     `json:"active"`
	Disabled     bool     `json:"disabled"`
}

func (r MechanicProfileRequest) ToInput() usecase.MechanicProfileInput {
	return usecase.MechanicProfileInput{
		Name:         r.Name,
		WorkshopName: r.WorkshopName,
		Phone:        r.Phone,
		Address:      r.Address,
		Services:     r.Services,
		Price:        r.Price,
		ImageRef:     r.ImageRef,
		Active:       r.Active,
		Disabled:     r.Disabled,
	}
}
