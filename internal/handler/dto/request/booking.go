package request

import (
	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/usecase/commands"
)

type SetServicesRequest struct {
	Services    []string `json:"services" binding:"required,min=1,dive,max=100"`
	SubServices []string `json:"sub_services" binding:"omitempty,dive,max=100"`
	OfferID     *string  `json:"offer_id" binding:"omitempty,max=100"`
}

func (r *SetServicesRequest) ToInput() commands.SetServicesInput {
	return commands.SetServicesInput{
		Services:    r.Services,
		SubServices: r.SubServices,
		OfferID:     r.OfferID,
	}
}

// LocationRequest leaves lat/lng at zero when the client has no position.
type LocationRequest struct {
	Address         string  `json:"address" binding:"required,max=200"`
	City            string  `json:"city" binding:"max=100"`
	PostalCode      string  `json:"postal_code" binding:"max=20"`
	Lat             float64 `json:"lat" binding:"min=-90,max=90"`
	Lng             float64 `json:"lng" binding:"min=-180,max=180"`
	HouseNumber     *string `json:"house_number" binding:"omitempty,max=20"`
	Apartment       *string `json:"apartment" binding:"omitempty,max=50"`
	AdditionalNotes *string `json:"additional_notes" binding:"omitempty,max=500"`
}

func (r *LocationRequest) ToDomain() booking.Location {
	return booking.Location{
		Address:         r.Address,
		City:            r.City,
		PostalCode:      r.PostalCode,
		Coordinates:     booking.Coordinates{Lat: r.Lat, Lng: r.Lng},
		HouseNumber:     r.HouseNumber,
		Apartment:       r.Apartment,
		AdditionalNotes: r.AdditionalNotes,
	}
}

type SelectProviderRequest struct {
	ProviderID string `json:"provider_id" binding:"required,max=50"`
}

type ScheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	TimeZone string `json:"time_zone" binding:"max=64"`
}

func (r *ScheduleRequest) ToDomain() booking.Schedule {
	return booking.Schedule{Date: r.Date, Time: r.Time, TimeZone: r.TimeZone}
}

type DurationRequest struct {
	Hours int `json:"hours" binding:"required"`
}

type DetailsRequest struct {
	HomeSize     *string  `json:"home_size" binding:"omitempty,max=50"`
	ExtraTaskIDs []string `json:"extra_task_ids" binding:"omitempty,dive,max=50"`
	Description  string   `json:"description" binding:"max=2000"`
	Requirements string   `json:"requirements" binding:"max=2000"`
	Notes        string   `json:"notes" binding:"max=2000"`
}

func (r *DetailsRequest) ToInput() commands.DetailsInput {
	return commands.DetailsInput{
		HomeSize:     r.HomeSize,
		ExtraTaskIDs: r.ExtraTaskIDs,
		Description:  r.Description,
		Requirements: r.Requirements,
		Notes:        r.Notes,
	}
}

// ContactRequest is checked field by field by the wizard, so nothing is
// required at the binding level.
type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *ContactRequest) ToDomain() booking.Contact {
	return booking.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type GoToRequest struct {
	Step string `json:"step" binding:"required"`
}
