package response

import (
	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/usecase/commands"
)

type LocationResponse struct {
	Address         string  `json:"address"`
	City            string  `json:"city"`
	PostalCode      string  `json:"postal_code"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	HouseNumber     *string `json:"house_number,omitempty"`
	Apartment       *string `json:"apartment,omitempty"`
	AdditionalNotes *string `json:"additional_notes,omitempty"`
}

type ProviderSnapshotResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	HourlyRate  float64  `json:"hourly_rate"`
	Specialties []string `json:"specialties"`
	Avatar      *string  `json:"avatar,omitempty"`
}

type ScheduleResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"time_zone"`
}

type ExtraTaskResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type DetailsResponse struct {
	HomeSize     *string             `json:"home_size,omitempty"`
	ExtraTasks   []ExtraTaskResponse `json:"extra_tasks"`
	Description  string              `json:"description"`
	Requirements string              `json:"requirements"`
	Notes        string              `json:"notes"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PricingResponse struct {
	BasePrice       float64 `json:"base_price"`
	ExtraTasksPrice float64 `json:"extra_tasks_price"`
	TotalPrice      float64 `json:"total_price"`
	Currency        string  `json:"currency"`
}

type StepStatusResponse struct {
	Step     int    `json:"step"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type DraftResponse struct {
	OfferID              *string                   `json:"offer_id,omitempty"`
	SelectedServices     []string                  `json:"selected_services"`
	SelectedSubServices  []string                  `json:"selected_sub_services"`
	Location             *LocationResponse         `json:"location,omitempty"`
	Details              *DetailsResponse          `json:"details,omitempty"`
	Provider             *ProviderSnapshotResponse `json:"provider,omitempty"`
	Schedule             *ScheduleResponse         `json:"schedule,omitempty"`
	DurationHours        int                       `json:"duration_hours"`
	Contact              *ContactResponse          `json:"contact,omitempty"`
	Pricing              *PricingResponse          `json:"pricing,omitempty"`
	CurrentStep          int                       `json:"current_step"`
	CurrentStepName      string                    `json:"current_step_name"`
	TotalSteps           int                       `json:"total_steps"`
	CanProceed           bool                      `json:"can_proceed"`
	CompletionPercentage int                       `json:"completion_percentage"`
	Steps                []StepStatusResponse      `json:"steps"`
}

type WizardResponse struct {
	Draft       *DraftResponse    `json:"draft"`
	Advanced    bool              `json:"advanced"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

type SubmitResponse struct {
	OrderID   string         `json:"order_id"`
	Reference string         `json:"reference"`
	Draft     *DraftResponse `json:"draft"`
}

func FromWizardResult(r *commands.WizardResult) *WizardResponse {
	return &WizardResponse{
		Draft:       FromDraft(r.Draft),
		Advanced:    r.Advanced,
		FieldErrors: r.FieldErrors,
	}
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		OrderID:   r.OrderID.String(),
		Reference: r.Reference,
		Draft:     FromDraft(r.Draft),
	}
}

func FromDraft(d booking.Draft) *DraftResponse {
	res := &DraftResponse{
		OfferID:              d.OfferID,
		SelectedServices:     nonNil(d.SelectedServices),
		SelectedSubServices:  nonNil(d.SelectedSubServices),
		DurationHours:        d.DurationHours,
		CurrentStep:          int(d.CurrentStep),
		CurrentStepName:      d.CurrentStep.Name(),
		TotalSteps:           booking.TotalSteps,
		CanProceed:           d.CanAdvance(),
		CompletionPercentage: d.CompletionPercentage(),
	}
	for _, st := range d.StepStatuses() {
		res.Steps = append(res.Steps, StepStatusResponse{Step: int(st.Step), Name: st.Step.Name(), Complete: st.Complete})
	}
	if l := d.Location; l != nil {
		res.Location = &LocationResponse{
			Address:         l.Address,
			City:            l.City,
			PostalCode:      l.PostalCode,
			Lat:             l.Coordinates.Lat,
			Lng:             l.Coordinates.Lng,
			HouseNumber:     l.HouseNumber,
			Apartment:       l.Apartment,
			AdditionalNotes: l.AdditionalNotes,
		}
	}
	if det := d.Details; det != nil {
		extras := make([]ExtraTaskResponse, 0, len(det.ExtraTasks))
		for _, t := range det.ExtraTasks {
			extras = append(extras, ExtraTaskResponse{ID: t.ID, Name: t.Name, Price: t.Price.Amount()})
		}
		res.Details = &DetailsResponse{
			HomeSize:     det.HomeSize,
			ExtraTasks:   extras,
			Description:  det.Description,
			Requirements: det.Requirements,
			Notes:        det.Notes,
		}
	}
	if p := d.Provider; p != nil {
		res.Provider = &ProviderSnapshotResponse{
			ID:          p.ID,
			Name:        p.Name,
			Rating:      p.Rating,
			HourlyRate:  p.HourlyRate.Amount(),
			Specialties: nonNil(p.Specialties),
			Avatar:      p.Avatar,
		}
	}
	if s := d.Schedule; s != nil {
		res.Schedule = &ScheduleResponse{Date: s.Date, Time: s.Time, TimeZone: s.TimeZone}
	}
	if c := d.Contact; c != nil {
		res.Contact = &ContactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone}
	}
	if p := d.Pricing; p != nil {
		res.Pricing = &PricingResponse{
			BasePrice:       p.BasePrice.Amount(),
			ExtraTasksPrice: p.ExtraTasksPrice.Amount(),
			TotalPrice:      p.TotalPrice.Amount(),
			Currency:        p.Currency,
		}
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
