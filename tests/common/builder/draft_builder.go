//go:build unit || e2e

package builder

import (
	"homeservice-booking/internal/domain/booking"
)

// DraftBuilder produces a draft that passes every step gate unless mutated.
type DraftBuilder struct {
	Services      []string
	Location      *booking.Location
	Provider      *booking.ProviderSnapshot
	Schedule      *booking.Schedule
	DurationHours int
	Details       *booking.Details
	Contact       *booking.Contact
	Step          booking.Step
	Currency      string
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		Services: []string{"cleaning"},
		Location: &booking.Location{
			Address:     "12 Rue Atlas",
			City:        "Casablanca",
			PostalCode:  "20000",
			Coordinates: booking.Coordinates{Lat: 33.5731, Lng: -7.5898},
		},
		Provider: &booking.ProviderSnapshot{
			ID:          "1",
			Name:        "Sarah Johnson",
			Rating:      4.9,
			HourlyRate:  booking.NewMoneyFromAmount(75),
			Specialties: []string{"Deep Cleaning", "Office Cleaning"},
		},
		Schedule:      &booking.Schedule{Date: "2024-01-20", Time: "14:00", TimeZone: "Africa/Casablanca"},
		DurationHours: 2,
		Contact:       &booking.Contact{Name: "Jane Doe", Email: "jane@x.com", Phone: "+212 6 00 00 00 01"},
		Step:          booking.StepConfirmation,
		Currency:      "MAD",
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithoutLocation() *DraftBuilder {
	b.Location = nil
	return b
}

func (b *DraftBuilder) WithoutProvider() *DraftBuilder {
	b.Provider = nil
	return b
}

func (b *DraftBuilder) WithoutContact() *DraftBuilder {
	b.Contact = nil
	return b
}

func (b *DraftBuilder) WithStep(step booking.Step) *DraftBuilder {
	b.Step = step
	return b
}

func (b *DraftBuilder) WithExtraTasks(tasks ...booking.ExtraTask) *DraftBuilder {
	b.Details = &booking.Details{ExtraTasks: tasks}
	return b
}

// Build returns the draft with pricing derived from the provider and duration.
func (b *DraftBuilder) Build() booking.Draft {
	d := booking.Draft{
		SelectedServices: b.Services,
		Location:         b.Location,
		Provider:         b.Provider,
		Schedule:         b.Schedule,
		DurationHours:    b.DurationHours,
		Details:          b.Details,
		Contact:          b.Contact,
		CurrentStep:      b.Step,
	}
	return booking.NewWizard(d, booking.NewDefaultPriceCalculator(b.Currency)).Snapshot()
}
