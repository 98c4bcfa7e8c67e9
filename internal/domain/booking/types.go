package booking

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address         string      `json:"address"`
	City            string      `json:"city"`
	PostalCode      string      `json:"postalCode"`
	Coordinates     Coordinates `json:"coordinates"`
	HouseNumber     *string     `json:"houseNumber,omitempty"`
	Apartment       *string     `json:"apartment,omitempty"`
	AdditionalNotes *string     `json:"additionalNotes,omitempty"`
}

// ProviderSnapshot is the provider as it was when selected. It is not refreshed
// from the catalog afterwards.
type ProviderSnapshot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	HourlyRate  Money    `json:"hourlyRate"`
	Specialties []string `json:"specialties"`
	Avatar      *string  `json:"avatar,omitempty"`
}

type Schedule struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timeZone"`
}

type ExtraTask struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

type Details struct {
	HomeSize     *string     `json:"homeSize,omitempty"`
	ExtraTasks   []ExtraTask `json:"extraTasks"`
	Description  string      `json:"description"`
	Requirements string      `json:"requirements"`
	Notes        string      `json:"notes"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Pricing struct {
	BasePrice       Money  `json:"basePrice"`
	ExtraTasksPrice Money  `json:"extraTasksPrice"`
	TotalPrice      Money  `json:"totalPrice"`
	Currency        string `json:"currency"`
}
