package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homeservice-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrDraftIncomplete = errors.New("booking draft is not complete")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Location struct {
	Address    string
	City       string
	PostalCode string
}

type Order struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	reference         string
	serviceType       string
	subService        string
	status            Status
	customer          Customer
	providerID        string
	technicianName    *string
	technicianPhone   *string
	scheduledDate     string
	scheduledTime     string
	timeZone          string
	location          Location
	description       string
	estimatedDuration int
	price             booking.Money
	currency          string
	createdAt         time.Time
	updatedAt         time.Time
	completedAt       *time.Time
	rating            *int
	review            *string
}

// NewOrderFromDraft turns a draft that passes every step gate into a pending
// order owned by ownerID.
func NewOrderFromDraft(d booking.Draft, ownerID uuid.UUID, now time.Time) (*Order, error) {
	if !d.ReadyToSubmit() || d.Pricing == nil {
		return nil, ErrDraftIncomplete
	}
	id := uuid.New()
	technician := d.Provider.Name
	o := &Order{
		id:        id,
		ownerID:   ownerID,
		reference: ReferenceFor(id),
		status:    StatusPending,
		customer: Customer{
			Name:  d.Contact.Name,
			Email: d.Contact.Email,
			Phone: d.Contact.Phone,
		},
		providerID:        d.Provider.ID,
		technicianName:    &technician,
		scheduledDate:     d.Schedule.Date,
		scheduledTime:     d.Schedule.Time,
		timeZone:          d.Schedule.TimeZone,
		location:          Location{Address: d.Location.Address, City: d.Location.City, PostalCode: d.Location.PostalCode},
		estimatedDuration: d.DurationHours,
		price:             d.Pricing.TotalPrice,
		currency:          d.Pricing.Currency,
		createdAt:         now,
		updatedAt:         now,
	}
	if len(d.SelectedServices) > 0 {
		o.serviceType = d.SelectedServices[0]
	}
	if len(d.SelectedSubServices) > 0 {
		o.subService = d.SelectedSubServices[0]
	}
	if d.Details != nil {
		o.description = describe(*d.Details)
	}
	return o, nil
}

// ReferenceFor derives the short human-facing order number.
func ReferenceFor(id uuid.UUID) string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

func describe(d booking.Details) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{d.Description, d.Requirements, d.Notes} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(d.ExtraTasks) > 0 {
		names := make([]string, 0, len(d.ExtraTasks))
		for _, t := range d.ExtraTasks {
			names = append(names, t.Name)
		}
		parts = append(parts, fmt.Sprintf("Extras: %s", strings.Join(names, ", ")))
	}
	return strings.Join(parts, "\n")
}

// Params carries persisted order state back into the domain.
type Params struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Reference         string
	ServiceType       string
	SubService        string
	Status            Status
	Customer          Customer
	ProviderID        string
	TechnicianName    *string
	TechnicianPhone   *string
	ScheduledDate     string
	ScheduledTime     string
	TimeZone          string
	Location          Location
	Description       string
	EstimatedDuration int
	Price             booking.Money
	Currency          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	Rating            *int
	Review            *string
}

func Reconstruct(p Params) (*Order, error) {
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return nil, ErrInvalidRating
	}
	return &Order{
		id:                p.ID,
		ownerID:           p.OwnerID,
		reference:         p.Reference,
		serviceType:       p.ServiceType,
		subService:        p.SubService,
		status:            p.Status,
		customer:          p.Customer,
		providerID:        p.ProviderID,
		technicianName:    p.TechnicianName,
		technicianPhone:   p.TechnicianPhone,
		scheduledDate:     p.ScheduledDate,
		scheduledTime:     p.ScheduledTime,
		timeZone:          p.TimeZone,
		location:          p.Location,
		description:       p.Description,
		estimatedDuration: p.EstimatedDuration,
		price:             p.Price,
		currency:          p.Currency,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
		completedAt:       p.CompletedAt,
		rating:            p.Rating,
		review:            p.Review,
	}, nil
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) OwnerID() uuid.UUID       { return o.ownerID }
func (o *Order) Reference() string        { return o.reference }
func (o *Order) ServiceType() string      { return o.serviceType }
func (o *Order) SubService() string       { return o.subService }
func (o *Order) Status() Status           { return o.status }
func (o *Order) Customer() Customer       { return o.customer }
func (o *Order) ProviderID() string       { return o.providerID }
func (o *Order) TechnicianName() *string  { return o.technicianName }
func (o *Order) TechnicianPhone() *string { return o.technicianPhone }
func (o *Order) ScheduledDate() string    { return o.scheduledDate }
func (o *Order) ScheduledTime() string    { return o.scheduledTime }
func (o *Order) TimeZone() string         { return o.timeZone }
func (o *Order) Location() Location       { return o.location }
func (o *Order) Description() string      { return o.description }
func (o *Order) EstimatedDuration() int   { return o.estimatedDuration }
func (o *Order) Price() booking.Money     { return o.price }
func (o *Order) Currency() string         { return o.currency }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
func (o *Order) CompletedAt() *time.Time  { return o.completedAt }
func (o *Order) Rating() *int             { return o.rating }
func (o *Order) Review() *string          { return o.review }

func (o *Order) IsCurrent() bool {
	return o.status.IsCurrent()
}
