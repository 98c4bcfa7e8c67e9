package customer

import (
	"strings"
	"time"

	"homeservice-booking/internal/domain/contact"

	"github.com/google/uuid"
)

type Customer struct {
	id        uuid.UUID
	name      string
	email     string
	phone     string
	createdAt time.Time
}

// NewCustomer validates the contact fields and stores the phone in its
// display form so lookups match what the wizard collects.
func NewCustomer(name, email, phone string, now time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = contact.FormatPhone(strings.TrimSpace(phone))
	if err := contact.ValidateContact(name, email, phone).Err(); err != nil {
		return nil, err
	}
	return &Customer{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: now,
	}, nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
