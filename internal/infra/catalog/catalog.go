package catalog

import (
	"context"
	"sort"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"
	"homeservice-booking/internal/infra"
)

// DefaultBookedSlots are taken on every provider's calendar.
var DefaultBookedSlots = []string{"10:00", "14:30", "16:00"}

// BookingSource reports slots taken by orders already placed.
type BookingSource interface {
	BookedTimes(ctx context.Context, providerID, date string) ([]string, error)
}

// Catalog serves the fixed provider roster and extra task price list.
type Catalog struct {
	providers []*provider.Provider
	byID      map[string]*provider.Provider
	tasks     []booking.ExtraTask
	taskByID  map[string]booking.ExtraTask
	bookings  BookingSource
}

func New(providers []*provider.Provider, tasks []booking.ExtraTask, bookings BookingSource) *Catalog {
	c := &Catalog{
		providers: providers,
		byID:      make(map[string]*provider.Provider, len(providers)),
		tasks:     tasks,
		taskByID:  make(map[string]booking.ExtraTask, len(tasks)),
		bookings:  bookings,
	}
	for _, p := range providers {
		c.byID[p.ID()] = p
	}
	for _, t := range tasks {
		c.taskByID[t.ID] = t
	}
	return c
}

// NewDefault loads the built-in roster. bookings may be nil.
func NewDefault(bookings BookingSource) (*Catalog, error) {
	providers := make([]*provider.Provider, 0, len(defaultProviders))
	for _, params := range defaultProviders {
		p, err := provider.NewProvider(params)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return New(providers, defaultExtraTasks, bookings), nil
}

func (c *Catalog) AllProviders(_ context.Context) ([]*provider.Provider, error) {
	return append([]*provider.Provider(nil), c.providers...), nil
}

func (c *Catalog) ProviderByID(_ context.Context, id string) (*provider.Provider, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (c *Catalog) AllExtraTasks(_ context.Context) ([]booking.ExtraTask, error) {
	return append([]booking.ExtraTask(nil), c.tasks...), nil
}

// ExtraTasks resolves ids in request order; any unknown id fails the lookup.
func (c *Catalog) ExtraTasks(_ context.Context, ids []string) ([]booking.ExtraTask, error) {
	out := make([]booking.ExtraTask, 0, len(ids))
	for _, id := range ids {
		t, ok := c.taskByID[id]
		if !ok {
			return nil, infra.WrapRepoErr("extra task not found: "+id, nil, infra.KindNotFound)
		}
		out = append(out, t)
	}
	return out, nil
}

// BookedSlots merges the fixed booked slots with the provider's placed orders.
// Without a provider only the fixed slots apply.
func (c *Catalog) BookedSlots(ctx context.Context, providerID, date string) ([]string, error) {
	seen := make(map[string]struct{}, len(DefaultBookedSlots))
	for _, s := range DefaultBookedSlots {
		seen[s] = struct{}{}
	}
	if c.bookings != nil && providerID != "" {
		taken, err := c.bookings.BookedTimes(ctx, providerID, date)
		if err != nil {
			return nil, err
		}
		for _, s := range taken {
			seen[s] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}
