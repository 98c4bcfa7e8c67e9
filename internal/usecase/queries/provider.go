package queries

//go:generate mockgen -source=provider.go -destination=../../../tests/mock/queries/provider.go -package=queriesmock

import (
	"context"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"
	"homeservice-booking/internal/domain/schedule"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/clock"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/errs"
)

var (
	ErrProviderNotFound = errs.ErrProviderNotFound
	ErrInvalidSort      = provider.ErrInvalidSortKey
	ErrInvalidDate      = schedule.ErrInvalidDate
)

type ProviderReadStore interface {
	AllProviders(ctx context.Context) ([]*provider.Provider, error)
	ProviderByID(ctx context.Context, id string) (*provider.Provider, error)
	BookedSlots(ctx context.Context, providerID, date string) ([]string, error)
	AllExtraTasks(ctx context.Context) ([]booking.ExtraTask, error)
}

type ProviderQueries interface {
	List(ctx context.Context, sort, specialty string) ([]*ProviderView, error)
	Get(ctx context.Context, id string) (*ProviderView, error)
	Slots(ctx context.Context, id, date string) ([]SlotView, error)
	ExtraTasks(ctx context.Context) ([]ExtraTaskView, error)
}

type providerQueriesImpl struct {
	store ProviderReadStore
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewProviderQueries(store ProviderReadStore, clk clock.Clock, cfg config.BookingConfig) ProviderQueries {
	return &providerQueriesImpl{store: store, clock: clk, cfg: cfg}
}

func (q *providerQueriesImpl) List(ctx context.Context, sort, specialty string) ([]*ProviderView, error) {
	key, err := provider.ParseSortKey(sort)
	if err != nil {
		return nil, ErrInvalidSort
	}
	all, err := q.store.AllProviders(ctx)
	if err != nil {
		return nil, err
	}
	list := provider.Sort(provider.FilterBySpecialty(all, specialty), key)
	views := make([]*ProviderView, 0, len(list))
	for _, p := range list {
		views = append(views, toProviderView(p))
	}
	return views, nil
}

func (q *providerQueriesImpl) Get(ctx context.Context, id string) (*ProviderView, error) {
	p, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProviderView(p), nil
}

func (q *providerQueriesImpl) Slots(ctx context.Context, id, date string) ([]SlotView, error) {
	p, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	booked, err := q.store.BookedSlots(ctx, id, date)
	if err != nil {
		return nil, err
	}
	slots, err := schedule.DaySlots(date, p, q.clock.Now(), booked, q.cfg.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{Time: s.Time, Available: s.Available})
	}
	return views, nil
}

func (q *providerQueriesImpl) ExtraTasks(ctx context.Context) ([]ExtraTaskView, error) {
	tasks, err := q.store.AllExtraTasks(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ExtraTaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, ExtraTaskView{ID: t.ID, Name: t.Name, Price: t.Price.Amount()})
	}
	return views, nil
}

func (q *providerQueriesImpl) find(ctx context.Context, id string) (*provider.Provider, error) {
	p, err := q.store.ProviderByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return p, nil
}
