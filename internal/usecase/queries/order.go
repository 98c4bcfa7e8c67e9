package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

import (
	"context"

	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.ErrOrderNotFound
	ErrInvalidTab    = order.ErrInvalidTab
)

type OrderReadStore interface {
	// FindByOwner lists the owner's orders, newest first. No statuses means all.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, statuses []order.Status) ([]*order.Order, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error)
}

type OrderQueries interface {
	List(ctx context.Context, ownerID uuid.UUID, tab string) ([]*OrderView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*OrderView, error)
	Summary(ctx context.Context, ownerID uuid.UUID) (*OrderSummaryView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, tab string) ([]*OrderView, error) {
	t, err := order.ParseTab(tab)
	if err != nil {
		return nil, ErrInvalidTab
	}
	orders, err := q.store.FindByOwner(ctx, ownerID, t.Statuses())
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views, nil
}

// Get only returns orders owned by ownerID; anyone else's order reads as missing.
func (q *orderQueriesImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderView(o), nil
}

func (q *orderQueriesImpl) Summary(ctx context.Context, ownerID uuid.UUID) (*OrderSummaryView, error) {
	orders, err := q.store.FindByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, err
	}
	s := order.Summarize(orders)
	return &OrderSummaryView{
		TotalOrders:     s.Total,
		ActiveOrders:    s.Active,
		CompletedOrders: s.Completed,
		CancelledOrders: s.Cancelled,
	}, nil
}
