package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/notification.go -package=queriesmock

import (
	"context"

	"homeservice-booking/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrInvalidFilter = notification.ErrInvalidFilter

type NotificationReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*notification.Notification, error)
}

type NotificationQueries interface {
	List(ctx context.Context, ownerID uuid.UUID, filter string) (*NotificationListView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

// List filters the owner's feed and reports per-filter counts over the whole
// feed, so the filter tabs can show them.
func (q *notificationQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, filter string) (*NotificationListView, error) {
	f, err := notification.ParseFilter(filter)
	if err != nil {
		return nil, ErrInvalidFilter
	}
	all, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, 5)
	for _, cf := range []notification.Filter{
		notification.FilterAll, notification.FilterUnread, notification.FilterOrder,
		notification.FilterSystem, notification.FilterPromotion,
	} {
		counts[string(cf)] = len(notification.Apply(all, cf))
	}

	selected := notification.Apply(all, f)
	items := make([]*NotificationView, 0, len(selected))
	for _, n := range selected {
		items = append(items, toNotificationView(n))
	}
	return &NotificationListView{
		Items:       items,
		UnreadCount: notification.UnreadCount(all),
		Counts:      counts,
	}, nil
}
