//go:build unit

package notification_test

import (
	"strings"
	"testing"
	"time"

	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/domain/order"
	"homeservice-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNotification(t *testing.T, typ notification.Type, read bool) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(notification.Params{
		OwnerID: uuid.New(), Type: typ, Title: "Title", Read: read, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	_, err := notification.NewNotification(notification.Params{Type: "email", Title: "x"})
	assert.ErrorIs(t, err, notification.ErrInvalidType)

	_, err = notification.NewNotification(notification.Params{Type: notification.TypeSystem, Title: " "})
	assert.ErrorIs(t, err, notification.ErrEmptyTitle)

	n, err := notification.NewNotification(notification.Params{Type: notification.TypeSystem, Title: "Maintenance"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, n.ID())
	assert.False(t, n.Read())
	n.MarkRead()
	assert.True(t, n.Read())
}

func TestNewOrderPlaced(t *testing.T) {
	o, err := order.NewOrderFromDraft(builder.NewDraftBuilder().Build(), uuid.New(), time.Now())
	require.NoError(t, err)

	n := notification.NewOrderPlaced(o)
	assert.Equal(t, notification.TypeOrder, n.Type())
	assert.Equal(t, o.OwnerID(), n.OwnerID())
	require.NotNil(t, n.OrderID())
	assert.Equal(t, o.ID(), *n.OrderID())
	assert.Equal(t, "/orders/"+o.ID().String(), *n.ActionURL())
	assert.True(t, strings.Contains(n.Message(), o.Reference()))
	assert.False(t, n.Read())
}

func TestFilter(t *testing.T) {
	list := []*notification.Notification{
		mustNotification(t, notification.TypeOrder, false),
		mustNotification(t, notification.TypeOrder, true),
		mustNotification(t, notification.TypeSystem, true),
		mustNotification(t, notification.TypePromotion, false),
	}

	cases := []struct {
		filter string
		want   int
	}{
		{"", 4}, {"all", 4}, {"unread", 2}, {"order", 2}, {"system", 1}, {"promotion", 1},
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			f, err := notification.ParseFilter(tc.filter)
			require.NoError(t, err)
			assert.Len(t, notification.Apply(list, f), tc.want)
		})
	}

	_, err := notification.ParseFilter("archived")
	assert.ErrorIs(t, err, notification.ErrInvalidFilter)
	assert.Equal(t, 2, notification.UnreadCount(list))
}
