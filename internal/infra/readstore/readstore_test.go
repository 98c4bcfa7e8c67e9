//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)

	orderCols = []string{
		"id", "owner_id", "reference", "service_type", "sub_service", "status",
		"customer_name", "customer_email", "customer_phone", "provider_id",
		"technician_name", "technician_phone", "scheduled_date", "scheduled_time", "time_zone",
		"address", "city", "postal_code", "description", "estimated_duration",
		"price_cents", "currency", "created_at", "updated_at", "completed_at", "rating", "review",
	}
)

func orderRow(rows *pgxmock.Rows, id, owner uuid.UUID, status string) *pgxmock.Rows {
	return rows.AddRow(
		id, owner, order.ReferenceFor(id), "cleaning", "", status,
		"Jane Doe", "jane@x.com", "+212 6 00 00 00 01", "1",
		"Sarah Johnson", nil, "2024-01-20", "14:00", "Africa/Casablanca",
		"12 Rue Atlas", "Casablanca", "20000", "", int32(2),
		int64(15000), "MAD", created, created, nil, nil, nil,
	)
}

func TestOrderReadStore_FindByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	owner := uuid.New()
	first, second := uuid.New(), uuid.New()
	rows := pgxmock.NewRows(orderCols)
	orderRow(rows, first, owner, "pending")
	orderRow(rows, second, owner, "confirmed")

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(owner, []string{"pending", "confirmed", "in_progress"}).
		WillReturnRows(rows)

	store := readstore.NewOrderReadStore(mock)
	got, err := store.FindByOwner(context.Background(), owner, order.TabCurrent.Statuses())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, first, got[0].ID())
	assert.Equal(t, order.StatusPending, got[0].Status())
	assert.Equal(t, "Sarah Johnson", *got[0].TechnicianName())
	assert.Nil(t, got[0].TechnicianPhone())
	assert.Equal(t, 150.0, got[0].Price().Amount())
	assert.Equal(t, 2, got[0].EstimatedDuration())
	assert.Nil(t, got[0].Rating())
	assert.Equal(t, order.StatusConfirmed, got[1].Status())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderReadStore_FindByOwnerAllStatuses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	owner := uuid.New()
	id := uuid.New()
	done := created.Add(48 * time.Hour)
	rows := pgxmock.NewRows(orderCols).AddRow(
		id, owner, order.ReferenceFor(id), "cleaning", "deep", "completed",
		"Jane Doe", "jane@x.com", "+212 6 00 00 00 01", "1",
		"Sarah Johnson", "+212 6 11 11 11 11", "2024-01-20", "14:00", "Africa/Casablanca",
		"12 Rue Atlas", "Casablanca", "20000", "Kitchen", int32(3),
		int64(22500), "MAD", created, done,
		pgtype.Timestamptz{Time: done, Valid: true}, int64(5), "Spotless",
	)
	mock.ExpectQuery("SELECT (.+) FROM orders").WithArgs(owner, []string(nil)).WillReturnRows(rows)

	got, err := readstore.NewOrderReadStore(mock).FindByOwner(context.Background(), owner, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	o := got[0]
	assert.Equal(t, order.StatusCompleted, o.Status())
	require.NotNil(t, o.CompletedAt())
	assert.True(t, done.Equal(*o.CompletedAt()))
	require.NotNil(t, o.Rating())
	assert.Equal(t, 5, *o.Rating())
	assert.Equal(t, "Spotless", *o.Review())
	assert.Equal(t, "+212 6 11 11 11 11", *o.TechnicianPhone())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderReadStore_FindByID(t *testing.T) {
	owner, id := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs(id, owner).
			WillReturnRows(orderRow(pgxmock.NewRows(orderCols), id, owner, "pending"))

		o, err := readstore.NewOrderReadStore(mock).FindByID(context.Background(), owner, id)
		require.NoError(t, err)
		assert.Equal(t, order.ReferenceFor(id), o.Reference())
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs(id, owner).
			WillReturnError(pgx.ErrNoRows)

		_, err = readstore.NewOrderReadStore(mock).FindByID(context.Background(), owner, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs(id, owner).
			WillReturnRows(orderRow(pgxmock.NewRows(orderCols), id, owner, "lost"))

		_, err = readstore.NewOrderReadStore(mock).FindByID(context.Background(), owner, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestOrderReadStore_BookedTimes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT scheduled_time FROM orders").WithArgs("1", "2024-01-20").
		WillReturnRows(pgxmock.NewRows([]string{"scheduled_time"}).AddRow("09:00").AddRow("14:30"))
	mock.ExpectQuery("SELECT scheduled_time FROM orders").WithArgs("2", "2024-01-20").
		WillReturnError(errors.New("timeout"))

	store := readstore.NewOrderReadStore(mock)
	got, err := store.BookedTimes(context.Background(), "1", "2024-01-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:30"}, got)

	_, err = store.BookedTimes(context.Background(), "2", "2024-01-20")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationReadStore_FindByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	owner, orderID := uuid.New(), uuid.New()
	cols := []string{"id", "owner_id", "type", "title", "message", "created_at", "read", "order_id", "action_url"}
	rows := pgxmock.NewRows(cols).
		AddRow(uuid.New(), owner, "order", "Booking Received", "ORD-1", created, false, orderID.String(), "/orders/"+orderID.String()).
		AddRow(uuid.New(), owner, "system", "Maintenance", "Tonight", created, true, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM notifications").WithArgs(owner).WillReturnRows(rows)

	got, err := readstore.NewNotificationReadStore(mock).FindByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].OrderID())
	assert.Equal(t, orderID, *got[0].OrderID())
	assert.Equal(t, "/orders/"+orderID.String(), *got[0].ActionURL())
	assert.False(t, got[0].Read())
	assert.Nil(t, got[1].OrderID())
	assert.Nil(t, got[1].ActionURL())
	assert.True(t, got[1].Read())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerReadStore_FindCustomerID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT id FROM customers").WithArgs("+212 6 12 34 56 78").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectQuery("SELECT id FROM customers").WithArgs("+212 7 00 00 00 00").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id FROM customers").WithArgs("+212 5 00 00 00 00").
		WillReturnError(errors.New("connection refused"))

	store := readstore.NewCustomerReadStore(mock)

	got, err := store.FindCustomerID(context.Background(), "+212 6 12 34 56 78")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	got, err = store.FindCustomerID(context.Background(), "+212 7 00 00 00 00")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = store.FindCustomerID(context.Background(), "+212 5 00 00 00 00")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.NoError(t, mock.ExpectationsWereMet())
}
