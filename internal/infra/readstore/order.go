package readstore

import (
	"context"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/pgconv"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, owner_id, reference, service_type, sub_service, status,
	customer_name, customer_email, customer_phone, provider_id,
	technician_name, technician_phone, scheduled_date, scheduled_time, time_zone,
	address, city, postal_code, description, estimated_duration,
	price_cents, currency, created_at, updated_at, completed_at, rating, review`

const (
	ordersByOwnerSQL = `SELECT ` + orderColumns + ` FROM orders
WHERE owner_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
ORDER BY created_at DESC, id DESC`

	orderByIDSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND owner_id = $2`

	bookedTimesSQL = `SELECT scheduled_time FROM orders
WHERE provider_id = $1 AND scheduled_date = $2 AND status <> 'cancelled'
ORDER BY scheduled_time`
)

type OrderReadStore struct {
	db shared.DBTX
}

func NewOrderReadStore(db shared.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (s *OrderReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, statuses []order.Status) ([]*order.Order, error) {
	var filter []string
	if len(statuses) > 0 {
		filter = make([]string, 0, len(statuses))
		for _, st := range statuses {
			filter = append(filter, st.String())
		}
	}

	rows, err := s.db.Query(ctx, ordersByOwnerSQL, ownerID, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	result := make([]*order.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return result, nil
}

func (s *OrderReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error) {
	o, err := scanOrder(s.db.QueryRow(ctx, orderByIDSQL, id, ownerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return o, nil
}

// BookedTimes lists the HH:MM start times already taken for a provider on a
// date. Cancelled orders free their slot.
func (s *OrderReadStore) BookedTimes(ctx context.Context, providerID, date string) ([]string, error) {
	rows, err := s.db.Query(ctx, bookedTimesSQL, providerID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked times", err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked times", err)
	}
	return times, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		p                 order.Params
		status            string
		technicianName    pgtype.Text
		technicianPhone   pgtype.Text
		estimatedDuration int32
		priceCents        int64
		completedAt       pgtype.Timestamptz
		rating            pgtype.Int4
		review            pgtype.Text
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Reference, &p.ServiceType, &p.SubService, &status,
		&p.Customer.Name, &p.Customer.Email, &p.Customer.Phone, &p.ProviderID,
		&technicianName, &technicianPhone, &p.ScheduledDate, &p.ScheduledTime, &p.TimeZone,
		&p.Location.Address, &p.Location.City, &p.Location.PostalCode, &p.Description, &estimatedDuration,
		&priceCents, &p.Currency, &p.CreatedAt, &p.UpdatedAt, &completedAt, &rating, &review,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	p.Status = order.Status(status)
	p.TechnicianName = pgconv.StringPtrFromPgtype(technicianName)
	p.TechnicianPhone = pgconv.StringPtrFromPgtype(technicianPhone)
	p.EstimatedDuration = int(estimatedDuration)
	p.Price = booking.Money(priceCents)
	p.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	p.Rating = pgconv.IntPtrFromPgtype(rating)
	p.Review = pgconv.StringPtrFromPgtype(review)

	o, err := order.Reconstruct(p)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order is invalid", err)
	}
	return o, nil
}
