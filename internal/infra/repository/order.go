package repository

import (
	"context"

	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/domain/schedule"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/pkg/pgconv"
	"homeservice-booking/internal/usecase/shared"
)

// orderSlotKey keeps two live orders off the same provider slot.
const orderSlotKey = "orders_provider_slot_key"

const insertOrderSQL = `INSERT INTO orders (
	id, owner_id, reference, service_type, sub_service, status,
	customer_name, customer_email, customer_phone, provider_id,
	technician_name, technician_phone, scheduled_date, scheduled_time, time_zone,
	address, city, postal_code, description, estimated_duration,
	price_cents, currency, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
)`

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, db shared.DBTX, o *order.Order) error {
	c := o.Customer()
	loc := o.Location()
	_, err := db.Exec(ctx, insertOrderSQL,
		o.ID(), o.OwnerID(), o.Reference(), o.ServiceType(), o.SubService(), o.Status().String(),
		c.Name, c.Email, c.Phone, o.ProviderID(),
		pgconv.StringPtrToPgtype(o.TechnicianName()), pgconv.StringPtrToPgtype(o.TechnicianPhone()),
		o.ScheduledDate(), o.ScheduledTime(), o.TimeZone(),
		loc.Address, loc.City, loc.PostalCode, o.Description(), o.EstimatedDuration(),
		o.Price().Cents(), o.Currency(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		err = classify("failed to create order", err)
		if pgconv.ViolatedConstraint(err) == orderSlotKey {
			return errs.Mark(err, schedule.ErrSlotUnavailable)
		}
		return err
	}
	return nil
}
