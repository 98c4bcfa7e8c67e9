package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"homeservice-booking/internal/domain/customer"
	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements outside an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Orders() OrderRepository
	Notifications() NotificationRepository
	Customers() CustomerRepository
	DB() DBTX
}

type OrderRepository interface {
	Create(ctx context.Context, db DBTX, o *order.Order) error
}

type NotificationRepository interface {
	Create(ctx context.Context, db DBTX, n *notification.Notification) error
	MarkRead(ctx context.Context, db DBTX, ownerID, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, db DBTX, ownerID uuid.UUID) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, db DBTX, c *customer.Customer) error
}
