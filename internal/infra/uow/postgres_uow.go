package uow

import (
	"context"
	"time"

	"homeservice-booking/internal/infra/repository"
	"homeservice-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const defaultMaxRetries = 3

type PostgresUoW struct {
	pool       shared.Pool
	maxRetries int
	retryBase  time.Duration
}

func NewPostgresUoW(pool shared.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		maxRetries: defaultMaxRetries,
		retryBase:  100 * time.Millisecond,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Serialization failures and deadlocks are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	_, err := shared.RunInTxWithRetry(ctx, u.pool, opts, u.maxRetries, u.retryBase, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, fn(ctx, newPgTx(tx))
	})
	return err
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, newPgTx(u.pool))
}

type pgTx struct {
	dbtx shared.DBTX

	// Lazy-initialized repositories
	orderRepo        shared.OrderRepository
	notificationRepo shared.NotificationRepository
	customerRepo     shared.CustomerRepository
}

func newPgTx(db shared.DBTX) *pgTx {
	return &pgTx{dbtx: db}
}

func (t *pgTx) DB() shared.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository()
	}
	return t.orderRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository()
	}
	return t.customerRepo
}
