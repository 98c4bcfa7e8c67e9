package components

import (
	"homeservice-booking/internal/infra/catalog"
	"homeservice-booking/internal/infra/readstore"
	"homeservice-booking/internal/infra/uow"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/queries"
	"homeservice-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewPool,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
			fx.As(new(catalog.BookingSource)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Customer
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(commands.IdentityLookup)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewPool(pool *pgxpool.Pool) shared.Pool {
	return pool
}

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}
