package components

import (
	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/observability/metrics"
	"homeservice-booking/internal/pkg/clock"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/usecase"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.BookingConfig) booking.PriceCalculator {
		return booking.NewDefaultPriceCalculator(cfg.Currency)
	},
	func(m *metrics.BookingMetrics) commands.Metrics {
		return m
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWizardUseCase,
		commands.NewVerificationUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProviderQueries,
		queries.NewOrderQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
