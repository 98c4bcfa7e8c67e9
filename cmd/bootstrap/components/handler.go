package components

import (
	"homeservice-booking/internal/handler"
	"homeservice-booking/internal/handler/api"
	"homeservice-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAuthHandler,
		api.NewContactHandler,
		api.NewProviderHandler,
		api.NewOrderHandler,
		api.NewNotificationHandler,
		api.NewGeolocationHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Booking      *api.BookingHandler
	Auth         *api.AuthHandler
	Contact      *api.ContactHandler
	Provider     *api.ProviderHandler
	Order        *api.OrderHandler
	Notification *api.NotificationHandler
	Geolocation  *api.GeolocationHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Booking:      p.Booking,
		Auth:         p.Auth,
		Contact:      p.Contact,
		Provider:     p.Provider,
		Order:        p.Order,
		Notification: p.Notification,
		Geolocation:  p.Geolocation,
	}
}
