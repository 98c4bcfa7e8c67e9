package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homeservice-booking/internal/handler/api"
	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/internal/observability/metrics"
	"homeservice-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Booking      *api.BookingHandler
	Auth         *api.AuthHandler
	Contact      *api.ContactHandler
	Provider     *api.ProviderHandler
	Order        *api.OrderHandler
	Notification *api.NotificationHandler
	Geolocation  *api.GeolocationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h Handlers,
	sessions *middleware.SessionMiddleware,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger, httpMetrics)
	setupRoutes(engine, h, sessions, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, httpMetrics *metrics.HTTPMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.MetricsMiddleware(httpMetrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessions *middleware.SessionMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Catalog and helper endpoints do not depend on the caller.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/providers", Handler: h.Provider.List},
			{Method: http.MethodGet, Path: "/providers/:id", Handler: h.Provider.Get},
			{Method: http.MethodGet, Path: "/providers/:id/slots", Handler: h.Provider.Slots},
			{Method: http.MethodGet, Path: "/extra-tasks", Handler: h.Provider.ExtraTasks},
			{Method: http.MethodPost, Path: "/contact/validate", Handler: h.Contact.Validate},
			{Method: http.MethodPost, Path: "/contact/format-phone", Handler: h.Contact.FormatPhone},
			{Method: http.MethodPost, Path: "/geolocation/report", Handler: h.Geolocation.Report},
			{Method: http.MethodPost, Path: "/auth/code", Handler: h.Auth.SendCode},
		})

		sessioned := apiGroup.Group("")
		sessioned.Use(sessions.RequireSession())
		{
			addRoutes(sessioned.Group("/auth"), []route{
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.VerifyCode},
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
			})

			addRoutes(sessioned.Group("/booking"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Booking.Reset},
				{Method: http.MethodPut, Path: "/services", Handler: h.Booking.SetServices},
				{Method: http.MethodPut, Path: "/location", Handler: h.Booking.SetLocation},
				{Method: http.MethodPut, Path: "/provider", Handler: h.Booking.SelectProvider},
				{Method: http.MethodPut, Path: "/schedule", Handler: h.Booking.SetSchedule},
				{Method: http.MethodPut, Path: "/duration", Handler: h.Booking.SetDuration},
				{Method: http.MethodPut, Path: "/details", Handler: h.Booking.SetDetails},
				{Method: http.MethodPut, Path: "/contact", Handler: h.Booking.SetContact},
				{Method: http.MethodPost, Path: "/next", Handler: h.Booking.Next},
				{Method: http.MethodPost, Path: "/previous", Handler: h.Booking.Previous},
				{Method: http.MethodPost, Path: "/goto", Handler: h.Booking.GoTo},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Booking.Submit},
			})

			addRoutes(sessioned.Group("/orders"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Order.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})

			addRoutes(sessioned.Group("/notifications"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
