package middleware

import (
	"log/slog"
	"os"
	"time"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	ctxLogAttrsKey  = "log_attrs"

	// RequestIDHeader is honored on the way in and echoed on the way out.
	RequestIDHeader = "X-Request-ID"
)

// NewLogger builds the process logger. Release mode logs JSON, other modes
// log text. Timestamps are rendered in the configured zone.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	zone := logZone(cfg)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	if gin.Mode() == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// logZone resolves the named zone, falling back to the fixed offset.
func logZone(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

// RequestLogger writes one line per request once the handler chain is done.
// Handlers add booking context to that line through AnnotateWizard and
// AnnotateOrder.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", routeOf(c)),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if sid, ok := GetSessionID(c); ok {
			attrs = append(attrs, slog.String("session_id", sid.String()))
		}
		attrs = append(attrs, requestLogAttrs(c)...)
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), levelFor(status), "request handled", attrs...)
	}
}

// AnnotateWizard records where the draft ended up after a wizard request.
func AnnotateWizard(c *gin.Context, draft booking.Draft) {
	addLogAttrs(c,
		slog.String("wizard_step", draft.CurrentStep.Name()),
		slog.Int("completion", draft.CompletionPercentage()),
	)
}

// AnnotateOrder records the order a submit produced.
func AnnotateOrder(c *gin.Context, orderID uuid.UUID, reference string) {
	addLogAttrs(c,
		slog.String("order_id", orderID.String()),
		slog.String("order_reference", reference),
	)
}

func addLogAttrs(c *gin.Context, attrs ...slog.Attr) {
	c.Set(ctxLogAttrsKey, append(requestLogAttrs(c), attrs...))
}

func requestLogAttrs(c *gin.Context) []slog.Attr {
	if v, ok := c.Get(ctxLogAttrsKey); ok {
		if attrs, ok := v.([]slog.Attr); ok {
			return attrs
		}
	}
	return nil
}

// routeOf is the matched route template, or the raw path when nothing matched.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
