//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.PUT("/api/booking/schedule", func(c *gin.Context) {
		middleware.AnnotateWizard(c, builder.NewDraftBuilder().Build())
		c.Status(http.StatusOK)
	})
	r.POST("/api/booking/submit", func(c *gin.Context) {
		middleware.AnnotateOrder(c, uuid.MustParse("7b0c7d7e-0f7e-4b43-9a55-5d3c8d1e6f10"), "ORD-1705482000000")
		c.Status(http.StatusCreated)
	})
	r.GET("/api/orders/:id", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestRequestLogger(t *testing.T) {
	t.Run("wizard request carries the step the draft ended on", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodPut, "/api/booking/schedule", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
		line := logLine(t, &buf)
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, "req-42", line["request_id"])
		assert.Equal(t, "/api/booking/schedule", line["route"])
		assert.Equal(t, "confirmation", line["wizard_step"])
		assert.EqualValues(t, builder.NewDraftBuilder().Build().CompletionPercentage(), line["completion"])
		assert.EqualValues(t, http.StatusOK, line["status"])
		assert.NotContains(t, line, "session_id")
	})

	t.Run("submit carries the order reference", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/submit", nil))

		line := logLine(t, &buf)
		assert.Equal(t, "ORD-1705482000000", line["order_reference"])
		assert.Equal(t, "7b0c7d7e-0f7e-4b43-9a55-5d3c8d1e6f10", line["order_id"])
		_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err, "generated request id")
	})

	t.Run("route template hides the order id and failures log as errors", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))

		line := logLine(t, &buf)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, "/api/orders/:id", line["route"])
		assert.NotContains(t, line, "wizard_step")
	})

	t.Run("unmatched path is logged raw as a warning", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		line := logLine(t, &buf)
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, "/nowhere", line["route"])
	})
}
