//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"homeservice-booking/internal/handler/api"
	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContactRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	contact := api.NewContactHandler()
	geo := api.NewGeolocationHandler()
	r.POST("/contact/validate", contact.Validate)
	r.POST("/contact/format-phone", contact.FormatPhone)
	r.POST("/geolocation/report", geo.Report)
	return r
}

func TestContactHandler_Validate(t *testing.T) {
	r := newContactRouter()

	t.Run("valid contact", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/contact/validate",
			reqdto.ValidateContactRequest{Name: "Jane Doe", Email: "jane@x.com", Phone: testPhone}, "")

		var res resdto.ValidateContactResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("every field reported", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/contact/validate",
			reqdto.ValidateContactRequest{Name: "", Email: "nope", Phone: "0612"}, "")

		var res resdto.ValidateContactResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 3)
		assert.Contains(t, res.Errors, "name")
		assert.Contains(t, res.Errors, "email")
		assert.Contains(t, res.Errors, "phone")
	})
}

func TestContactHandler_FormatPhone(t *testing.T) {
	r := newContactRouter()

	testCases := []struct {
		name   string
		input  string
		expect string
		valid  bool
	}{
		{name: "raw digits after prefix", input: "+212 612345678", expect: testPhone, valid: true},
		{name: "already formatted", input: testPhone, expect: testPhone, valid: true},
		{name: "partial input", input: "+212 6123", expect: "+212 6 12 3", valid: false},
		{name: "extra digits dropped", input: "+212 6123456789", expect: testPhone, valid: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/contact/format-phone",
				reqdto.FormatPhoneRequest{Phone: tc.input}, "")

			var res resdto.FormatPhoneResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			assert.Equal(t, tc.expect, res.Phone)
			assert.Equal(t, tc.valid, res.Valid)
		})
	}
}

func TestGeolocationHandler_Report(t *testing.T) {
	r := newContactRouter()
	paris := struct{ lat, lng float64 }{48.8566, 2.3522}
	casablanca := struct{ lat, lng float64 }{33.5731, -7.5898}

	testCases := []struct {
		name        string
		req         reqdto.GeolocationReportRequest
		expectCause string
		expectState string
	}{
		{name: "permission denied by code", req: reqdto.GeolocationReportRequest{Cause: "1"}, expectCause: "permission_denied", expectState: "denied"},
		{name: "timeout by name", req: reqdto.GeolocationReportRequest{Cause: "timeout"}, expectCause: "timeout", expectState: "idle"},
		{name: "unknown cause", req: reqdto.GeolocationReportRequest{Cause: "solar flare"}, expectCause: "unknown", expectState: "idle"},
		{
			name:        "position outside Morocco",
			req:         reqdto.GeolocationReportRequest{Cause: "timeout", Lat: &paris.lat, Lng: &paris.lng},
			expectCause: "outside_service_area",
			expectState: "denied",
		},
		{
			name:        "position inside Morocco keeps the cause",
			req:         reqdto.GeolocationReportRequest{Cause: "2", Lat: &casablanca.lat, Lng: &casablanca.lng},
			expectCause: "position_unavailable",
			expectState: "denied",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/geolocation/report", tc.req, "")

			var res resdto.GeolocationFailureResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			assert.Equal(t, tc.expectCause, res.Cause)
			assert.Equal(t, tc.expectState, res.Status)
			assert.NotEmpty(t, res.Message)
		})
	}

	t.Run("missing cause", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/geolocation/report", map[string]any{}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
