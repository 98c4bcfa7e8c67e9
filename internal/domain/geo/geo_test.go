//go:build unit

package geo_test

import (
	"testing"

	"homeservice-booking/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestParseCause(t *testing.T) {
	cases := map[string]geo.Cause{
		"1":                    geo.CausePermissionDenied,
		"2":                    geo.CausePositionUnavailable,
		"3":                    geo.CauseTimeout,
		"7":                    geo.CauseUnknown,
		"unsupported":          geo.CauseUnsupported,
		" TIMEOUT ":            geo.CauseTimeout,
		"outside_service_area": geo.CauseOutsideServiceArea,
		"gps broke":            geo.CauseUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, geo.ParseCause(in), in)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		cause   geo.Cause
		status  geo.Status
		message string
	}{
		{geo.CausePermissionDenied, geo.StatusDenied, "Unable to get your location. Please allow location access and try again."},
		{geo.CausePositionUnavailable, geo.StatusDenied, "Unable to get your location. Location information is unavailable."},
		{geo.CauseTimeout, geo.StatusIdle, "Unable to get your location. Location request timed out. Please try again."},
		{geo.CauseUnsupported, geo.StatusDenied, "Geolocation is not supported by this browser."},
		{geo.CauseOutsideServiceArea, geo.StatusDenied, "This service is currently only available in Morocco."},
		{geo.Cause("other"), geo.StatusIdle, "Unable to get your location. An unknown error occurred."},
	}
	for _, tc := range cases {
		t.Run(string(tc.cause), func(t *testing.T) {
			f := geo.Describe(tc.cause)
			assert.Equal(t, tc.status, f.Status)
			assert.Equal(t, tc.message, f.Message)
		})
	}
}

func TestServiceArea(t *testing.T) {
	assert.True(t, geo.InServiceArea(33.5731, -7.5898), "Casablanca")
	assert.True(t, geo.InServiceArea(geo.MinLat, geo.MaxLng), "edge")
	assert.False(t, geo.InServiceArea(48.8566, 2.3522), "Paris")
	assert.False(t, geo.InServiceArea(30, 2), "east of box")

	assert.NoError(t, geo.CheckServiceArea(0, 0))
	assert.ErrorIs(t, geo.CheckServiceArea(48.8566, 2.3522), geo.ErrOutsideServiceArea)
}
