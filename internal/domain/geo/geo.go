package geo

import (
	"errors"
	"strconv"
	"strings"
)

var ErrOutsideServiceArea = errors.New("location is outside the service area")

type Cause string

const (
	CausePermissionDenied    Cause = "permission_denied"
	CausePositionUnavailable Cause = "position_unavailable"
	CauseTimeout             Cause = "timeout"
	CauseUnsupported         Cause = "unsupported"
	CauseOutsideServiceArea  Cause = "outside_service_area"
	CauseUnknown             Cause = "unknown"
)

// Status is what the location step should show after a failure.
type Status string

const (
	StatusDenied Status = "denied"
	StatusIdle   Status = "idle"
)

// ParseCause accepts a cause name or a browser geolocation error code (1-3).
func ParseCause(s string) Cause {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, err := strconv.Atoi(s); err == nil {
		switch code {
		case 1:
			return CausePermissionDenied
		case 2:
			return CausePositionUnavailable
		case 3:
			return CauseTimeout
		default:
			return CauseUnknown
		}
	}
	switch c := Cause(s); c {
	case CausePermissionDenied, CausePositionUnavailable, CauseTimeout, CauseUnsupported, CauseOutsideServiceArea:
		return c
	default:
		return CauseUnknown
	}
}

type Failure struct {
	Cause   Cause
	Message string
	Status  Status
}

const messagePrefix = "Unable to get your location. "

func Describe(cause Cause) Failure {
	switch cause {
	case CausePermissionDenied:
		return Failure{Cause: cause, Message: messagePrefix + "Please allow location access and try again.", Status: StatusDenied}
	case CausePositionUnavailable:
		return Failure{Cause: cause, Message: messagePrefix + "Location information is unavailable.", Status: StatusDenied}
	case CauseTimeout:
		return Failure{Cause: cause, Message: messagePrefix + "Location request timed out. Please try again.", Status: StatusIdle}
	case CauseUnsupported:
		return Failure{Cause: cause, Message: "Geolocation is not supported by this browser.", Status: StatusDenied}
	case CauseOutsideServiceArea:
		return Failure{Cause: cause, Message: "This service is currently only available in Morocco.", Status: StatusDenied}
	default:
		return Failure{Cause: CauseUnknown, Message: messagePrefix + "An unknown error occurred.", Status: StatusIdle}
	}
}

// Service area bounding box (Morocco).
const (
	MinLat = 21.4207
	MaxLat = 35.9224
	MinLng = -17.0204
	MaxLng = 1.2676
)

func InServiceArea(lat, lng float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= MinLng && lng <= MaxLng
}

// CheckServiceArea treats the zero coordinate as "not provided".
func CheckServiceArea(lat, lng float64) error {
	if lat == 0 && lng == 0 {
		return nil
	}
	if !InServiceArea(lat, lng) {
		return ErrOutsideServiceArea
	}
	return nil
}
