package domain

import (
	"math"
	"strconv"
	"strings"
)

// Fallback observer used when geolocation is unavailable or denied
const (
	DefaultObserverLat = 20.5937
	DefaultObserverLng = 78.9629
)

// Observer is a ground location
type Observer struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultObserver returns the fallback observer location
func DefaultObserver() Observer {
	return Observer{Lat: DefaultObserverLat, Lng: DefaultObserverLng}
}

// ParseObserver builds an observer from query values. An absent value takes the
// default coordinate; a malformed or out-of-range one is a validation error.
func ParseObserver(rawLat, rawLng string) (Observer, error) {
	obs := DefaultObserver()

	if v := strings.TrimSpace(rawLat); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
			return Observer{}, NewValidationError("Invalid observer coordinates", "lat must be a number in [-90, 90]")
		}
		obs.Lat = lat
	}
	if v := strings.TrimSpace(rawLng); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
			return Observer{}, NewValidationError("Invalid observer coordinates", "lng must be a number in [-180, 180]")
		}
		obs.Lng = lng
	}

	return obs, nil
}

// Reasons a page fell back to the default observer
const (
	LocationDenied      = "denied"
	LocationUnsupported = "unsupported"
	LocationInvalid     = "invalid"
)

// LocationWarning returns the non-fatal warning for a geolocation outcome, or
// nil when the browser supplied a position.
func LocationWarning(reason string) *Error {
	switch reason {
	case LocationDenied:
		return NewLocationError("Location access denied or unavailable")
	case LocationUnsupported:
		return NewLocationError("Geolocation not supported by this browser")
	case LocationInvalid:
		return NewLocationError("Invalid observer coordinates")
	default:
		return nil
	}
}
