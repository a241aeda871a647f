package suntimes

import (
	"errors"
	"time"
)

// Times holds the three instants that bound a civil day's segments.
type Times struct {
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time
}

// ErrUnavailable marks dates/locations with no sunrise or sunset (polar day
// or polar night). Callers should offer manual time entry instead of failing.
var ErrUnavailable = errors.New("sun times unavailable for this date and location")

// fetchResponse is the provider's success payload.
type fetchResponse struct {
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
	NextSunrise time.Time `json:"nextSunrise"`
}

// errorResponse is the provider's 422 payload.
type errorResponse struct {
	Error string `json:"error"`
}
