package repository

import (
	"context"

	"muhurat-planner/pkg/suntimes"
)

//go:generate mockery --name Repository
type Repository interface {
	// SunTimes returns the sunrise/sunset/next-sunrise instants for the
	// given coordinates, civil date and timezone. Results are memoized per
	// (lat, lon, date, timezone); suntimes.ErrUnavailable passes through
	// untouched and is never cached.
	SunTimes(ctx context.Context, lat, lon float64, dateISO, timezone string) (suntimes.Times, error)
}
