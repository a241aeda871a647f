package suntimes

import (
	"context"
	"fmt"

	pkgSuntimes "muhurat-planner/pkg/suntimes"
)

// SunTimes implements repository.Repository: read-through against the
// provider, memoized per (lat, lon, date, timezone).
func (r *implRepository) SunTimes(ctx context.Context, lat, lon float64, dateISO, timezone string) (pkgSuntimes.Times, error) {
	key := cacheKey(lat, lon, dateISO, timezone)

	if times, ok := r.cache.Get(key); ok {
		return times, nil
	}

	times, err := r.provider.Fetch(ctx, lat, lon, dateISO, timezone)
	if err != nil {
		// Failures are never cached; a transient outage should not poison
		// a key for 30 days.
		return pkgSuntimes.Times{}, err
	}

	r.cache.Add(key, times)
	r.l.Debugf(ctx, "sun times cached for %s", key)
	return times, nil
}

// cacheKey fixes the coordinates to 4 decimals (~11 m) so jittery client
// locations still share entries.
func cacheKey(lat, lon float64, dateISO, timezone string) string {
	return fmt.Sprintf("%.4f,%.4f,%s,%s", lat, lon, dateISO, timezone)
}
