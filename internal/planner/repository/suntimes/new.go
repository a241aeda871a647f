package suntimes

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgSuntimes "muhurat-planner/pkg/suntimes"
	"muhurat-planner/pkg/log"
)

// Defaults for the provider cache. Entries are reused for up to 30 days;
// sun times for a fixed date and place do not change.
const (
	DefaultCacheCapacity = 4096
	DefaultCacheTTL      = 30 * 24 * time.Hour
)

// Provider is the upstream sun-times source.
type Provider interface {
	Fetch(ctx context.Context, lat, lon float64, dateISO, timezone string) (pkgSuntimes.Times, error)
}

// implRepository is the cached, provider-backed repository implementation.
type implRepository struct {
	provider Provider
	cache    *expirable.LRU[string, pkgSuntimes.Times]
	l        log.Logger
}

// New creates a sun-times repository with a TTL cache in front of the
// provider. capacity <= 0 and ttl <= 0 fall back to the defaults.
func New(provider Provider, l log.Logger, capacity int, ttl time.Duration) *implRepository {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &implRepository{
		provider: provider,
		cache:    expirable.NewLRU[string, pkgSuntimes.Times](capacity, nil, ttl),
		l:        l,
	}
}
