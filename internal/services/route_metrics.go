package services

import (
	"barycentre-service/internal/adapters/cache"
	"barycentre-service/internal/domain"
	"barycentre-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrRouteStatus marks a provider response whose status code is not "Ok".
	ErrRouteStatus = errors.New("route: provider status not ok")
	// ErrNoRoute marks an "Ok" response without any route.
	ErrNoRoute = errors.New("route: empty route list")
)

// RouteMetricsProvider fetches driving distance/duration between two points.
// Like AddressResolver it never fails: any problem yields ok=false. Outcomes are
// memoized by the exact (origin, destination) 4-tuple.
type RouteMetricsProvider struct {
	router ports.RouteProvider
	cache  *lookupCache[domain.RouteLeg]
}

// NewRouteMetricsProvider wires the provider. A nil store uses an unbounded in-memory store.
func NewRouteMetricsProvider(router ports.RouteProvider, store ports.LookupStore) *RouteMetricsProvider {
	if store == nil {
		store = cache.NewMemoryLookupStore(0)
	}
	return &RouteMetricsProvider{
		router: router,
		cache:  newLookupCache[domain.RouteLeg]("route", store),
	}
}

// Metrics returns the first route's distance in km (one decimal) and duration in
// whole minutes, converted from the provider's metres and seconds.
func (p *RouteMetricsProvider) Metrics(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (domain.RouteLeg, bool) {
	key := floatKey(origin.Lat, origin.Lon, destination.Lat, destination.Lon)

	return p.cache.get(ctx, key, func(ctx context.Context) (domain.RouteLeg, error) {
		if p.router == nil {
			return domain.RouteLeg{}, errors.New("no route provider configured")
		}

		resp, err := p.router.Route(ctx, origin, destination)
		if err != nil {
			return domain.RouteLeg{}, err
		}

		return legFromResponse(resp)
	})
}

func legFromResponse(resp ports.RouteResponse) (domain.RouteLeg, error) {
	if resp.Code != ports.StatusOK {
		return domain.RouteLeg{}, fmt.Errorf("%w: %q", ErrRouteStatus, resp.Code)
	}
	if len(resp.Routes) == 0 {
		return domain.RouteLeg{}, ErrNoRoute
	}

	r := resp.Routes[0]
	if !finiteNonNegative(r.DistanceMeters) || !finiteNonNegative(r.DurationSeconds) {
		return domain.RouteLeg{}, fmt.Errorf(
			"route: malformed metrics distance=%v duration=%v",
			r.DistanceMeters, r.DurationSeconds,
		)
	}

	return domain.RouteLeg{
		DistanceKm:  roundTo(r.DistanceMeters/1000, 1),
		DurationMin: int(math.Round(r.DurationSeconds / 60)),
	}, nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
