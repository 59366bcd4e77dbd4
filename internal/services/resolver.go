package services

import (
	"barycentre-service/internal/adapters/cache"
	"barycentre-service/internal/domain"
	"barycentre-service/internal/ports"
	"context"
	"errors"
	"fmt"
)

// AddressResolver turns the geocoding collaborators into total functions.
// Every lookup returns; failures (timeouts, unavailability, zero results,
// out-of-range coordinates) come back as ok=false. Outcomes are memoized per
// exact input for the lifetime of the store, failures included.
type AddressResolver struct {
	geocoder ports.Geocoder
	reverser ports.ReverseGeocoder
	forward  *lookupCache[domain.Coordinates]
	reverse  *lookupCache[string]
}

// NewAddressResolver wires the resolver. A nil store uses an unbounded in-memory store.
func NewAddressResolver(
	geocoder ports.Geocoder,
	reverser ports.ReverseGeocoder,
	store ports.LookupStore,
) *AddressResolver {
	if store == nil {
		store = cache.NewMemoryLookupStore(0)
	}
	return &AddressResolver{
		geocoder: geocoder,
		reverser: reverser,
		forward:  newLookupCache[domain.Coordinates]("geocode", store),
		reverse:  newLookupCache[string]("reverse", store),
	}
}

// Resolve geocodes address, keyed by the exact string.
func (r *AddressResolver) Resolve(ctx context.Context, address string) (domain.Coordinates, bool) {
	if address == "" {
		return domain.Coordinates{}, false
	}

	return r.forward.get(ctx, address, func(ctx context.Context) (domain.Coordinates, error) {
		if r.geocoder == nil {
			return domain.Coordinates{}, errors.New("no geocoder configured")
		}

		c, err := r.geocoder.Geocode(ctx, address)
		if err != nil {
			return domain.Coordinates{}, err
		}
		if !c.Valid() {
			return domain.Coordinates{}, fmt.Errorf("coordinates out of range: %v,%v", c.Lat, c.Lon)
		}
		return c, nil
	})
}

// ReverseResolve returns a display address for at, keyed by the exact (lat, lon) pair.
func (r *AddressResolver) ReverseResolve(ctx context.Context, at domain.Coordinates) (string, bool) {
	return r.reverse.get(ctx, floatKey(at.Lat, at.Lon), func(ctx context.Context) (string, error) {
		if r.reverser == nil {
			return "", errors.New("no reverse geocoder configured")
		}

		addr, err := r.reverser.ReverseGeocode(ctx, at)
		if err != nil {
			return "", err
		}
		if addr == "" {
			return "", errors.New("empty display address")
		}
		return addr, nil
	})
}
