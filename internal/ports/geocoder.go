package ports

import (
	"barycentre-service/internal/domain"
	"context"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the best candidate's coordinates. Zero results is reported as an error.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Contract for resolving coordinates to a human-readable display address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, at domain.Coordinates) (string, error)
}
