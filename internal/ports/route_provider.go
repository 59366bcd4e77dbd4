package ports

import (
	"barycentre-service/internal/domain"
	"context"
)

// StatusOK is the routing status code that marks a usable response.
const StatusOK = "Ok"

// A single route alternative in provider units.
type RouteCandidate struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Raw routing answer. Callers must check Code == StatusOK and a non-empty Routes list.
type RouteResponse struct {
	Code   string
	Routes []RouteCandidate
}

// Contract for a driving route query between two points.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination domain.Coordinates) (RouteResponse, error)
}
