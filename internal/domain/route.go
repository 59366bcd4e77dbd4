package domain

import "fmt"

// A routed distance/duration in display units: kilometres to one decimal, whole minutes.
type RouteLeg struct {
	DistanceKm  float64
	DurationMin int
}

// Travel metrics from one geocoded entry to the barycentre.
// Leg is nil when the routing lookup failed. StraightKm is the great-circle distance and is
// always set.
type RouteMetric struct {
	Entry      GeocodedEntry
	Leg        *RouteLeg
	StraightKm float64
}

// A registry entry whose address could not be geocoded.
type FailedEntry struct {
	FriendEntry
	Index int
}

// Refresh is the output of a single recomputation pass over the registry.
// It is owned by that pass and never persisted.
type Refresh struct {
	Geocoded   []GeocodedEntry
	Failed     []FailedEntry
	Barycentre *Barycentre
	Metrics    []RouteMetric
	Bounds     *Bounds
}

// Warning is the user-facing message for an address that could not be found.
func (f FailedEntry) Warning() string {
	return fmt.Sprintf(
		"Could not find address for %s: '%s'. Please check the spelling and try again.",
		f.Name, f.Address,
	)
}
