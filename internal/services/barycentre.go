package services

import (
	"barycentre-service/internal/domain"
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// MinBarycentreEntries is the smallest number of geocoded entries that defines a meeting point.
const MinBarycentreEntries = 2

// addressReverser is the slice of AddressResolver the engine depends on.
type addressReverser interface {
	ReverseResolve(ctx context.Context, at domain.Coordinates) (string, bool)
}

// BarycentreEngine computes the meeting point of a set of geocoded entries.
//
// The point is the plain arithmetic mean of latitudes and longitudes: no weighting
// and no geodesic correction. That flat-plane approximation is fine at city scale and
// degrades over long spans or across the antimeridian.
type BarycentreEngine struct {
	reverser addressReverser
}

func NewBarycentreEngine(reverser addressReverser) *BarycentreEngine {
	return &BarycentreEngine{reverser: reverser}
}

// Compute returns nil for fewer than MinBarycentreEntries entries. Otherwise it returns
// the mean coordinate and attempts to reverse geocode it; a missing address is tolerated.
// Callers must exclude unresolved entries beforehand.
func (e *BarycentreEngine) Compute(ctx context.Context, entries []domain.GeocodedEntry) *domain.Barycentre {
	if len(entries) < MinBarycentreEntries {
		return nil
	}

	mp := make(orb.MultiPoint, 0, len(entries))
	for _, en := range entries {
		mp = append(mp, en.Coords.Point())
	}

	// The centroid of a MultiPoint is the mean of its points.
	centroid, _ := planar.CentroidArea(mp)

	b := &domain.Barycentre{Coords: domain.CoordinatesFromPoint(centroid)}
	if e.reverser != nil {
		if addr, ok := e.reverser.ReverseResolve(ctx, b.Coords); ok {
			b.Address = addr
		}
	}

	return b
}

// ViewBounds returns the box covering every entry and, when present, the barycentre.
// It returns nil when there is nothing to show.
func ViewBounds(entries []domain.GeocodedEntry, b *domain.Barycentre) *domain.Bounds {
	mp := make(orb.MultiPoint, 0, len(entries)+1)
	for _, en := range entries {
		mp = append(mp, en.Coords.Point())
	}
	if b != nil {
		mp = append(mp, b.Coords.Point())
	}
	if len(mp) == 0 {
		return nil
	}

	bound := mp.Bound()
	return &domain.Bounds{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	}
}

// StraightLineKm is the great-circle distance between a and b in km, to one decimal.
func StraightLineKm(a, b domain.Coordinates) float64 {
	return roundTo(geo.DistanceHaversine(a.Point(), b.Point())/1000, 1)
}
