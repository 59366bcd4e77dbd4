package services

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/obs"
	"context"
	"log/slog"
)

// Refresher is the composition root of one recomputation pass.
//
// A pass resolves every registry entry in order, partitions them into geocoded and
// failed, computes the barycentre over the geocoded ones and, when it exists,
// fetches route metrics from each geocoded entry to it. The pass is sequential and
// never aborts: per-entry failures are reported alongside the results.
type Refresher struct {
	resolver *AddressResolver
	engine   *BarycentreEngine
	routes   *RouteMetricsProvider
}

func NewRefresher(resolver *AddressResolver, routes *RouteMetricsProvider) *Refresher {
	return &Refresher{
		resolver: resolver,
		engine:   NewBarycentreEngine(resolver),
		routes:   routes,
	}
}

func (r *Refresher) Refresh(ctx context.Context, entries []domain.FriendEntry) domain.Refresh {
	defer obs.Time(ctx, "refresh")(nil)

	out := domain.Refresh{
		Geocoded: make([]domain.GeocodedEntry, 0, len(entries)),
		Failed:   []domain.FailedEntry{},
		Metrics:  []domain.RouteMetric{},
	}

	for i, e := range entries {
		coords, ok := r.resolver.Resolve(ctx, e.Address)
		if !ok {
			out.Failed = append(out.Failed, domain.FailedEntry{FriendEntry: e, Index: i})
			continue
		}
		out.Geocoded = append(out.Geocoded, domain.GeocodedEntry{FriendEntry: e, Index: i, Coords: coords})
	}

	out.Barycentre = r.engine.Compute(ctx, out.Geocoded)
	out.Bounds = ViewBounds(out.Geocoded, out.Barycentre)

	if out.Barycentre != nil {
		for _, g := range out.Geocoded {
			m := domain.RouteMetric{
				Entry:      g,
				StraightKm: StraightLineKm(g.Coords, out.Barycentre.Coords),
			}
			if r.routes != nil {
				if leg, ok := r.routes.Metrics(ctx, g.Coords, out.Barycentre.Coords); ok {
					m.Leg = &leg
				}
			}
			out.Metrics = append(out.Metrics, m)
		}
	}

	slog.InfoContext(ctx, "refresh complete",
		"req_id", obs.RequestID(ctx),
		"friends", len(entries),
		"geocoded", len(out.Geocoded),
		"failed", len(out.Failed),
		"barycentre", out.Barycentre != nil,
	)

	return out
}
