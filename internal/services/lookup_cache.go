package services

import (
	"barycentre-service/internal/platform/metrics"
	"barycentre-service/internal/platform/obs"
	"barycentre-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"
)

// outcome is the cached result of a lookup. Unresolved lookups are cached too
// (OK=false) so a failing input is not retried for the lifetime of the store.
// Canceled lookups are returned as unresolved but never cached.
type outcome[T any] struct {
	OK    bool `json:"ok"`
	Value T    `json:"value"`
}

// lookupCache memoizes a fallible lookup by key on top of a LookupStore.
// Concurrent misses for the same key share a single underlying call.
// Store errors are logged and treated as misses; they never fail a lookup.
type lookupCache[T any] struct {
	name  string
	store ports.LookupStore
	group singleflight.Group
}

func newLookupCache[T any](name string, store ports.LookupStore) *lookupCache[T] {
	return &lookupCache[T]{name: name, store: store}
}

func (c *lookupCache[T]) get(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) (T, error),
) (T, bool) {
	storeKey := c.name + ":" + key

	if o, ok := c.load(ctx, storeKey); ok {
		metrics.CacheHits.WithLabelValues(c.name).Inc()
		return o.Value, o.OK
	}
	metrics.CacheMisses.WithLabelValues(c.name).Inc()

	// The flight outlives any single caller: a waiter must not inherit another
	// caller's cancellation. Adapters bound each call with their own timeout.
	flightCtx := context.WithoutCancel(ctx)

	v, _, _ := c.group.Do(storeKey, func() (any, error) {
		// Another caller may have filled the key while we waited for the flight.
		if o, ok := c.load(flightCtx, storeKey); ok {
			return o, nil
		}

		value, err := fetch(flightCtx)
		o := outcome[T]{OK: err == nil, Value: value}
		if err != nil {
			var zero T
			o.Value = zero
			slog.WarnContext(ctx, "lookup unresolved",
				"req_id", obs.RequestID(ctx), "cache", c.name, "key", key, "err", err)

			// A cancellation is not an answer from the provider.
			if errors.Is(err, context.Canceled) {
				metrics.Lookups.WithLabelValues(c.name, "canceled").Inc()
				return o, nil
			}
			metrics.Lookups.WithLabelValues(c.name, "unresolved").Inc()
		} else {
			metrics.Lookups.WithLabelValues(c.name, "resolved").Inc()
		}

		c.save(flightCtx, storeKey, o)
		return o, nil
	})

	o := v.(outcome[T])
	return o.Value, o.OK
}

func (c *lookupCache[T]) load(ctx context.Context, key string) (outcome[T], bool) {
	b, ok, err := c.store.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "lookup cache read failed", "cache", c.name, "err", err)
		return outcome[T]{}, false
	}
	if !ok {
		return outcome[T]{}, false
	}

	var o outcome[T]
	if err := json.Unmarshal(b, &o); err != nil {
		slog.WarnContext(ctx, "lookup cache entry undecodable", "cache", c.name, "err", err)
		return outcome[T]{}, false
	}
	return o, true
}

func (c *lookupCache[T]) save(ctx context.Context, key string, o outcome[T]) {
	b, err := json.Marshal(o)
	if err != nil {
		slog.WarnContext(ctx, "lookup cache encode failed", "cache", c.name, "err", err)
		return
	}
	if err := c.store.Set(ctx, key, b); err != nil {
		slog.WarnContext(ctx, "lookup cache write failed", "cache", c.name, "err", err)
	}
}

// floatKey joins floats with their shortest exact representation, so distinct
// values always produce distinct keys and no rounding is applied.
func floatKey(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
