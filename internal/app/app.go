package app

import (
	"barycentre-service/internal/adapters/cache"
	"barycentre-service/internal/adapters/geocode"
	"barycentre-service/internal/adapters/ors"
	"barycentre-service/internal/adapters/routing"
	"barycentre-service/internal/config"
	"barycentre-service/internal/ports"
	"barycentre-service/internal/services"
	"context"
	"fmt"
	"log/slog"
)

// App is the wired service graph shared by the HTTP server and the CLI.
type App struct {
	Refresher *services.Refresher
	Resolver  *services.AddressResolver
	Routes    *services.RouteMetricsProvider

	closeStore func()
}

// New wires the concrete adapters (geocoder, router, the configured lookup store)
// behind the service ports. Call Close when done.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, closeStore, err := cache.Open(ctx, cache.Options{
		Backend:     cfg.Cache.Backend,
		RedisAddr:   cfg.Cache.RedisAddr,
		ValkeyAddr:  cfg.Cache.ValkeyAddr,
		DatabaseURL: cfg.Cache.DatabaseURL,
		Prefix:      cfg.Cache.Prefix,
		MaxEntries:  cfg.Cache.MaxEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	geocoder, reverser, router, err := providers(cfg)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("app: %w", err)
	}

	resolver := services.NewAddressResolver(geocoder, reverser, store)
	routes := services.NewRouteMetricsProvider(router, store)

	slog.InfoContext(ctx, "services wired",
		"cache", cfg.Cache.Backend,
		"geocoder", providerName(cfg.Geocoder.Provider, config.ProviderNominatim),
		"routing", providerName(cfg.Routing.Provider, config.ProviderOSRM),
	)

	return &App{
		Refresher:  services.NewRefresher(resolver, routes),
		Resolver:   resolver,
		Routes:     routes,
		closeStore: closeStore,
	}, nil
}

// providers builds the geocoding and routing adapters selected by cfg.
// An empty provider name means the OpenStreetMap default.
func providers(cfg *config.Config) (ports.Geocoder, ports.ReverseGeocoder, ports.RouteProvider, error) {
	var orsClient *ors.Client
	if cfg.UsesORS() {
		c, err := ors.NewClient(ors.Config{
			APIKey:         cfg.ORS.APIKey,
			BaseURL:        cfg.ORS.BaseURL,
			Profile:        cfg.ORS.Profile,
			GeocodeTimeout: cfg.Geocoder.Timeout(),
			RouteTimeout:   cfg.Routing.Timeout(),
		})
		if err != nil {
			return nil, nil, nil, err
		}
		orsClient = c
	}

	var geocoder ports.Geocoder
	var reverser ports.ReverseGeocoder
	switch providerName(cfg.Geocoder.Provider, config.ProviderNominatim) {
	case config.ProviderORS:
		geocoder, reverser = orsClient, orsClient
	case config.ProviderNominatim:
		n, err := geocode.NewNominatimGeocoder(geocode.NominatimConfig{
			BaseURL:   cfg.Geocoder.BaseURL,
			UserAgent: cfg.Geocoder.UserAgent,
			Timeout:   cfg.Geocoder.Timeout(),
		})
		if err != nil {
			return nil, nil, nil, err
		}
		geocoder, reverser = n, n
	default:
		return nil, nil, nil, fmt.Errorf("unknown geocoder provider %q", cfg.Geocoder.Provider)
	}

	var router ports.RouteProvider
	switch providerName(cfg.Routing.Provider, config.ProviderOSRM) {
	case config.ProviderORS:
		router = orsClient
	case config.ProviderOSRM:
		router = routing.NewOSRMRouter(routing.OSRMConfig{
			BaseURL:   cfg.Routing.BaseURL,
			Profile:   cfg.Routing.Profile,
			UserAgent: cfg.Geocoder.UserAgent,
			Timeout:   cfg.Routing.Timeout(),
		})
	default:
		return nil, nil, nil, fmt.Errorf("unknown routing provider %q", cfg.Routing.Provider)
	}

	return geocoder, reverser, router, nil
}

func providerName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func (a *App) Close() {
	if a.closeStore != nil {
		a.closeStore()
	}
}
