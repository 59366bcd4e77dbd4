package api

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/api/handlers"
	"barycentre-service/internal/platform/metrics"
	"net/http"
	"time"
)

// Options carries the presentation settings the handlers need.
type Options struct {
	CacheBackend string
	Map          dto.MapDefaults
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(refresher handlers.Refresher, opts Options) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{CacheBackend: opts.CacheBackend, Started: time.Now()}
	baryHandler := &handlers.BarycentreHandler{Refresher: refresher, Map: opts.Map}
	friendsHandler := &handlers.FriendsHandler{}

	mux.Handle("/health", instrument("/health", healthHandler.Health))
	mux.Handle("/barycentre", instrument("/barycentre", baryHandler.Barycentre))
	mux.Handle("/friends", instrument("/friends", friendsHandler.Friends))
	mux.Handle("/metrics", metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
