package main

import (
	"barycentre-service/internal/api"
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/app"
	"barycentre-service/internal/config"
	"barycentre-service/internal/platform/logging"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, OSRM, lookup store) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("wire services", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	router := api.NewRouter(a.Refresher, api.Options{
		CacheBackend: cfg.Cache.Backend,
		Map: dto.MapDefaults{
			Lat:  cfg.Map.DefaultLat,
			Lon:  cfg.Map.DefaultLon,
			Zoom: cfg.Map.DefaultZoom,
		},
	})

	// Write timeout covers a cold-cache refresh: one geocode per friend, one reverse
	// geocode and one route per friend, each bounded by its provider timeout.
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "err", err)
			a.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}
