package routing

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/ports"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOSRMRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/route/v1/driving/2.3522,48.8566;2.5,48.5"
		if r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		if r.URL.Query().Get("overview") != "false" {
			t.Errorf("expected overview=false")
		}
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":5000,"duration":600},{"distance":7000,"duration":900}]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(OSRMConfig{BaseURL: srv.URL, Timeout: time.Second})

	got, err := router.Route(
		context.Background(),
		domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		domain.Coordinates{Lat: 48.5, Lon: 2.5},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Code != ports.StatusOK {
		t.Fatalf("code = %q, want Ok", got.Code)
	}
	if len(got.Routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(got.Routes))
	}
	if got.Routes[0].DistanceMeters != 5000 || got.Routes[0].DurationSeconds != 600 {
		t.Fatalf("first route = %+v", got.Routes[0])
	}
}

func TestOSRMRoutePassesThroughStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoSegment","routes":[]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(OSRMConfig{BaseURL: srv.URL, Profile: "driving", Timeout: time.Second})

	got, err := router.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != "NoSegment" || len(got.Routes) != 0 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestOSRMRouteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(OSRMConfig{BaseURL: srv.URL, Timeout: time.Second})

	if _, err := router.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{}); err == nil {
		t.Fatalf("expected decode error")
	}
}
