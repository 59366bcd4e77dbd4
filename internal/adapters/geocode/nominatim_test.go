package geocode

import (
	"barycentre-service/internal/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, h http.HandlerFunc) *NominatimGeocoder {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := NewNominatimGeocoder(NominatimConfig{
		BaseURL:   srv.URL,
		UserAgent: "barycentre-test",
		Timeout:   2 * time.Second,
	})
	require.NoError(t, err)
	return g
}

func TestNominatimGeocode(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "barycentre-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, France"}]`))
	})

	c, err := g.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 48.8566, Lon: 2.3522}, c)
}

func TestNominatimGeocodeNoResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := g.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoResults))
}

func TestNominatimGeocodeMalformed(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"north","lon":"2.0"}]`))
	})

	_, err := g.Geocode(context.Background(), "Paris")
	require.Error(t, err)
}

func TestNominatimReverse(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "48.5", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.5", r.URL.Query().Get("lon"))
		w.Write([]byte(`{"display_name":"Étampes, Essonne, France"}`))
	})

	addr, err := g.ReverseGeocode(context.Background(), domain.Coordinates{Lat: 48.5, Lon: 2.5})
	require.NoError(t, err)
	assert.Equal(t, "Étampes, Essonne, France", addr)
}

func TestNominatimReverseErrorField(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	_, err := g.ReverseGeocode(context.Background(), domain.Coordinates{Lat: 0, Lon: -160})
	assert.True(t, errors.Is(err, ErrNoResults))
}

func TestNewNominatimGeocoderRequiresUserAgent(t *testing.T) {
	_, err := NewNominatimGeocoder(NominatimConfig{})
	require.Error(t, err)
}
