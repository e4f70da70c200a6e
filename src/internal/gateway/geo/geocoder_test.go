package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"kerjabantu-service/src/internal/gateway/geo"
)

func newGeocoder(t *testing.T, body string) (*geo.GoogleGeocoder, func() url.Values) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = r.URL.Query()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return geo.NewGoogleGeocoder(client, "id"), func() url.Values {
		mu.Lock()
		defer mu.Unlock()
		return seen
	}
}

func TestGoogleGeocoder_FirstResult(t *testing.T) {
	g, query := newGeocoder(t, `{
		"status": "OK",
		"results": [
			{"formatted_address": "Menteng, Central Jakarta", "geometry": {"location": {"lat": -6.1944, "lng": 106.8229}}},
			{"formatted_address": "Elsewhere", "geometry": {"location": {"lat": 1, "lng": 2}}}
		]
	}`)

	loc, err := g.Geocode(context.Background(), "Menteng, Jakarta Pusat")
	require.NoError(t, err)
	assert.InDelta(t, -6.1944, loc.Lat, 1e-9)
	assert.InDelta(t, 106.8229, loc.Lng, 1e-9)
	assert.Equal(t, "Menteng, Jakarta Pusat", loc.Address)

	assert.Equal(t, "Menteng, Jakarta Pusat", query().Get("address"))
	assert.Equal(t, "id", query().Get("region"))
}

func TestGoogleGeocoder_ZeroResults(t *testing.T) {
	g, _ := newGeocoder(t, `{"status": "OK", "results": []}`)

	_, err := g.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, geo.ErrNoResult)
}

func TestGoogleGeocoder_APIError(t *testing.T) {
	g, _ := newGeocoder(t, `{"status": "REQUEST_DENIED", "error_message": "bad key", "results": []}`)

	_, err := g.Geocode(context.Background(), "Depok")
	assert.ErrorContains(t, err, "geo: geocode")
}
