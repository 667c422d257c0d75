package places

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare/config"
	"petcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, cfg config.PlacesConfig, handler http.HandlerFunc) *placesClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newPlacesClient(&cfg, srv.Client(), logger)
}

func TestPlacesClient_Nearby(t *testing.T) {
	var got searchNearbyRequest
	client := newTestClient(t, config.PlacesConfig{APIKey: "key-1", RadiusMeters: 2000}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchNearby", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, fieldMask, r.Header.Get("X-Goog-FieldMask"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"places":[
			{"displayName":{"text":"Clínica Lejana"},"formattedAddress":"Av. Lejos 100","rating":4.1,"location":{"latitude":-33.46,"longitude":-70.66}},
			{"displayName":{"text":"Clínica Cercana"},"formattedAddress":"Calle Cerca 1","rating":4.8,"location":{"latitude":-33.4501,"longitude":-70.6501}}
		]}`)
	})

	places, err := client.Nearby(context.Background(), -33.45, -70.65, entity.PlaceVeterinary)

	require.NoError(t, err)
	assert.Equal(t, []string{"veterinary_care"}, got.IncludedTypes)
	assert.Equal(t, MaxResultCount, got.MaxResultCount)
	assert.Equal(t, DefaultLanguage, got.LanguageCode)
	assert.InDelta(t, 2000, got.LocationRestriction.Circle.Radius, 0.001)
	assert.InDelta(t, -33.45, got.LocationRestriction.Circle.Center.Latitude, 1e-9)

	require.Len(t, places, 2)
	assert.Equal(t, "Clínica Cercana", places[0].Name)
	assert.Equal(t, "Calle Cerca 1", places[0].Address)
	assert.InDelta(t, 4.8, places[0].Rating, 1e-9)
	assert.Equal(t, "Clínica Lejana", places[1].Name)
	assert.Less(t, places[0].DistanceMeters, places[1].DistanceMeters)
	// ~14 m and ~1.45 km from the origin.
	assert.InDelta(t, 14, places[0].DistanceMeters, 2)
	assert.InDelta(t, 1450, places[1].DistanceMeters, 30)
}

func TestPlacesClient_NearbyEmpty(t *testing.T) {
	client := newTestClient(t, config.PlacesConfig{APIKey: "key-1"}, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	places, err := client.Nearby(context.Background(), 0, 0, entity.PlacePark)

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlacesClient_NearbyUpstreamError(t *testing.T) {
	client := newTestClient(t, config.PlacesConfig{APIKey: "key-1"}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"status":"PERMISSION_DENIED"}}`)
	})

	_, err := client.Nearby(context.Background(), 0, 0, entity.PlacePetStore)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNewPlacesClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewPlacesClient(&config.PlacesConfig{}, logger)
	assert.Error(t, err)

	c := newPlacesClient(&config.PlacesConfig{APIKey: "k", MaxResults: 50}, http.DefaultClient, logger)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, MaxResultCount, c.maxResults)
	assert.InDelta(t, DefaultRadiusMeters, c.radius, 0.001)
}
