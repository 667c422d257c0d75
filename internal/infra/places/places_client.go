// Package places looks up nearby points of interest through the Google Places API (New).
package places

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"petcare/config"
	"petcare/internal/domain/entity"
	"petcare/internal/domain/service"
	"petcare/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	DefaultBaseURL      = "https://places.googleapis.com/v1"
	DefaultRadiusMeters = 5000.0
	DefaultLanguage     = "es"
	// MaxResultCount is the upper bound accepted by searchNearby.
	MaxResultCount = 20

	fieldMask = "places.displayName,places.formattedAddress,places.rating,places.location"
)

type searchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LanguageCode        string              `json:"languageCode,omitempty"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchNearbyResponse struct {
	Places []struct {
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string  `json:"formattedAddress"`
		Rating           float64 `json:"rating"`
		Location         latLng  `json:"location"`
	} `json:"places"`
}

// placesClient implements service.PlacesService over HTTP.
type placesClient struct {
	apiKey     string
	baseURL    string
	radius     float64
	maxResults int
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPlacesClient creates a places lookup client. Missing settings fall back to
// the package defaults.
func NewPlacesClient(cfg *config.PlacesConfig, logger *slog.Logger) (service.PlacesService, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("places api key is required")
	}

	return newPlacesClient(cfg, &http.Client{Timeout: 15 * time.Second}, logger), nil
}

func newPlacesClient(cfg *config.PlacesConfig, httpClient *http.Client, logger *slog.Logger) *placesClient {
	c := &placesClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		radius:     cfg.RadiusMeters,
		maxResults: cfg.MaxResults,
		language:   cfg.Language,
		httpClient: httpClient,
		logger:     logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.radius <= 0 {
		c.radius = DefaultRadiusMeters
	}
	if c.maxResults <= 0 || c.maxResults > MaxResultCount {
		c.maxResults = MaxResultCount
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}

	return c
}

// Nearby searches places of category within the configured radius and orders
// them by straight-line distance from (lat, lng).
func (c *placesClient) Nearby(ctx context.Context, lat, lng float64, category entity.PlaceCategory) ([]entity.Place, error) {
	reqBody := searchNearbyRequest{
		IncludedTypes:  []string{string(category)},
		MaxResultCount: c.maxResults,
		LanguageCode:   c.language,
		LocationRestriction: locationRestriction{Circle: circle{
			Center: latLng{Latitude: lat, Longitude: lng},
			Radius: c.radius,
		}},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/places:searchNearby", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("places search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out searchNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode places response")
	}

	origin := orb.Point{lng, lat}
	places := make([]entity.Place, 0, len(out.Places))
	for _, p := range out.Places {
		places = append(places, entity.Place{
			Name:           p.DisplayName.Text,
			Address:        p.FormattedAddress,
			Rating:         p.Rating,
			Latitude:       p.Location.Latitude,
			Longitude:      p.Location.Longitude,
			DistanceMeters: geo.DistanceHaversine(origin, orb.Point{p.Location.Longitude, p.Location.Latitude}),
		})
	}
	slices.SortStableFunc(places, func(a, b entity.Place) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	c.logger.Debug("Nearby places found",
		slog.String("category", string(category)),
		slog.Int("count", len(places)),
	)

	return places, nil
}
