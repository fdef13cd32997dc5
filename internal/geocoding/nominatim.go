package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sirupsen/logrus"
)

// Resolver turns a free-text place description into coordinates. The boolean
// is false when the place could not be resolved; resolution failures are
// never errors, callers fall back to a neutral location.
type Resolver interface {
	Resolve(ctx context.Context, place string) (geo.Coordinates, bool)
}

// Client is a Nominatim-style forward-geocoding client. The configured region
// is appended to every query so lookups stay anchored to the metropolitan
// area the service covers.
type Client struct {
	baseURL    string
	region     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a geocoding client with a bounded request timeout.
func NewClient(baseURL, region string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		region:  region,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// nominatim search result row; lat/lon arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve performs a single lookup requesting at most one match. Network
// failures, timeouts and malformed responses are swallowed and reported as
// unresolved.
func (c *Client) Resolve(ctx context.Context, place string) (geo.Coordinates, bool) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocoding",
		"place":     place,
	})

	query := place
	if c.region != "" {
		query = place + ", " + c.region
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.WithError(err).Warn("Failed to build geocoding request")
		return geo.Coordinates{}, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Geocoding request failed")
		return geo.Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Geocoding service returned non-OK status")
		return geo.Coordinates{}, false
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.WithError(err).Warn("Failed to decode geocoding response")
		return geo.Coordinates{}, false
	}
	if len(results) == 0 {
		log.Debug("Geocoding returned no results")
		return geo.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		log.WithError(err).Warn("Geocoding returned unparseable latitude")
		return geo.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		log.WithError(err).Warn("Geocoding returned unparseable longitude")
		return geo.Coordinates{}, false
	}

	return geo.Coordinates{Latitude: lat, Longitude: lon}, true
}
