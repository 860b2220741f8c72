package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

// ErrNotFound means the geocoder returned no result for the query.
var ErrNotFound = errors.New("address not found")

const userAgent = "get2wurk-api/1.0 (commute recommendations)"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Client resolves free-form addresses to coordinates via Nominatim.
type Client struct {
	searchURL string
	client    HTTPClient
	logger    zerolog.Logger
}

func NewClient(searchURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{searchURL: searchURL, client: httpClient, logger: logger}
}

func (c *Client) Geocode(ctx context.Context, query string) (models.LatLon, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.LatLon{}, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return models.LatLon{}, fmt.Errorf("nominatim request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return models.LatLon{}, fmt.Errorf("nominatim error: status %s", resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.LatLon{}, err
	}
	if len(results) == 0 {
		return models.LatLon{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.LatLon{}, fmt.Errorf("nominatim lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.LatLon{}, fmt.Errorf("nominatim lon %q: %w", results[0].Lon, err)
	}

	c.logger.Info().
		Ctx(ctx).
		Str("query", query).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("geocoded address")
	return models.LatLon{Lat: lat, Lon: lon}, nil
}
