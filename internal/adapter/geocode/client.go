package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// ErrNoMatch indicates the geocoder returned no results for a query.
var ErrNoMatch = errors.New("no geocoding match")

// Client exposes forward geocoding of free-text addresses.
type Client interface {
	Search(ctx context.Context, query string) (*model.GeoPoint, error)
}

// HTTPClient implements Client against a Nominatim-compatible HTTP API.
type HTTPClient struct {
	baseURL     *url.URL
	countryCode string
	httpClient  *http.Client
	logger      *slog.Logger
}

// response mirrors one entry of the geocoder's JSON result list.
// Coordinates arrive as decimal strings.
type response struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewHTTPClient creates an HTTP geocoding client with a default timeout.
func NewHTTPClient(baseURL, countryCode string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geocoder url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("geocoder url must be absolute")
	}
	return &HTTPClient{
		baseURL:     parsed,
		countryCode: countryCode,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Search resolves a free-text address to coordinates, taking the first match.
func (c *HTTPClient) Search(ctx context.Context, query string) (*model.GeoPoint, error) {
	endpoint := *c.baseURL
	endpoint.Path = "/search"

	values := url.Values{}
	values.Set("q", query)
	values.Set("format", "json")
	values.Set("limit", "1")
	if c.countryCode != "" {
		values.Set("countrycodes", c.countryCode)
	}
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "shopmart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocode request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("geocode error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []response
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}

	return &model.GeoPoint{Lat: lat, Lon: lon}, nil
}
