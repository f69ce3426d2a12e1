// Package geocode provides a reverse-geocoding client backed by the public
// Nominatim (OpenStreetMap) API. It exists for the get_address tool, which
// turns venue coordinates from a schedule into a street address.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const (
	userAgent = "scorebridge/1.0"
	timeout   = 15 * time.Second
)

// Client is a Nominatim reverse-geocoding client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given Nominatim instance (empty
// means DefaultBaseURL).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// reverseResponse is the subset of the Nominatim reverse response we read.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// ReverseGeocode resolves coordinates to a human-readable address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"lat":    {fmt.Sprintf("%f", lat)},
		"lon":    {fmt.Sprintf("%f", lon)},
		"format": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode failed with status %d: %s", resp.StatusCode, body)
	}

	var result reverseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("reverse geocode failed: %s", result.Error)
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("no address found for %f, %f", lat, lon)
	}
	return result.DisplayName, nil
}
