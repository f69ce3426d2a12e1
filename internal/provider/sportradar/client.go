// Package sportradar provides the HTTP client for the Sportradar API.
//
// The client owns the mutable endpoint settings (format, access level,
// language) and derives per-sport base URLs from the sports registry.
// Requests are spaced out by a token bucket limiter as rate-limit courtesy
// toward the trial tier.
package sportradar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/scorebridge/scorebridge/internal/sports"
)

// APIHost is the production Sportradar endpoint.
const APIHost = "https://api.sportradar.com"

// Settings are the mutable endpoint settings read by every fetch.
type Settings struct {
	Format      string // json or xml
	AccessLevel string // trial or production
	Language    string
}

// Snapshot is the result of an Update: the settings now in effect plus a
// freshly derived base URL for the reference sport, for display back to the
// caller.
type Snapshot struct {
	Settings
	BaseURL string
}

// Client is the Sportradar HTTP client shared by all tools.
type Client struct {
	mu       sync.RWMutex
	settings Settings

	host       string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Sportradar client against the given host (empty means
// APIHost). minInterval is the minimum spacing between upstream calls (zero
// disables spacing); timeout bounds each request.
func NewClient(host, apiKey string, settings Settings, minInterval, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if host == "" {
		host = APIHost
	}
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Client{
		settings:   settings,
		host:       host,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Update applies any non-empty fields and returns the resulting settings.
// Values are checked before being applied; a bad value rejects the whole
// update and leaves the previous settings in place.
func (c *Client) Update(language, accessLevel, format string) (Snapshot, error) {
	if language != "" && !sports.SupportsLanguage(language) {
		return Snapshot{}, fmt.Errorf("language %q is not supported by any registered sport", language)
	}
	if accessLevel != "" && accessLevel != "trial" && accessLevel != "production" {
		return Snapshot{}, fmt.Errorf("access level %q is not valid (want trial or production)", accessLevel)
	}
	if format != "" && format != "json" && format != "xml" {
		return Snapshot{}, fmt.Errorf("format %q is not valid (want json or xml)", format)
	}

	c.mu.Lock()
	if language != "" {
		c.settings.Language = language
	}
	if accessLevel != "" {
		c.settings.AccessLevel = accessLevel
	}
	if format != "" {
		c.settings.Format = format
	}
	c.mu.Unlock()

	base, err := c.BaseURL(sports.NFL)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Settings: c.Settings(), BaseURL: base}, nil
}

// Settings returns a copy of the current settings.
func (c *Client) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Format returns the currently configured payload format extension.
func (c *Client) Format() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Format
}

// BaseURL derives the upstream base URL for a sport. Official leagues carry
// an extra path segment.
func (c *Client) BaseURL(sportID string) (string, error) {
	sport, ok := sports.Lookup(sportID)
	if !ok {
		return "", fmt.Errorf("sport %q is not in the list of supported sports (%s) or is unavailable on Sportradar",
			sportID, sports.SupportedList())
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if sport.Official {
		return fmt.Sprintf("%s/%s/official/%s/%s/%s",
			c.host, sport.ID, c.settings.AccessLevel, sport.APIVersion, c.settings.Language), nil
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		c.host, sport.ID, c.settings.AccessLevel, sport.APIVersion, c.settings.Language), nil
}

// Fetch performs a rate-limited GET of {base}/{subPath} and returns the raw
// response body. Non-2xx statuses come back as errors embedding the status
// code and (truncated) body; there is no retry.
func (c *Client) Fetch(ctx context.Context, sportID, subPath string) ([]byte, error) {
	base, err := c.BaseURL(sportID)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := base + "/" + subPath
	params := url.Values{"api_key": {c.apiKey}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	c.logger.Info("fetching upstream", "sport", sportID, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", subPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
