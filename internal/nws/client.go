package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/roivaz/weather-mcp/internal/logging"
)

const acceptGeoJSON = "application/geo+json"

type Config struct {
	BaseURL   string
	UserAgent string
	Logger    logging.Logger
}

// Client talks to the National Weather Service REST API. Every call is a
// single GET with the service's identification headers; failures are logged
// at this boundary and surface to callers as plain errors, never as partial
// payloads. There is no retry: the first failure is final for that call.
type Client struct {
	base      string
	userAgent string
	hc        *http.Client
	log       logging.Logger
}

func NewClient(cfg Config) *Client {
	return &Client{
		base:      cfg.BaseURL,
		userAgent: cfg.UserAgent,
		hc:        http.DefaultClient,
		log:       cfg.Logger,
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(err, "NWS request failed", "url", url)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
		c.log.Error(err, "NWS request failed")
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(err, "reading NWS response body", "url", url)
		return nil, err
	}
	return body, nil
}

func getJSON[T any](ctx context.Context, c *Client, url string) (*T, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Error(err, "decoding NWS response", "url", url)
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &payload, nil
}

// ActiveAlerts returns the active alerts for an uppercase two-letter state
// code.
func (c *Client) ActiveAlerts(ctx context.Context, state string) (*AlertsResponse, error) {
	url := fmt.Sprintf("%s/alerts?area=%s", c.base, state)
	return getJSON[AlertsResponse](ctx, c, url)
}

// ForecastURL resolves a coordinate to its gridded forecast URL. The points
// document is large and exactly one field matters, so the body is probed raw
// instead of decoded into a struct. An empty string with a nil error means
// the lookup succeeded but the document carries no forecast URL.
func (c *Client) ForecastURL(ctx context.Context, lat, lon float64) (string, error) {
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.base, lat, lon)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(body) {
		err := fmt.Errorf("invalid JSON from %s", url)
		c.log.Error(err, "decoding NWS response")
		return "", err
	}
	return gjson.GetBytes(body, "properties.forecast").String(), nil
}

// Forecast fetches the forecast document at the URL obtained from a points
// lookup.
func (c *Client) Forecast(ctx context.Context, url string) (*ForecastResponse, error) {
	return getJSON[ForecastResponse](ctx, c, url)
}
