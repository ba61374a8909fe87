// Package openweather contains the HTTP query client for the OpenWeatherMap
// API. The client contains every upstream failure at its own boundary:
// callers receive either a fully decoded payload or an error, never a
// partially parsed response. Diagnostic detail stays in the local log; the
// credential is injected into every request and is never logged.
package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"weather-mcp-go/internal/payload"
	"weather-mcp-go/internal/telemetry"
)

// Endpoints under the API base URL.
const (
	EndpointWeather  = "/weather"
	EndpointForecast = "/forecast"
)

// DefaultTimeout is the per-request timeout for upstream calls.
const DefaultTimeout = 30 * time.Second

// Config contains the client configuration.
type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// Client issues GET requests against the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *telemetry.Metrics
}

// New creates a client. A nil metrics collector disables upstream telemetry.
func New(cfg Config, logger zerolog.Logger, metrics *telemetry.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger.With().Str("component", "openweather_client").Logger(),
		metrics: metrics,
	}
}

// Query issues one GET request against the given endpoint with the given
// query parameters, plus the injected credential. It returns the decoded
// response body, or an error for any timeout, connection failure, non-2xx
// status, or undecodable body. One outbound call per invocation; no retry,
// no caching.
func (c *Client) Query(ctx context.Context, endpoint string, params url.Values) (payload.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("appid", c.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.recordRequest(endpoint, "error", duration)
		c.logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Dur("duration", duration).
			Msg("Upstream request failed")
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	c.recordRequest(endpoint, statusClass(resp.StatusCode), duration)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Dur("duration", duration).
			Msg("Upstream returned non-success status")
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	data, err := payload.Decode(resp.Body)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Msg("Failed to decode upstream response")
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Upstream request completed")

	return data, nil
}

func (c *Client) recordRequest(endpoint, status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(endpoint, status, duration)
	}
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "other"
	}
}
