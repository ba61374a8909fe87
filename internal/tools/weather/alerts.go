// Package weather implements the three weather tools exposed over MCP. Each
// tool validates its arguments, queries the upstream API through the shared
// client, and hands the result to a pure formatter. Upstream failures are
// logged here and passed to the formatter as an absent payload, so every
// failure path ends in explanatory text for the caller rather than an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"weather-mcp-go/internal/openweather"
	"weather-mcp-go/internal/payload"
	"weather-mcp-go/internal/report"
)

// Querier is the upstream client surface the tools depend on.
type Querier interface {
	Query(ctx context.Context, endpoint string, params url.Values) (payload.Payload, error)
}

// AlertsTool reports heuristic severe-weather alerts for a US state,
// derived from current conditions in the state's representative city.
type AlertsTool struct {
	client Querier
	logger zerolog.Logger
}

// AlertsArgs represents the arguments for the get_alerts tool.
type AlertsArgs struct {
	State string `json:"state"`
}

// NewAlertsTool creates a new AlertsTool.
func NewAlertsTool(client Querier, logger zerolog.Logger) *AlertsTool {
	return &AlertsTool{
		client: client,
		logger: logger.With().Str("component", "alerts_tool").Logger(),
	}
}

// Name returns the name of the tool.
func (t *AlertsTool) Name() string {
	return "get_alerts"
}

// Definition returns the tool descriptor in MCP format.
func (t *AlertsTool) Definition() map[string]any {
	return map[string]any{
		"name": t.Name(),
		"description": "Get weather alerts for a US state. Alerts are heuristic, " +
			"derived from current conditions in a representative city of the state.",
		"inputSchema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"state": map[string]any{
					"type":        "string",
					"description": "Two-letter US state code (e.g. CA, NY)",
				},
			},
			"required": []string{"state"},
		},
	}
}

// Call executes the tool. An unsupported state code is answered without any
// network call.
func (t *AlertsTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var params AlertsArgs
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if params.State == "" {
		return "", fmt.Errorf("state is required")
	}

	state := strings.ToUpper(params.State)
	city, ok := report.ResolveState(state)
	if !ok {
		return report.UnsupportedStateMessage(params.State), nil
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s,US", city, state))
	query.Set("units", "metric")

	data, err := t.client.Query(ctx, openweather.EndpointWeather, query)
	if err != nil {
		t.logger.Warn().
			Err(err).
			Str("state", state).
			Str("city", city).
			Msg("Alert data query failed")
		data = nil
	}

	return report.Alerts(city, state, data), nil
}
