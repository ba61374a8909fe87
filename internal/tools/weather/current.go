package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"weather-mcp-go/internal/openweather"
	"weather-mcp-go/internal/report"
)

// DefaultCountryCode is used when the caller omits the country code.
const DefaultCountryCode = "US"

// CurrentTool reports current conditions for a city.
type CurrentTool struct {
	client Querier
	logger zerolog.Logger
}

// CurrentArgs represents the arguments for the get_weather_by_city tool.
type CurrentArgs struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

// NewCurrentTool creates a new CurrentTool.
func NewCurrentTool(client Querier, logger zerolog.Logger) *CurrentTool {
	return &CurrentTool{
		client: client,
		logger: logger.With().Str("component", "current_tool").Logger(),
	}
}

// Name returns the name of the tool.
func (t *CurrentTool) Name() string {
	return "get_weather_by_city"
}

// Definition returns the tool descriptor in MCP format.
func (t *CurrentTool) Definition() map[string]any {
	return map[string]any{
		"name":        t.Name(),
		"description": "Get current weather for a city.",
		"inputSchema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City name",
				},
				"country_code": map[string]any{
					"type":        "string",
					"description": "Two-letter country code (default: US)",
				},
			},
			"required": []string{"city"},
		},
	}
}

// Call executes the tool.
func (t *CurrentTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var params CurrentArgs
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if params.City == "" {
		return "", fmt.Errorf("city is required")
	}
	if params.CountryCode == "" {
		params.CountryCode = DefaultCountryCode
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s", params.City, params.CountryCode))
	query.Set("units", "metric")

	data, err := t.client.Query(ctx, openweather.EndpointWeather, query)
	if err != nil {
		t.logger.Warn().
			Err(err).
			Str("city", params.City).
			Str("country_code", params.CountryCode).
			Msg("Weather query failed")
		data = nil
	}

	return report.CurrentByCity(params.City, params.CountryCode, data), nil
}
