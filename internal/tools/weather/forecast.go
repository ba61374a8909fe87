package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"weather-mcp-go/internal/openweather"
	"weather-mcp-go/internal/payload"
	"weather-mcp-go/internal/report"
)

// ForecastTool reports current conditions plus the next 24 hours of
// 3-hourly forecast periods for a coordinate pair.
type ForecastTool struct {
	client Querier
	logger zerolog.Logger
}

// ForecastArgs represents the arguments for the get_forecast tool. Pointers
// distinguish absent coordinates from the valid zero coordinate.
type ForecastArgs struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NewForecastTool creates a new ForecastTool.
func NewForecastTool(client Querier, logger zerolog.Logger) *ForecastTool {
	return &ForecastTool{
		client: client,
		logger: logger.With().Str("component", "forecast_tool").Logger(),
	}
}

// Name returns the name of the tool.
func (t *ForecastTool) Name() string {
	return "get_forecast"
}

// Definition returns the tool descriptor in MCP format.
func (t *ForecastTool) Definition() map[string]any {
	return map[string]any{
		"name":        t.Name(),
		"description": "Get the weather forecast for a location: current conditions and the next 24 hours at 3-hour intervals.",
		"inputSchema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"latitude": map[string]any{
					"type":        "number",
					"description": "Latitude of the location",
				},
				"longitude": map[string]any{
					"type":        "number",
					"description": "Longitude of the location",
				},
			},
			"required": []string{"latitude", "longitude"},
		},
	}
}

// Call executes the tool. The forecast and current-conditions queries share
// coordinates and have no data dependency, so they run concurrently; both
// results are awaited before formatting. A failed current-conditions query
// degrades to a forecast-only report.
func (t *ForecastTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var params ForecastArgs
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Latitude == nil || params.Longitude == nil {
		return "", fmt.Errorf("latitude and longitude are required")
	}

	lat, lon := *params.Latitude, *params.Longitude
	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return "", fmt.Errorf("longitude must be between -180 and 180")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("units", "metric")

	var (
		wg                    sync.WaitGroup
		series, current       payload.Payload
		seriesErr, currentErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		series, seriesErr = t.client.Query(ctx, openweather.EndpointForecast, query)
	}()
	go func() {
		defer wg.Done()
		current, currentErr = t.client.Query(ctx, openweather.EndpointWeather, query)
	}()
	wg.Wait()

	if seriesErr != nil {
		t.logger.Warn().
			Err(seriesErr).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("Forecast query failed")
		series = nil
	}
	if currentErr != nil {
		t.logger.Warn().
			Err(currentErr).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("Current conditions query failed")
		current = nil
	}

	return report.Forecast(series, current), nil
}
