package report

import (
	"fmt"
	"strings"
	"testing"

	"weather-mcp-go/internal/payload"
)

func forecastSeries(t *testing.T, entries int) payload.Payload {
	t.Helper()
	list := make([]any, 0, entries)
	for i := 0; i < entries; i++ {
		list = append(list, map[string]any{
			"dt_txt": fmt.Sprintf("2026-08-27 %02d:00:00", (i*3)%24),
			"main": map[string]any{
				"temp":       20.0 + float64(i),
				"feels_like": 19.0 + float64(i),
				"humidity":   float64(60),
			},
			"weather": []any{map[string]any{"description": "scattered clouds"}},
			"wind":    map[string]any{"speed": 4.1},
		})
	}
	return payload.Payload{"list": list}
}

func currentConditions(t *testing.T) payload.Payload {
	t.Helper()
	return payload.Payload{
		"main": map[string]any{
			"temp":       25.5,
			"feels_like": 26.0,
			"humidity":   float64(55),
			"pressure":   float64(1012),
		},
		"weather": []any{map[string]any{"description": "clear sky"}},
		"wind":    map[string]any{"speed": 3.6},
	}
}

func TestForecastRendersEightPeriods(t *testing.T) {
	got := Forecast(forecastSeries(t, 10), nil)

	blocks := strings.Split(got, "\n---\n")
	if len(blocks) != 8 {
		t.Fatalf("Expected exactly 8 period blocks, got %d", len(blocks))
	}

	for i, block := range blocks {
		wantLabel := fmt.Sprintf("In %d hours", (i+1)*3)
		if !strings.HasPrefix(block, wantLabel) {
			t.Errorf("Block %d: expected label %q, got %q", i, wantLabel, strings.SplitN(block, "\n", 2)[0])
		}
	}

	if !strings.Contains(blocks[7], "In 24 hours") {
		t.Errorf("Expected last block 24 hours ahead, got %q", blocks[7])
	}
}

func TestForecastWithCurrentBlock(t *testing.T) {
	got := Forecast(forecastSeries(t, 10), currentConditions(t))

	blocks := strings.Split(got, "\n---\n")
	if len(blocks) != 9 {
		t.Fatalf("Expected current block plus 8 periods, got %d blocks", len(blocks))
	}

	current := blocks[0]
	if !strings.HasPrefix(current, "Current Weather:") {
		t.Errorf("Expected current weather block first, got %q", current)
	}
	if !strings.Contains(current, "Temperature: 25.5°C (77.9°F)") {
		t.Errorf("Expected temperature in both units, got %q", current)
	}
	if !strings.Contains(current, "Pressure: 1012 hPa") {
		t.Errorf("Expected pressure, got %q", current)
	}
	if !strings.Contains(current, "Wind: 3.6 m/s") {
		t.Errorf("Expected wind speed, got %q", current)
	}
	if !strings.Contains(current, "Conditions: Clear Sky") {
		t.Errorf("Expected title-cased conditions, got %q", current)
	}
}

func TestForecastShortSeries(t *testing.T) {
	got := Forecast(forecastSeries(t, 3), nil)

	blocks := strings.Split(got, "\n---\n")
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks for a 3-entry series, got %d", len(blocks))
	}
}

func TestForecastPeriodContainsTimestamp(t *testing.T) {
	got := Forecast(forecastSeries(t, 1), nil)

	if !strings.Contains(got, "In 3 hours (2026-08-27 00:00:00):") {
		t.Errorf("Expected raw timestamp in label, got %q", got)
	}
}

func TestForecastNilSeries(t *testing.T) {
	got := Forecast(nil, currentConditions(t))

	if got != "Unable to fetch forecast data for this location." {
		t.Errorf("Expected failure message, got %q", got)
	}
}

func TestForecastMissingListField(t *testing.T) {
	got := Forecast(payload.Payload{"cod": "200"}, nil)

	if got != "Unable to fetch forecast data for this location." {
		t.Errorf("Expected failure message for missing list, got %q", got)
	}
}

func TestForecastPeriodMissingOptionalFields(t *testing.T) {
	series := payload.Payload{
		"list": []any{
			map[string]any{"dt_txt": "2026-08-27 12:00:00"},
		},
	}

	got := Forecast(series, nil)

	if !strings.Contains(got, "Temperature: 0.0°C (32.0°F)") {
		t.Errorf("Expected default temperature, got %q", got)
	}
	if !strings.Contains(got, "Wind: 0 m/s") {
		t.Errorf("Expected default wind, got %q", got)
	}
}
