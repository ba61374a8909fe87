package report

import (
	"fmt"
	"strings"

	"weather-mcp-go/internal/payload"
)

// forecastPeriods is the number of 3-hour forecast entries rendered,
// covering the next 24 hours.
const forecastPeriods = 8

const blockSeparator = "\n---\n"

// Forecast renders the next 24 hours of forecast periods, preceded by a
// current-conditions block when that payload is available. The series
// payload is required: when it is nil or missing its list field the whole
// report is replaced by an explanatory message, never partial output.
func Forecast(series, current payload.Payload) string {
	periods := series.Objects("list")
	if periods == nil {
		return "Unable to fetch forecast data for this location."
	}

	var blocks []string

	if current != nil {
		blocks = append(blocks, currentBlock(current))
	}

	if len(periods) > forecastPeriods {
		periods = periods[:forecastPeriods]
	}

	for i, period := range periods {
		hoursAhead := (i + 1) * 3
		blocks = append(blocks, periodBlock(hoursAhead, period))
	}

	return strings.Join(blocks, blockSeparator)
}

func currentBlock(data payload.Payload) string {
	main := data.Object("main")
	temp := main.Float("temp", 0)
	feelsLike := main.Float("feels_like", 0)
	description := data.FirstObject("weather").String("description", "")

	return fmt.Sprintf(`Current Weather:
Temperature: %s
Feels like: %s
Humidity: %d%%
Pressure: %d hPa
Wind: %g m/s
Conditions: %s`,
		tempBoth(temp),
		tempBoth(feelsLike),
		main.Int("humidity", 0),
		main.Int("pressure", 0),
		data.Object("wind").Float("speed", 0),
		titleCase(description))
}

func periodBlock(hoursAhead int, period payload.Payload) string {
	main := period.Object("main")
	temp := main.Float("temp", 0)
	feelsLike := main.Float("feels_like", 0)
	description := period.FirstObject("weather").String("description", "")

	return fmt.Sprintf(`In %d hours (%s):
Temperature: %s
Feels like: %s
Humidity: %d%%
Wind: %g m/s
Conditions: %s`,
		hoursAhead,
		period.String("dt_txt", "unknown time"),
		tempBoth(temp),
		tempBoth(feelsLike),
		main.Int("humidity", 0),
		period.Object("wind").Float("speed", 0),
		titleCase(description))
}
