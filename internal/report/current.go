package report

import (
	"fmt"

	"weather-mcp-go/internal/payload"
)

// CurrentByCity renders current conditions for a city as a single block.
// Optional fields render documented defaults: wind direction and cloud cover
// default to 0, visibility to an explicit "N/A" marker, and the country
// falls back to the requested country code when the payload omits it.
func CurrentByCity(city, countryCode string, data payload.Payload) string {
	if data == nil {
		return fmt.Sprintf("Unable to fetch weather data for %s, %s.", city, countryCode)
	}

	main := data.Object("main")
	wind := data.Object("wind")
	description := data.FirstObject("weather").String("description", "")

	visibility := "N/A"
	if data.Has("visibility") {
		visibility = fmt.Sprintf("%d meters", data.Int("visibility", 0))
	}

	return fmt.Sprintf(`Weather for %s, %s:

Temperature: %s
Feels like: %s
Conditions: %s
Humidity: %d%%
Pressure: %d hPa
Wind Speed: %g m/s
Wind Direction: %d°
Cloudiness: %d%%
Visibility: %s`,
		data.String("name", city),
		data.Object("sys").String("country", countryCode),
		tempBoth(main.Float("temp", 0)),
		tempBoth(main.Float("feels_like", 0)),
		titleCase(description),
		main.Int("humidity", 0),
		main.Int("pressure", 0),
		wind.Float("speed", 0),
		wind.Int("deg", 0),
		data.Object("clouds").Int("all", 0),
		visibility)
}
