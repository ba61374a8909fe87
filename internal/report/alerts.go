package report

import (
	"fmt"
	"strings"

	"weather-mcp-go/internal/payload"
)

// Alerts evaluates the severe-weather rules against a current-conditions
// payload for the state's representative city. All fired alerts are joined
// with newlines; a calm snapshot yields a single "no alerts" sentinel. A nil
// payload means the upstream query failed and yields an explanatory message.
func Alerts(city, state string, data payload.Payload) string {
	if data == nil {
		return "Unable to fetch weather alert data."
	}

	condition := data.FirstObject("weather")
	s := snapshot{
		condition:   strings.ToLower(condition.String("main", "")),
		description: strings.ToLower(condition.String("description", "")),
		tempC:       data.Object("main").Float("temp", 0),
	}

	messages := evaluateRules(s, city, state)
	if len(messages) == 0 {
		return fmt.Sprintf("No severe weather alerts for %s, %s at this time.", city, state)
	}

	return strings.Join(messages, "\n")
}
